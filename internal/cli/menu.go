package cli

import "fmt"

// Menu implements MenuInterface for handling the main application flow.
type Menu struct {
	display DisplayHandler
	input   UserInputHandler
	factory ProcessorFactory
}

// NewMenu creates a new menu instance.
func NewMenu(display DisplayHandler, input UserInputHandler, factory ProcessorFactory) *Menu {
	return &Menu{
		display: display,
		input:   input,
		factory: factory,
	}
}

// Run executes the main menu loop.
func (m *Menu) Run() error {
	m.display.ShowWelcome()

	for {
		m.display.ShowMenu()

		choice, err := m.input.GetChoice()
		if err != nil {
			m.display.ShowError(err)
			continue
		}

		if choice == OptionExit {
			m.display.ShowGoodbye()
			return nil
		}

		if err := m.processChoice(choice); err != nil {
			m.display.ShowError(err)
		}
	}
}

// processChoice handles the user's menu choice.
func (m *Menu) processChoice(choice int) error {
	processor, err := m.factory.CreateProcessor(choice)
	if err != nil {
		return err
	}

	if choice == OptionDeriveKey || choice == OptionBenchmark {
		result, steps, err := processor.Process("", "")
		if err != nil {
			return err
		}
		m.display.ShowResult(result, steps)
		return nil
	}

	m.display.ShowMessage(promptFor(choice))
	text, err := m.input.GetText()
	if err != nil {
		return err
	}

	operation := ""
	if choice == OptionSharedSecret {
		operation, err = m.input.GetOperation()
		if err != nil {
			return err
		}
	}

	m.display.ShowProcessingMessage(text)

	result, steps, err := processor.Process(text, operation)
	if err != nil {
		return err
	}

	m.display.ShowResult(result, steps)
	return nil
}

func promptFor(choice int) string {
	switch choice {
	case OptionSign:
		return "Enter the message to sign: "
	case OptionVerify:
		return "Enter pubkeyHex|signatureHex|message: "
	case OptionSharedSecret:
		return "Enter the peer's public key (hex): "
	default:
		return fmt.Sprintf("Enter input for option %d: ", choice)
	}
}
