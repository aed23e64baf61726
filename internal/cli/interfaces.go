package cli

// MenuInterface defines the contract for menu operations.
type MenuInterface interface {
	Run() error
}

// OperationProcessor defines the contract every protocol operation exposed
// through the menu implements: text carries the operation's primary input
// and operation carries a secondary mode flag where the operation needs
// one (shared secret's peer-first/self-first ordering).
type OperationProcessor interface {
	Process(text string, operation string) (string, []string, error)
}

// ProcessorFactory defines the contract for creating operation processors.
type ProcessorFactory interface {
	CreateProcessor(choice int) (OperationProcessor, error)
}

// UserInputHandler defines the contract for handling user input.
type UserInputHandler interface {
	GetChoice() (int, error)
	GetText() (string, error)
	GetOperation() (string, error)
}

// DisplayHandler defines the contract for displaying output.
type DisplayHandler interface {
	ShowMenu()
	ShowResult(result string, steps []string)
	ShowError(err error)
	ShowWelcome()
	ShowGoodbye()
	ShowMessage(message string)
	ShowProcessingMessage(message string)
}
