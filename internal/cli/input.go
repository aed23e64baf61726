package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abdorrahmani/ristretto255-strobe/internal/utils"
)

// ConsoleInput implements UserInputHandler for console input.
type ConsoleInput struct {
	scanner *bufio.Scanner
	theme   utils.Theme
}

// NewConsoleInput creates a new console input handler.
func NewConsoleInput() *ConsoleInput {
	return &ConsoleInput{
		scanner: bufio.NewScanner(os.Stdin),
		theme:   utils.DefaultTheme,
	}
}

func (i *ConsoleInput) GetChoice() (int, error) {
	i.scanner.Scan()
	choice, err := strconv.Atoi(strings.TrimSpace(i.scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("invalid input: please enter a number between 1 and %d", OptionExit)
	}
	if choice < 1 || choice > OptionExit {
		return 0, fmt.Errorf("invalid choice: please enter a number between 1 and %d", OptionExit)
	}
	return choice, nil
}

func (i *ConsoleInput) GetText() (string, error) {
	i.scanner.Scan()
	text := strings.TrimSpace(i.scanner.Text())
	if text == "" {
		return "", fmt.Errorf("input cannot be empty")
	}
	return text, nil
}

// GetOperation asks whether the local key plays the initiator or responder
// role in the Diffie-Hellman me-first convention (spec §4.4).
func (i *ConsoleInput) GetOperation() (string, error) {
	fmt.Printf("\n%s\n", i.theme.Format("Choose your role:", "bold"))
	fmt.Printf("%s\n", i.theme.Format("1. Initiator (me_first)", "yellow"))
	fmt.Printf("%s\n", i.theme.Format("2. Responder", "yellow"))
	fmt.Printf("\n%s", i.theme.Format("Enter your choice (1-2): ", "green"))

	i.scanner.Scan()
	choice, err := strconv.Atoi(strings.TrimSpace(i.scanner.Text()))
	if err != nil {
		return "", fmt.Errorf("invalid input: please enter a number between 1 and 2")
	}
	if choice < 1 || choice > 2 {
		return "", fmt.Errorf("invalid choice: please enter a number between 1 and 2")
	}

	if choice == 1 {
		return "initiator", nil
	}
	return "responder", nil
}

// GetTextInput reads a line from stdin, returning defaultValue if the line
// is empty.
func GetTextInput(defaultValue string) string {
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue
	}
	return input
}

// GetIntInput prompts and reads an integer within [minValue, maxValue],
// returning 0 if the user enters an empty line.
func GetIntInput(prompt string, minValue, maxValue int) int {
	for {
		fmt.Print(prompt)
		input := GetTextInput("")
		if input == "" {
			return 0
		}

		value, err := strconv.Atoi(input)
		if err != nil || value < minValue || value > maxValue {
			fmt.Printf("Please enter a number between %d and %d\n", minValue, maxValue)
			continue
		}
		return value
	}
}
