package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/abdorrahmani/ristretto255-strobe/internal/utils"
	"github.com/olekukonko/tablewriter"
)

func separatorLine() string {
	width := utils.GetTerminalWidth()
	if width <= 0 || width > 120 {
		width = 40
	}
	return strings.Repeat("-", width)
}

// ConsoleDisplay implements DisplayHandler for console output.
type ConsoleDisplay struct {
	theme utils.Theme
}

// NewConsoleDisplay creates a new console display handler.
func NewConsoleDisplay() *ConsoleDisplay {
	return &ConsoleDisplay{
		theme: utils.DefaultTheme,
	}
}

// ShowMenu displays the main menu.
func (d *ConsoleDisplay) ShowMenu() {
	fmt.Printf("\n%s\n", d.theme.Format("ristretto255-strobe - choose an operation:", "bold cyan"))
	for _, opt := range GetMenuOptions() {
		fmt.Printf("%s\n", d.theme.Format(fmt.Sprintf("%d. %s", opt.ID, opt.Name), "yellow"))
	}
	fmt.Printf("\n%s", d.theme.Format(fmt.Sprintf("Enter your choice (1-%d): ", OptionExit), "green"))
}

// ShowResult displays the processing result and steps.
func (d *ConsoleDisplay) ShowResult(result string, steps []string) {
	fmt.Printf("\n%s\n", d.theme.Format("Result:", "bold brightGreen"))
	fmt.Printf("%s\n", d.theme.Format(result, "brightGreen"))

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"#", "Step"})
	for i, step := range steps {
		// nolint:errcheck // table append errors are not actionable in a CLI display path
		table.Append([]string{fmt.Sprintf("%d", i+1), step})
	}
	// nolint:errcheck // table render errors are not actionable in a CLI display path
	table.Render()
}

// ShowError displays an error message.
func (d *ConsoleDisplay) ShowError(err error) {
	fmt.Printf("\n%s %s\n", d.theme.Format("Error:", "bold brightRed"), d.theme.Format(err.Error(), "red"))
	fmt.Printf("%s\n", d.theme.Format(separatorLine(), "dim blue"))
}

// ShowWelcome displays the welcome message.
func (d *ConsoleDisplay) ShowWelcome() {
	fmt.Printf("%s\n", d.theme.Format("ristretto255-strobe", "bold brightCyan"))
	fmt.Printf("%s\n", d.theme.Format("Version: "+AppVersion, "dim white"))
	fmt.Printf("%s\n", d.theme.Format("Transcript-driven key derivation, signing, and Diffie-Hellman over ristretto255.", "dim white"))
	fmt.Printf("%s\n", d.theme.Format(separatorLine(), "dim blue"))
}

// ShowGoodbye displays the goodbye message.
func (d *ConsoleDisplay) ShowGoodbye() {
	fmt.Printf("\n%s\n", d.theme.Format("Goodbye!", "brightCyan bold"))
}

// ShowMessage displays a prompt for user input.
func (d *ConsoleDisplay) ShowMessage(message string) {
	fmt.Printf("\n%s", d.theme.Format(message, "brightGreen bold"))
}

// ShowProcessingMessage displays the message being processed.
func (d *ConsoleDisplay) ShowProcessingMessage(message string) {
	fmt.Printf("\n%s %s\n", d.theme.Format("Processing:", "bold brightPurple"), d.theme.Format(message, "purple"))
	fmt.Printf("%s\n", d.theme.Format(separatorLine(), "dim blue"))
}
