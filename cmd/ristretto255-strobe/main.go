// Command ristretto255-strobe is an interactive menu over the
// transcript-driven protocol engine: key derivation, signing,
// verification, and Diffie-Hellman shared secrets.
package main

import (
	"fmt"
	"os"

	"github.com/abdorrahmani/ristretto255-strobe/internal/cli"
	"github.com/abdorrahmani/ristretto255-strobe/internal/config"
)

func main() {
	cfg, err := config.LoadConfig(os.Getenv("RISTRETTO255_STROBE_CONFIG"))
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	display := cli.NewConsoleDisplay()
	input := cli.NewConsoleInput()
	factory := cli.NewOperationProcessorFactory()
	factory.SetConfig(cfg)

	menu := cli.NewMenu(display, input, factory)
	if err := menu.Run(); err != nil {
		display.ShowError(err)
		os.Exit(1)
	}
}
