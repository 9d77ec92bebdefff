package main

import (
	"os"

	"github.com/CodMac/go-code-explorer/cmd"
	"github.com/CodMac/go-code-explorer/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		ui.Bad.Fprintf(os.Stderr, "code-explorer: %v\n", err)
		os.Exit(1)
	}
}
