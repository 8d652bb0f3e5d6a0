// Package main is the entry point for the mcp-setup CLI.
package main

import (
	"errors"
	"os"

	"github.com/mcptools/mcp-setup/cmd/mcp-setup/commands"
	setuperrors "github.com/mcptools/mcp-setup/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *setuperrors.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(setuperrors.ExitFailure)
	}
}
