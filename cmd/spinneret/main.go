// Command spinneret checks spelling and looks up synonyms from the command
// line, using the same dictionaries and configuration as the MCP server.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	err := rootCmd.Execute()
	switch {
	case err == nil:
		os.Exit(exitOK)
	case errors.Is(err, errMisspelled):
		os.Exit(exitMisspelling)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}
