package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Code-Monger/WordSpinneret/pkg/spellcheck"
)

// errMisspelled makes the command exit with exitMisspelling
var errMisspelled = errors.New("misspelled words found")

func runCheck(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	session, err := e.openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	max := e.cfg.MaxSuggestions
	if maxSuggestions >= 0 {
		max = maxSuggestions
	}

	var results []spellcheck.SpellCheckResult
	if len(args) == 0 {
		results, err = spellcheck.CheckReader(session, "-", cmd.InOrStdin(), max)
		if err != nil {
			return err
		}
	}
	for _, path := range args {
		found, err := spellcheck.CheckPath(session, path, pattern, recursive, max)
		if err != nil {
			return err
		}
		results = append(results, found...)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	} else {
		printResults(out, results)
	}

	if len(results) > 0 {
		return errMisspelled
	}
	return nil
}

// printResults prints one line per misspelling in the file:line:column form
// editors understand
func printResults(w io.Writer, results []spellcheck.SpellCheckResult) {
	for _, r := range results {
		fmt.Fprintf(w, "%s:%d:%d: %s", r.FilePath, r.LineNumber, r.ColumnStart, r.Word)
		if len(r.Suggestions) > 0 {
			fmt.Fprintf(w, " -> %s", strings.Join(r.Suggestions, ", "))
		}
		fmt.Fprintln(w)
	}
}
