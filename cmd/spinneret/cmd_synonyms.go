package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Code-Monger/WordSpinneret/pkg/spellcheck"
	"github.com/Code-Monger/WordSpinneret/pkg/speller"
)

func runSynonyms(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	session, err := e.openSession()
	if err != nil {
		return err
	}
	defer session.Close()

	if !session.ThesaurusEnabled() {
		return fmt.Errorf("no thesaurus available for %s", session.Language())
	}

	result := spellcheck.LookupThesaurus(session, args[0], maxWords)

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, result)
	}

	if len(result.Meanings) == 0 {
		fmt.Fprintf(out, "No synonyms found for %q\n", result.Word)
		return nil
	}

	if result.Actual != result.Word {
		fmt.Fprintf(out, "Synonyms for %q (via %q):\n", result.Word, speller.Abbreviate(result.Actual, speller.MaxDisplayWord))
	} else {
		fmt.Fprintf(out, "Synonyms for %q:\n", result.Word)
	}
	for i, m := range result.Meanings {
		fmt.Fprintf(out, "%2d. %s\n", i+1, m.Preview)
	}
	if len(result.Sample) > 0 {
		more := ""
		if result.More {
			more = ", ..."
		}
		fmt.Fprintf(out, "\nSuggested: %s%s\n", strings.Join(result.Sample, ", "), more)
	}
	return nil
}
