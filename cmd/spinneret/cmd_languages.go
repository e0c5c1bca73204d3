package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type languageInfo struct {
	Code       string `json:"code"`
	Dictionary string `json:"dictionary"`
	Thesaurus  string `json:"thesaurus,omitempty"`
}

func runLanguages(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	catalog, err := e.cache.Catalog()
	if err != nil {
		return err
	}

	var infos []languageInfo
	for _, entry := range catalog.Entries() {
		info := languageInfo{Code: entry.Code, Dictionary: entry.DictionaryPath()}
		if entry.HasThesaurus() {
			info.Thesaurus = entry.DataPath()
		}
		infos = append(infos, info)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, infos)
	}

	if len(infos) == 0 {
		fmt.Fprintln(out, "No dictionaries found. Searched:")
		for _, dir := range e.cache.Candidates() {
			fmt.Fprintf(out, "  %s\n", dir)
		}
		return nil
	}

	for _, info := range infos {
		marker := " "
		if info.Code == e.cfg.DefaultLanguage {
			marker = "*"
		}
		thesaurus := ""
		if info.Thesaurus != "" {
			thesaurus = " (thesaurus)"
		}
		fmt.Fprintf(out, "%s %s%s\n", marker, info.Code, thesaurus)
		if showFiles {
			fmt.Fprintf(out, "    %s\n", info.Dictionary)
			if info.Thesaurus != "" {
				fmt.Fprintf(out, "    %s\n", info.Thesaurus)
			}
		}
	}
	return nil
}
