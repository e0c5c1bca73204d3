package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Code-Monger/WordSpinneret/pkg/config"
)

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	created, err := config.WriteDefault(path)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, left unchanged\n", path)
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(e.cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\nDictionary search path (most important first):\n", data)
	for _, dir := range e.cache.Candidates() {
		fmt.Fprintf(out, "  %s\n", dir)
	}
	return nil
}
