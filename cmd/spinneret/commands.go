package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Code-Monger/WordSpinneret/pkg/config"
	"github.com/Code-Monger/WordSpinneret/pkg/dictionary"
	"github.com/Code-Monger/WordSpinneret/pkg/engine"
	"github.com/Code-Monger/WordSpinneret/pkg/speller"
)

// Exit codes
const (
	exitOK          = 0
	exitMisspelling = 1
	exitError       = 2
)

var (
	configPath string
	language   string
	verbose    bool
	jsonOutput bool

	maxSuggestions int
	maxWords       int
	showFiles      bool
	pattern        string
	recursive      bool

	rootCmd = &cobra.Command{
		Use:           "spinneret",
		Short:         "Spell checking and thesaurus lookups over Hunspell dictionaries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	languagesCmd = &cobra.Command{
		Use:   "languages",
		Short: "List the installed dictionary languages",
		Args:  cobra.NoArgs,
		RunE:  runLanguages,
	}

	checkCmd = &cobra.Command{
		Use:   "check [path...]",
		Short: "Report misspelled words in files or directories, or standard input when none are given",
		RunE:  runCheck,
	}

	synonymsCmd = &cobra.Command{
		Use:     "synonyms <word>",
		Short:   "Look up the meanings and synonyms of a word",
		Aliases: []string{"thesaurus"},
		Args:    cobra.ExactArgs(1),
		RunE:    runSynonyms,
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration and dictionary search path",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/wordspinneret/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&language, "lang", "l", "", "language code, overrides the configured default")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log dictionary loading")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")

	checkCmd.Flags().IntVarP(&maxSuggestions, "suggestions", "s", -1, "corrections per word (default from config)")
	checkCmd.Flags().StringVarP(&pattern, "pattern", "p", "", "file name pattern for directories, e.g. '*.txt'")
	checkCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "check sub-directories")
	synonymsCmd.Flags().IntVarP(&maxWords, "max", "n", 5, "synonyms in the suggested list")
	languagesCmd.Flags().BoolVar(&showFiles, "files", false, "show the dictionary and thesaurus files")

	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(synonymsCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

// env is what every command needs: the configuration and a catalog cache
type env struct {
	cfg    config.Config
	cache  *dictionary.Cache
	logger *slog.Logger
}

func loadEnv() (*env, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if language != "" {
		cfg.DefaultLanguage = language
	}

	return &env{
		cfg:    cfg,
		cache:  dictionary.NewCacheFromLocations(cfg.Locations(), logger),
		logger: logger,
	}, nil
}

// sessionLanguage returns the --lang code as given, or the configured default
// when it is installed and the first installed language otherwise
func (e *env) sessionLanguage() (string, error) {
	if language != "" {
		return language, nil
	}

	catalog, err := e.cache.Catalog()
	if err != nil {
		return "", err
	}
	code := catalog.Preferred(e.cfg.DefaultLanguage)
	if code == "" {
		return "", fmt.Errorf("no dictionaries installed (searched: %v)", e.cache.Candidates())
	}
	if code != e.cfg.DefaultLanguage {
		e.logger.Info("default language not installed", "lang", e.cfg.DefaultLanguage, "using", code)
	}
	return code, nil
}

// openSession returns an enabled session for the selected language. The
// caller closes it.
func (e *env) openSession() (*speller.Session, error) {
	code, err := e.sessionLanguage()
	if err != nil {
		return nil, err
	}

	session := speller.NewSession(e.cache, engine.DefaultLoader(),
		speller.WithLogger(e.logger),
		speller.WithEnabled(true),
		speller.WithThesaurus(e.cfg.Thesaurus),
	)
	if err := session.SetLanguage(code); err != nil {
		session.Close()
		return nil, fmt.Errorf("%w (installed: %v)", err, session.Languages())
	}
	return session, nil
}
