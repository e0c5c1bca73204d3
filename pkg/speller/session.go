// Package speller is the spell-check and thesaurus adapter: a Session owns the
// engines loaded for one language and answers the questions a text editor
// asks while the user types.
package speller

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Code-Monger/WordSpinneret/pkg/dictionary"
	"github.com/Code-Monger/WordSpinneret/pkg/engine"
)

var (
	// ErrUnknownLanguage is returned when a language is not in the catalog
	ErrUnknownLanguage = errors.New("language not available")
	// ErrLoad is wrapped when the dictionary of a language cannot be opened
	ErrLoad = errors.New("failed to load dictionary")
	// ErrNoSpeller is returned by operations that need a loaded dictionary
	ErrNoSpeller = errors.New("no dictionary loaded")
)

// CatalogSource provides the catalog of installed languages, typically a
// *dictionary.Cache.
type CatalogSource interface {
	Catalog() (*dictionary.Catalog, error)
}

// Session holds at most one dictionary and one thesaurus, for the current
// language. It is not safe for concurrent use; several sessions may share a
// CatalogSource.
type Session struct {
	source CatalogSource
	loader engine.Loader
	logger *slog.Logger

	language         string
	enabled          bool
	thesaurusEnabled bool

	dict *Dictionary
	thes *Thesaurus
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithEnabled sets whether the speller starts enabled (default false)
func WithEnabled(enabled bool) Option {
	return func(s *Session) {
		s.enabled = enabled
	}
}

// WithThesaurus sets whether thesaurus lookups are offered (default true)
func WithThesaurus(enabled bool) Option {
	return func(s *Session) {
		s.thesaurusEnabled = enabled
	}
}

// NewSession creates a session without a language. Nothing is loaded until
// a language is set on an enabled session.
func NewSession(source CatalogSource, loader engine.Loader, opts ...Option) *Session {
	s := &Session{
		source:           source,
		loader:           loader,
		logger:           slog.Default(),
		thesaurusEnabled: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Languages returns the codes of the installed languages
func (s *Session) Languages() []string {
	catalog, err := s.source.Catalog()
	if err != nil {
		s.logger.Warn("listing languages", "err", err)
	}
	return catalog.Languages()
}

// Language returns the current language, which may not be loaded
func (s *Session) Language() string {
	return s.language
}

// Enabled reports whether the speller is enabled
func (s *Session) Enabled() bool {
	return s.enabled
}

// Loaded reports whether a dictionary is loaded
func (s *Session) Loaded() bool {
	return s.dict != nil
}

// HasThesaurus reports whether a thesaurus is loaded for the current language
func (s *Session) HasThesaurus() bool {
	return s.thes != nil
}

// Features returns the capabilities of the session
func (s *Session) Features() Feature {
	return sessionFeatures
}

// SetLanguage switches to code. Setting the loaded language again does
// nothing, and an unknown code leaves the session untouched. A disabled
// session only remembers the code; the dictionary is loaded on enable.
//
// The previous engines are released before new ones are opened. If the
// dictionary cannot be opened the session has no dictionary and the error is
// returned; a missing thesaurus is not an error.
func (s *Session) SetLanguage(code string) error {
	s.logger.Debug("setting language", "lang", code)

	if code == s.language && s.dict != nil {
		return nil
	}

	catalog, err := s.source.Catalog()
	if err != nil {
		return err
	}
	entry, ok := catalog.Lookup(code)
	if !ok {
		s.logger.Info("invalid language, keeping current one", "lang", code, "current", s.language)
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}

	s.language = code
	if !s.enabled {
		return nil
	}

	s.release()

	dict, err := s.openDictionary(entry)
	if err != nil {
		s.logger.Warn("dictionary not loaded", "lang", code, "err", err)
		return err
	}
	s.dict = dict
	s.thes = s.openThesaurus(entry)
	return nil
}

func (s *Session) openDictionary(entry dictionary.LanguageEntry) (*Dictionary, error) {
	e, err := s.loader.OpenSpeller(entry.AffixPath(), entry.DictionaryPath())
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoad, entry.Code, err)
	}

	codec := s.codec(e.Encoding(), entry.DictionaryPath())
	s.logger.Debug("dictionary loaded", "lang", entry.Code, "encoding", codec.Name())
	return NewDictionary(e, codec), nil
}

// openThesaurus returns nil when the language has no usable thesaurus
func (s *Session) openThesaurus(entry dictionary.LanguageEntry) *Thesaurus {
	if !entry.HasThesaurus() {
		s.logger.Debug("thesaurus not available for language", "lang", entry.Code)
		return nil
	}

	e, err := s.loader.OpenThesaurus(entry.IndexPath(), entry.DataPath())
	if err != nil {
		s.logger.Info("thesaurus not available", "lang", entry.Code, "err", err)
		return nil
	}

	codec := s.codec(e.Encoding(), entry.DataPath())
	s.logger.Debug("thesaurus loaded", "lang", entry.Code, "encoding", codec.Name())
	return NewThesaurus(e, codec)
}

// codec resolves an engine encoding, falling back to UTF-8
func (s *Session) codec(name, path string) engine.Codec {
	codec, err := engine.LookupCodec(name)
	if err != nil {
		s.logger.Warn("unknown encoding, using UTF-8", "path", path, "err", err)
	}
	return codec
}

// EnableSpeller turns the speller on or off. Turning it off releases the
// engines at once; turning it on loads the current language again.
func (s *Session) EnableSpeller(enabled bool) error {
	s.enabled = enabled
	if !enabled {
		s.logger.Debug("releasing speller and thesaurus")
		s.release()
		return nil
	}
	if s.language == "" {
		return nil
	}
	return s.SetLanguage(s.language)
}

// EnableThesaurus turns thesaurus lookups on or off without unloading it
func (s *Session) EnableThesaurus(enabled bool) {
	s.thesaurusEnabled = enabled
}

// ThesaurusEnabled reports whether thesaurus lookups are offered
func (s *Session) ThesaurusEnabled() bool {
	return s.enabled && s.thesaurusEnabled && s.thes != nil
}

// Tokenize returns the word ranges of text
func (s *Session) Tokenize(text string) []WordRange {
	return Tokenize(text)
}

// ErrorRanges returns the ranges of misspelled words. Without a dictionary
// nothing is misspelled.
func (s *Session) ErrorRanges(text string) []WordRange {
	if s.dict == nil || strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	var errs []WordRange
	for _, r := range tokenizeRunes(runes) {
		if !s.dict.Spell(r.slice(runes)) {
			errs = append(errs, r)
		}
	}
	return errs
}

// Spell reports whether word is spelled correctly. Without a dictionary every
// word is correct.
func (s *Session) Spell(word string) bool {
	return s.dict.Spell(word)
}

// Suggestions returns corrections for a misspelled word; a correct word has none
func (s *Session) Suggestions(word string) []string {
	if s.dict == nil || s.dict.Spell(word) {
		return nil
	}
	return s.dict.Suggest(word)
}

// IgnoreWord accepts word until the language is unloaded
func (s *Session) IgnoreWord(word string) error {
	if s.dict == nil {
		return ErrNoSpeller
	}
	s.dict.Add(word)
	return nil
}

// Thesaurus returns the meanings of word and the word they belong to
func (s *Session) Thesaurus(word string) ([]Meaning, string) {
	if !s.ThesaurusEnabled() {
		return nil, word
	}
	return LookupMeanings(word, s.dict, s.thes)
}

// Close releases the engines. The session can be enabled again afterwards.
func (s *Session) Close() error {
	s.enabled = false
	return s.release()
}

// release closes both engines; handles are cleared even when Close fails
func (s *Session) release() error {
	var errs []error
	if s.thes != nil {
		errs = append(errs, s.thes.close())
		s.thes = nil
	}
	if s.dict != nil {
		errs = append(errs, s.dict.close())
		s.dict = nil
	}
	return errors.Join(errs...)
}
