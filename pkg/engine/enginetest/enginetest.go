// Package enginetest provides in-memory engines that record how the adapter
// uses them, for tests of code built on package engine.
package enginetest

import (
	"errors"
	"strings"

	"github.com/Code-Monger/WordSpinneret/pkg/engine"
)

// Speller is an in-memory engine.Speller. Words are stored unencoded and the
// speller reports UTF-8 unless EncodingName is set.
type Speller struct {
	Words        map[string]bool
	Suggestions  map[string][]string
	Stems        map[string][]string
	Generated    map[string][]string // keyed by Key(word, model)
	EncodingName string

	Added    []string
	Closed   bool
	Releases *Releases
}

// Key builds the Generated map key for a word inflected like model
func Key(word, model string) string {
	return word + "|" + model
}

// NewSpeller creates a speller accepting words
func NewSpeller(words ...string) *Speller {
	s := &Speller{
		Words:       make(map[string]bool),
		Suggestions: make(map[string][]string),
		Stems:       make(map[string][]string),
		Generated:   make(map[string][]string),
		Releases:    &Releases{},
	}
	for _, w := range words {
		s.Words[w] = true
	}
	return s
}

// Spell implements engine.Speller
func (s *Speller) Spell(word []byte) bool {
	return s.Words[string(word)]
}

// Suggest implements engine.Speller
func (s *Speller) Suggest(word []byte) *engine.List {
	return s.Releases.list(s.Suggestions[string(word)])
}

// Stem implements engine.Speller
func (s *Speller) Stem(word []byte) *engine.List {
	return s.Releases.list(s.Stems[string(word)])
}

// Generate implements engine.Speller
func (s *Speller) Generate(word, model []byte) *engine.List {
	return s.Releases.list(s.Generated[Key(string(word), string(model))])
}

// Add implements engine.Speller
func (s *Speller) Add(word []byte) {
	s.Added = append(s.Added, string(word))
	s.Words[string(word)] = true
}

// Encoding implements engine.Speller
func (s *Speller) Encoding() string {
	if s.EncodingName == "" {
		return "UTF-8"
	}
	return s.EncodingName
}

// Close implements engine.Speller
func (s *Speller) Close() error {
	s.Closed = true
	return nil
}

// Thesaurus is an in-memory engine.Thesaurus
type Thesaurus struct {
	Entries      map[string][]engine.Sense
	EncodingName string

	Lookups  []string
	Closed   bool
	Releases *Releases
}

// NewThesaurus creates an empty thesaurus
func NewThesaurus() *Thesaurus {
	return &Thesaurus{
		Entries:  make(map[string][]engine.Sense),
		Releases: &Releases{},
	}
}

// Add registers a sense for word: a description followed by synonyms
func (t *Thesaurus) Add(word, description string, synonyms ...string) *Thesaurus {
	t.Entries[word] = append(t.Entries[word], engine.Sense{Description: description, Synonyms: synonyms})
	return t
}

// Lookup implements engine.Thesaurus
func (t *Thesaurus) Lookup(word []byte) *engine.Entries {
	t.Lookups = append(t.Lookups, string(word))
	senses := t.Entries[string(word)]
	if len(senses) == 0 {
		return engine.NewEntries(nil, nil)
	}
	t.Releases.Allocated++
	return engine.NewEntries(senses, t.Releases.release)
}

// Encoding implements engine.Thesaurus
func (t *Thesaurus) Encoding() string {
	if t.EncodingName == "" {
		return "UTF-8"
	}
	return t.EncodingName
}

// Close implements engine.Thesaurus
func (t *Thesaurus) Close() error {
	t.Closed = true
	return nil
}

// Releases counts allocations handed out and how many were freed
type Releases struct {
	Allocated int
	Released  int
}

// Balanced reports whether every allocation was released
func (r *Releases) Balanced() bool {
	return r.Allocated == r.Released
}

func (r *Releases) release() {
	r.Released++
}

func (r *Releases) list(words []string) *engine.List {
	if len(words) == 0 {
		return engine.NewList(nil, nil)
	}
	r.Allocated++
	return engine.NewList(words, r.release)
}

// ErrMissing is returned by Loader for paths it does not know
var ErrMissing = errors.New("enginetest: no engine for path")

// Loader hands out registered engines by dictionary base path and records
// every engine it opened.
type Loader struct {
	Spellers map[string]func() engine.Speller
	Thesauri map[string]func() engine.Thesaurus
	Opened   []string
}

// NewLoader creates an empty loader
func NewLoader() *Loader {
	return &Loader{
		Spellers: make(map[string]func() engine.Speller),
		Thesauri: make(map[string]func() engine.Thesaurus),
	}
}

// OpenSpeller implements engine.Loader; the key is affPath without extension
func (l *Loader) OpenSpeller(affPath, dicPath string) (engine.Speller, error) {
	newSpeller, ok := l.Spellers[strings.TrimSuffix(affPath, ".aff")]
	if !ok {
		return nil, ErrMissing
	}
	l.Opened = append(l.Opened, dicPath)
	return newSpeller(), nil
}

// OpenThesaurus implements engine.Loader; the key is datPath without extension
func (l *Loader) OpenThesaurus(idxPath, datPath string) (engine.Thesaurus, error) {
	newThesaurus, ok := l.Thesauri[strings.TrimSuffix(datPath, ".dat")]
	if !ok {
		return nil, ErrMissing
	}
	l.Opened = append(l.Opened, datPath)
	return newThesaurus(), nil
}
