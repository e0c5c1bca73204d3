package dictionary

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Extensions of the two files that make up a speller or thesaurus pair
const (
	ExtDictionary = ".dic"
	ExtAffix      = ".aff"
	ExtThesaurus  = ".dat"
	ExtIndex      = ".idx"
)

// ErrScan is wrapped by every error returned from Scan
var ErrScan = errors.New("dictionary scan failed")

// LanguageEntry describes the files installed for one language. DictBase and
// ThesBase are full paths without extension; ThesBase is empty when the
// language has no thesaurus.
type LanguageEntry struct {
	Code     string `json:"code"`
	DictBase string `json:"dict_base"`
	ThesBase string `json:"thes_base,omitempty"`
}

// AffixPath returns the path of the .aff file
func (e LanguageEntry) AffixPath() string { return e.DictBase + ExtAffix }

// DictionaryPath returns the path of the .dic file
func (e LanguageEntry) DictionaryPath() string { return e.DictBase + ExtDictionary }

// IndexPath returns the path of the thesaurus .idx file, or "" without a thesaurus
func (e LanguageEntry) IndexPath() string {
	if e.ThesBase == "" {
		return ""
	}
	return e.ThesBase + ExtIndex
}

// DataPath returns the path of the thesaurus .dat file, or "" without a thesaurus
func (e LanguageEntry) DataPath() string {
	if e.ThesBase == "" {
		return ""
	}
	return e.ThesBase + ExtThesaurus
}

// HasThesaurus reports whether thesaurus files were found for the language
func (e LanguageEntry) HasThesaurus() bool { return e.ThesBase != "" }

// Catalog is the immutable result of a scan: at most one entry per language
// code, in discovery order.
type Catalog struct {
	entries []LanguageEntry
	index   map[string]int
}

// NewCatalog builds a catalog from entries. Later entries with the same code
// replace earlier ones and entries without a dictionary are dropped.
func NewCatalog(entries ...LanguageEntry) *Catalog {
	b := newBuilder()
	for _, e := range entries {
		b.put(e)
	}
	return b.commit(nil)
}

// Languages returns the language codes in catalog order
func (c *Catalog) Languages() []string {
	if c == nil {
		return nil
	}
	codes := make([]string, len(c.entries))
	for i, e := range c.entries {
		codes[i] = e.Code
	}
	return codes
}

// Entries returns a copy of the catalog entries
func (c *Catalog) Entries() []LanguageEntry {
	if c == nil {
		return nil
	}
	return append([]LanguageEntry(nil), c.entries...)
}

// Lookup returns the entry for a language code
func (c *Catalog) Lookup(code string) (LanguageEntry, bool) {
	if c == nil {
		return LanguageEntry{}, false
	}
	i, ok := c.index[code]
	if !ok {
		return LanguageEntry{}, false
	}
	return c.entries[i], true
}

// Contains reports whether code is in the catalog
func (c *Catalog) Contains(code string) bool {
	_, ok := c.Lookup(code)
	return ok
}

// Preferred returns code when the catalog has it, otherwise the first
// language of the catalog. An empty catalog yields "".
func (c *Catalog) Preferred(code string) string {
	if c.Contains(code) {
		return code
	}
	if c.Len() == 0 {
		return ""
	}
	return c.entries[0].Code
}

// Len returns the number of languages in the catalog
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// builder accumulates entries during a scan. Values are replaced, never
// mutated, so a committed catalog cannot observe a half-updated entry.
type builder struct {
	entries []LanguageEntry
	index   map[string]int
}

func newBuilder() *builder {
	return &builder{index: make(map[string]int)}
}

// put merges e into the entry with the same code, non-empty fields winning
func (b *builder) put(e LanguageEntry) {
	i, ok := b.index[e.Code]
	if !ok {
		b.index[e.Code] = len(b.entries)
		b.entries = append(b.entries, e)
		return
	}
	merged := b.entries[i]
	if e.DictBase != "" {
		merged.DictBase = e.DictBase
	}
	if e.ThesBase != "" {
		merged.ThesBase = e.ThesBase
	}
	b.entries[i] = merged
}

// found records a speller (.dic) or thesaurus (.dat) file
func (b *builder) found(path string, isSpeller bool) {
	e := LanguageEntry{Code: NormalizeLanguage(path, isSpeller)}
	if isSpeller {
		e.DictBase = baseName(path)
	} else {
		e.ThesBase = baseName(path)
	}
	b.put(e)
}

// commit keeps only languages with a speller; a thesaurus cannot be used alone
func (b *builder) commit(logger *slog.Logger) *Catalog {
	c := &Catalog{index: make(map[string]int)}
	for _, e := range b.entries {
		if e.DictBase == "" {
			if logger != nil {
				logger.Debug("language only has a thesaurus, ignoring", "lang", e.Code, "path", e.ThesBase)
			}
			continue
		}
		c.index[e.Code] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c
}

// Scan enumerates the dictionary and thesaurus files of every directory in
// paths. The list must be ordered from least to most important: a language
// found in several directories takes the files of the last one.
func Scan(paths []string, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	b := newBuilder()
	for _, dir := range paths {
		if err := scanDir(b, dir); err != nil {
			return nil, err
		}
	}

	catalog := b.commit(logger)
	for _, e := range catalog.entries {
		logger.Debug("language found", "lang", e.Code, "dict", e.DictBase, "thes", e.ThesBase)
	}
	return catalog, nil
}

// scanDir adds the complete pairs of one directory to b, speller files first
func scanDir(b *builder, dir string) error {
	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return fmt.Errorf("%w: resolving %s: %v", ErrScan, dir, err)
	}

	// os.ReadDir sorts by name, so en_US_v2 follows en_US_v1 and wins
	entries, err := os.ReadDir(canonical)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrScan, dir, err)
	}

	passes := []struct {
		pattern   string
		sibling   string
		isSpeller bool
	}{
		{"*" + ExtDictionary, ExtAffix, true},
		{"*" + ExtThesaurus, ExtIndex, false},
	}

	for _, pass := range passes {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if ok, _ := filepath.Match(pass.pattern, entry.Name()); !ok {
				continue
			}
			path := toSlash(canonical) + "/" + entry.Name()
			if !fileExists(baseName(path) + pass.sibling) {
				continue
			}
			b.found(path, pass.isSpeller)
		}
	}

	return nil
}

// fileExists reports whether path names an existing non-directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// dirExists reports whether path names an existing directory
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func toSlash(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
