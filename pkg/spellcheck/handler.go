// Package spellcheck exposes speller sessions as MCP tools: documents are
// opened in a language, checked, and queried for corrections and synonyms.
package spellcheck

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Code-Monger/WordSpinneret/pkg/dictionary"
	"github.com/Code-Monger/WordSpinneret/pkg/documents"
	"github.com/Code-Monger/WordSpinneret/pkg/speller"
)

// Tools holds what the tool handlers share
type Tools struct {
	store          *documents.Store
	cache          *dictionary.Cache
	maxSuggestions int
}

// NewTools creates the tool handlers over a document store and the dictionary
// cache its sessions read from.
func NewTools(store *documents.Store, cache *dictionary.Cache, maxSuggestions int) *Tools {
	return &Tools{store: store, cache: cache, maxSuggestions: maxSuggestions}
}

// HandleOpenDocument is the handler function for the open_document tool
func (t *Tools) HandleOpenDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	// Extract language (optional)
	language, _ := arguments["language"].(string)

	doc, err := t.store.Open(language)
	if errors.Is(err, speller.ErrUnknownLanguage) {
		return errorResult(fmt.Sprintf("Language not available: %s", language)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening document: %w", err)
	}

	log.Printf("[SpellCheck] Opened document %s", doc.ID())

	info := doc.Info()
	var b strings.Builder
	b.WriteString("Document opened\n\n")
	fmt.Fprintf(&b, "Document ID: %s\n", info.ID)
	writeState(&b, info)
	return textResult(b.String()), nil
}

// HandleCloseDocument is the handler function for the close_document tool
func (t *Tools) HandleCloseDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "document_id")
	if err != nil {
		return nil, err
	}

	if err := t.store.Close(id); err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return errorResult(fmt.Sprintf("Document not found: %s", id)), nil
		}
		return nil, fmt.Errorf("error closing document: %w", err)
	}

	log.Printf("[SpellCheck] Closed document %s", id)
	return textResult(fmt.Sprintf("Document closed: %s", id)), nil
}

// HandleLanguages is the handler function for the languages tool
func (t *Tools) HandleLanguages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	rescan, _ := arguments["rescan"].(bool)
	var catalog *dictionary.Catalog
	var err error
	if rescan {
		catalog, err = t.cache.Rescan()
	} else {
		catalog, err = t.cache.Catalog()
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning dictionaries: %w", err)
	}

	// The current language of a document is marked
	current := ""
	if id, _ := arguments["document_id"].(string); id != "" {
		doc, result := t.document(id)
		if result != nil {
			return result, nil
		}
		current = doc.Info().Language
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Available languages (%d):\n\n", catalog.Len())
	for _, e := range catalog.Entries() {
		marker := " "
		if e.Code == current {
			marker = "*"
		}
		thesaurus := ""
		if e.HasThesaurus() {
			thesaurus = " (thesaurus)"
		}
		fmt.Fprintf(&b, "%s %s%s\n", marker, e.Code, thesaurus)
	}
	if catalog.Len() == 0 {
		fmt.Fprintf(&b, "No dictionaries found. Searched:\n")
		for _, dir := range t.cache.Candidates() {
			fmt.Fprintf(&b, "  %s\n", dir)
		}
	}
	return textResult(b.String()), nil
}

// HandleSetLanguage is the handler function for the set_language tool
func (t *Tools) HandleSetLanguage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "document_id")
	if err != nil {
		return nil, err
	}
	language, err := requiredString(request, "language")
	if err != nil {
		return nil, err
	}

	doc, result := t.document(id)
	if result != nil {
		return result, nil
	}

	err = doc.Do(func(s *speller.Session) error {
		return s.SetLanguage(language)
	})
	switch {
	case errors.Is(err, speller.ErrUnknownLanguage):
		return errorResult(fmt.Sprintf("Language not available: %s", language)), nil
	case errors.Is(err, speller.ErrLoad):
		return errorResult(fmt.Sprintf("Dictionary for %s could not be loaded: %v", language, err)), nil
	case err != nil:
		return nil, fmt.Errorf("error setting language: %w", err)
	}

	var b strings.Builder
	b.WriteString("Language set\n\n")
	writeState(&b, doc.Info())
	return textResult(b.String()), nil
}

// HandleEnableSpeller is the handler function for the enable_speller tool
func (t *Tools) HandleEnableSpeller(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "document_id")
	if err != nil {
		return nil, err
	}
	enabled, ok := request.Params.Arguments["enabled"].(bool)
	if !ok {
		return nil, fmt.Errorf("enabled must be a boolean")
	}

	doc, result := t.document(id)
	if result != nil {
		return result, nil
	}

	err = doc.Do(func(s *speller.Session) error {
		return s.EnableSpeller(enabled)
	})
	if err != nil && !errors.Is(err, speller.ErrLoad) && !errors.Is(err, speller.ErrUnknownLanguage) {
		return nil, fmt.Errorf("error enabling speller: %w", err)
	}

	var b strings.Builder
	if enabled {
		b.WriteString("Speller enabled\n\n")
	} else {
		b.WriteString("Speller disabled\n\n")
	}
	writeState(&b, doc.Info())
	if err != nil {
		fmt.Fprintf(&b, "Warning: %v\n", err)
	}
	return textResult(b.String()), nil
}

// HandleSpellCheck is the handler function for the spellcheck tool
func (t *Tools) HandleSpellCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "document_id")
	if err != nil {
		return nil, err
	}
	text, ok := request.Params.Arguments["text"].(string)
	if !ok {
		return nil, fmt.Errorf("text must be a string")
	}
	cursor, hasCursor, err := optionalInt(request, "cursor")
	if err != nil {
		return nil, err
	}

	doc, result := t.document(id)
	if result != nil {
		return result, nil
	}

	var misspellings []Misspelling
	loaded := false
	err = doc.Do(func(s *speller.Session) error {
		loaded = s.Loaded()
		if hasCursor {
			if m, ok := CheckAt(s, text, cursor, t.maxSuggestions); ok {
				misspellings = append(misspellings, m)
			}
			return nil
		}
		misspellings = CheckText(s, text, t.maxSuggestions)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error performing spell check: %w", err)
	}

	if !loaded {
		return textResult("No dictionary loaded, nothing is reported as misspelled."), nil
	}
	if len(misspellings) == 0 {
		if hasCursor {
			return textResult(fmt.Sprintf("No misspelled word at position %d.", cursor)), nil
		}
		return textResult("No spelling issues found."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d spelling issues:\n\n", len(misspellings))
	for i, m := range misspellings {
		fmt.Fprintf(&b, "%d. Word: %s\n", i+1, m.Word)
		fmt.Fprintf(&b, "   Start: %d, Length: %d\n", m.Start, m.Length)
		if len(m.Suggestions) > 0 {
			fmt.Fprintf(&b, "   Suggestions: %s\n", strings.Join(m.Suggestions, ", "))
		}
		b.WriteString("\n")
	}
	return textResult(b.String()), nil
}

// HandleSpellCheckFile is the handler function for the spellcheck_file tool.
// The path may name a directory, in which case matching files are checked.
func (t *Tools) HandleSpellCheckFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "document_id")
	if err != nil {
		return nil, err
	}
	path, err := requiredString(request, "path")
	if err != nil {
		return nil, err
	}

	pattern, _ := request.Params.Arguments["pattern"].(string)
	recursive, _ := request.Params.Arguments["recursive"].(bool)

	doc, result := t.document(id)
	if result != nil {
		return result, nil
	}

	var results []SpellCheckResult
	err = doc.Do(func(s *speller.Session) error {
		var err error
		results, err = CheckPath(s, path, pattern, recursive, t.maxSuggestions)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error performing spell check: %w", err)
	}

	if len(results) == 0 {
		return textResult("No spelling issues found."), nil
	}

	var summary strings.Builder
	fmt.Fprintf(&summary, "Found %d spelling issues:\n\n", len(results))
	for i, issue := range results {
		fmt.Fprintf(&summary, "%d. File: %s\n", i+1, issue.FilePath)
		fmt.Fprintf(&summary, "   Line: %d, Columns: %d-%d\n", issue.LineNumber, issue.ColumnStart, issue.ColumnEnd)
		fmt.Fprintf(&summary, "   Word: %s\n", issue.Word)
		fmt.Fprintf(&summary, "   Context: %s\n", issue.Context)
		if len(issue.Suggestions) > 0 {
			fmt.Fprintf(&summary, "   Suggestions: %s\n", strings.Join(issue.Suggestions, ", "))
		}
		summary.WriteString("\n")
	}
	return textResult(summary.String()), nil
}

// HandleIgnoreWord is the handler function for the ignore_word tool
func (t *Tools) HandleIgnoreWord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "document_id")
	if err != nil {
		return nil, err
	}
	word, err := requiredString(request, "word")
	if err != nil {
		return nil, err
	}

	doc, result := t.document(id)
	if result != nil {
		return result, nil
	}

	err = doc.Do(func(s *speller.Session) error {
		return s.IgnoreWord(word)
	})
	if errors.Is(err, speller.ErrNoSpeller) {
		return errorResult("No dictionary loaded for this document"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error ignoring word: %w", err)
	}

	return textResult(fmt.Sprintf("Ignoring %q until the language changes or the document is closed", word)), nil
}

// HandleThesaurus is the handler function for the thesaurus tool
func (t *Tools) HandleThesaurus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	id, err := requiredString(request, "document_id")
	if err != nil {
		return nil, err
	}
	maxWords, hasMax, err := optionalInt(request, "max_words")
	if err != nil {
		return nil, err
	}
	if !hasMax {
		maxWords = speller.MaxPreviewWords
	}

	// Either a word, or a text and the cursor position of the word
	word, _ := arguments["word"].(string)
	if word == "" {
		text, ok := arguments["text"].(string)
		if !ok {
			return nil, fmt.Errorf("either word or text and cursor must be given")
		}
		cursor, hasCursor, err := optionalInt(request, "cursor")
		if err != nil {
			return nil, err
		}
		if !hasCursor {
			return nil, fmt.Errorf("cursor is required with text")
		}
		word, ok = WordAt(text, cursor)
		if !ok {
			return textResult(fmt.Sprintf("No word at position %d.", cursor)), nil
		}
	}

	doc, result := t.document(id)
	if result != nil {
		return result, nil
	}

	var lookup ThesaurusResult
	available := false
	err = doc.Do(func(s *speller.Session) error {
		available = s.ThesaurusEnabled()
		lookup = LookupThesaurus(s, word, maxWords)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error looking up synonyms: %w", err)
	}

	if !available {
		return textResult("No thesaurus available for this document."), nil
	}
	if len(lookup.Meanings) == 0 {
		return textResult(fmt.Sprintf("No synonyms found for %q.", word)), nil
	}

	var b strings.Builder
	if lookup.Actual != word {
		fmt.Fprintf(&b, "Synonyms for %q (via %q):\n\n", word, lookup.Actual)
	} else {
		fmt.Fprintf(&b, "Synonyms for %q:\n\n", word)
	}
	for i, m := range lookup.Meanings {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m.Gloss)
		fmt.Fprintf(&b, "   %s\n", strings.Join(m.Synonyms, ", "))
	}
	b.WriteString("\nSuggested: ")
	b.WriteString(strings.Join(lookup.Sample, ", "))
	if lookup.More {
		b.WriteString(", ...")
	}
	b.WriteString("\n")
	return textResult(b.String()), nil
}

// document looks up an open document; a non-nil result reports a missing one
func (t *Tools) document(id string) (*documents.Document, *mcp.CallToolResult) {
	doc, err := t.store.Get(id)
	if err != nil {
		return nil, errorResult(fmt.Sprintf("Document not found: %s", id))
	}
	return doc, nil
}

// writeState appends the speller state of a document
func writeState(b *strings.Builder, info documents.Info) {
	language := info.Language
	if language == "" {
		language = "(none)"
	}
	fmt.Fprintf(b, "Language: %s\n", language)
	fmt.Fprintf(b, "Speller enabled: %s\n", yesNo(info.Enabled))
	fmt.Fprintf(b, "Dictionary loaded: %s\n", yesNo(info.Loaded))
	fmt.Fprintf(b, "Thesaurus available: %s\n", yesNo(info.HasThesaurus))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func requiredString(request mcp.CallToolRequest, name string) (string, error) {
	v, ok := request.Params.Arguments[name].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%s must be a non-empty string", name)
	}
	return v, nil
}

// optionalInt reads a JSON number argument
func optionalInt(request mcp.CallToolRequest, name string) (int, bool, error) {
	raw, ok := request.Params.Arguments[name]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return int(v), true, nil
	case int:
		return v, true, nil
	}
	return 0, false, fmt.Errorf("%s must be a number", name)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	result := textResult(text)
	result.IsError = true
	return result
}
