package spellcheck

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Code-Monger/WordSpinneret/pkg/dictionary"
	"github.com/Code-Monger/WordSpinneret/pkg/documents"
	"github.com/Code-Monger/WordSpinneret/pkg/engine"
	"github.com/Code-Monger/WordSpinneret/pkg/engine/enginetest"
)

// newTestTools installs en_US with a thesaurus and de_DE without one in a
// temporary dictionary directory.
func newTestTools(t *testing.T) *Tools {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"en_US.dic", "en_US.aff", "th_en_US_v2.dat", "th_en_US_v2.idx", "de_DE.dic", "de_DE.aff"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	base := filepath.ToSlash(resolved)

	loader := enginetest.NewLoader()
	loader.Spellers[base+"/en_US"] = func() engine.Speller {
		sp := enginetest.NewSpeller("hello", "world", "the", "car", "runs", "run", "fast")
		sp.Suggestions["wrold"] = []string{"world", "wold"}
		sp.Stems["runs"] = []string{"run"}
		return sp
	}
	loader.Spellers[base+"/de_DE"] = func() engine.Speller {
		return enginetest.NewSpeller("hallo", "welt")
	}
	loader.Thesauri[base+"/th_en_US_v2"] = func() engine.Thesaurus {
		return enginetest.NewThesaurus().
			Add("run", "(verb)", "sprint", "jog", "dash").
			Add("run", "(noun)", "trip", "outing").
			Add("car", "(noun)", "automobile", "auto")
	}

	cache := dictionary.NewCache([]string{dir}, nil)
	store := documents.NewStore(cache, loader, documents.Options{DefaultLanguage: "en-US", Thesaurus: true})
	t.Cleanup(func() { store.CloseAll() })
	return NewTools(store, cache, 5)
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	var request mcp.CallToolRequest
	request.Params.Arguments = args

	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func openDocument(t *testing.T, tools *Tools, language string) string {
	t.Helper()
	result := call(t, tools.HandleOpenDocument, map[string]interface{}{"language": language})
	require.False(t, result.IsError, resultText(t, result))

	infos := tools.store.List()
	require.NotEmpty(t, infos)
	return infos[len(infos)-1].ID
}

func TestHandleOpenDocument(t *testing.T) {
	tools := newTestTools(t)

	result := call(t, tools.HandleOpenDocument, map[string]interface{}{})
	text := resultText(t, result)
	assert.False(t, result.IsError)
	assert.Contains(t, text, "Document ID: ")
	assert.Contains(t, text, "Language: en-US")
	assert.Contains(t, text, "Dictionary loaded: yes")
	assert.Contains(t, text, "Thesaurus available: yes")

	result = call(t, tools.HandleOpenDocument, map[string]interface{}{"language": "xx-XX"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Language not available: xx-XX")
}

func TestHandleSpellCheck(t *testing.T) {
	tools := newTestTools(t)
	id := openDocument(t, tools, "en-US")

	text := resultText(t, call(t, tools.HandleSpellCheck, map[string]interface{}{
		"document_id": id,
		"text":        "hello wrold, the car runs fsat",
	}))
	assert.Contains(t, text, "Found 2 spelling issues")
	assert.Contains(t, text, "Word: wrold")
	assert.Contains(t, text, "Start: 6, Length: 5")
	assert.Contains(t, text, "Suggestions: world, wold")
	assert.Contains(t, text, "Word: fsat")

	text = resultText(t, call(t, tools.HandleSpellCheck, map[string]interface{}{
		"document_id": id,
		"text":        "hello world",
	}))
	assert.Equal(t, "No spelling issues found.", text)
}

func TestHandleSpellCheckAtCursor(t *testing.T) {
	tools := newTestTools(t)
	id := openDocument(t, tools, "en-US")

	text := resultText(t, call(t, tools.HandleSpellCheck, map[string]interface{}{
		"document_id": id,
		"text":        "hello wrold, the car runs fsat",
		"cursor":      float64(11),
	}))
	assert.Contains(t, text, "Found 1 spelling issues")
	assert.Contains(t, text, "Word: wrold")
	assert.NotContains(t, text, "fsat")

	text = resultText(t, call(t, tools.HandleSpellCheck, map[string]interface{}{
		"document_id": id,
		"text":        "hello wrold",
		"cursor":      float64(2),
	}))
	assert.Equal(t, "No misspelled word at position 2.", text)
}

func TestHandleSpellCheckArguments(t *testing.T) {
	tools := newTestTools(t)

	var request mcp.CallToolRequest
	request.Params.Arguments = map[string]interface{}{"text": "hello"}
	_, err := tools.HandleSpellCheck(context.Background(), request)
	assert.Error(t, err, "document_id is required")

	request.Params.Arguments = map[string]interface{}{"document_id": "x", "text": "hello", "cursor": "three"}
	_, err = tools.HandleSpellCheck(context.Background(), request)
	assert.Error(t, err, "cursor must be a number")

	result := call(t, tools.HandleSpellCheck, map[string]interface{}{"document_id": "missing", "text": "hello"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Document not found")
}

func TestHandleEnableSpellerRoundTrip(t *testing.T) {
	tools := newTestTools(t)
	id := openDocument(t, tools, "en-US")
	check := map[string]interface{}{"document_id": id, "text": "hello wrold"}

	before := resultText(t, call(t, tools.HandleSpellCheck, check))

	text := resultText(t, call(t, tools.HandleEnableSpeller, map[string]interface{}{"document_id": id, "enabled": false}))
	assert.Contains(t, text, "Speller disabled")
	assert.Contains(t, text, "Dictionary loaded: no")
	assert.Contains(t, text, "Language: en-US")

	assert.Equal(t, "No dictionary loaded, nothing is reported as misspelled.",
		resultText(t, call(t, tools.HandleSpellCheck, check)))

	text = resultText(t, call(t, tools.HandleEnableSpeller, map[string]interface{}{"document_id": id, "enabled": true}))
	assert.Contains(t, text, "Dictionary loaded: yes")
	assert.Equal(t, before, resultText(t, call(t, tools.HandleSpellCheck, check)))
}

func TestHandleEnableSpellerLanguageRemoved(t *testing.T) {
	tools := newTestTools(t)
	id := openDocument(t, tools, "de-DE")

	call(t, tools.HandleEnableSpeller, map[string]interface{}{"document_id": id, "enabled": false})

	catalog, err := tools.cache.Catalog()
	require.NoError(t, err)
	entry, ok := catalog.Lookup("de-DE")
	require.True(t, ok)
	require.NoError(t, os.Remove(entry.DictionaryPath()))
	require.NoError(t, os.Remove(entry.AffixPath()))
	_, err = tools.cache.Rescan()
	require.NoError(t, err)

	result := call(t, tools.HandleEnableSpeller, map[string]interface{}{"document_id": id, "enabled": true})
	text := resultText(t, result)
	assert.False(t, result.IsError)
	assert.Contains(t, text, "Speller enabled")
	assert.Contains(t, text, "Language: de-DE")
	assert.Contains(t, text, "Dictionary loaded: no")
	assert.Contains(t, text, "Warning: language not available")
}

func TestHandleSetLanguage(t *testing.T) {
	tools := newTestTools(t)
	id := openDocument(t, tools, "en-US")

	text := resultText(t, call(t, tools.HandleSetLanguage, map[string]interface{}{"document_id": id, "language": "de-DE"}))
	assert.Contains(t, text, "Language: de-DE")
	assert.Contains(t, text, "Thesaurus available: no")

	result := call(t, tools.HandleSetLanguage, map[string]interface{}{"document_id": id, "language": "fr-FR"})
	assert.True(t, result.IsError)

	text = resultText(t, call(t, tools.HandleLanguages, map[string]interface{}{"document_id": id}))
	assert.Contains(t, text, "* de-DE")
	assert.Contains(t, text, "  en-US (thesaurus)")
}

func TestHandleLanguagesRescan(t *testing.T) {
	tools := newTestTools(t)

	text := resultText(t, call(t, tools.HandleLanguages, map[string]interface{}{}))
	assert.Contains(t, text, "Available languages (2)")

	dir := tools.cache.Candidates()[0]
	for _, name := range []string{"nl_NL.dic", "nl_NL.aff"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	text = resultText(t, call(t, tools.HandleLanguages, map[string]interface{}{}))
	assert.Contains(t, text, "Available languages (2)", "the catalog is cached")

	text = resultText(t, call(t, tools.HandleLanguages, map[string]interface{}{"rescan": true}))
	assert.Contains(t, text, "Available languages (3)")
	assert.Contains(t, text, "nl-NL")
}

func TestHandleIgnoreWord(t *testing.T) {
	tools := newTestTools(t)
	id := openDocument(t, tools, "en-US")

	text := resultText(t, call(t, tools.HandleIgnoreWord, map[string]interface{}{"document_id": id, "word": "wrold"}))
	assert.Contains(t, text, `Ignoring "wrold"`)

	assert.Equal(t, "No spelling issues found.",
		resultText(t, call(t, tools.HandleSpellCheck, map[string]interface{}{"document_id": id, "text": "hello wrold"})))

	call(t, tools.HandleEnableSpeller, map[string]interface{}{"document_id": id, "enabled": false})
	result := call(t, tools.HandleIgnoreWord, map[string]interface{}{"document_id": id, "word": "wrold"})
	assert.True(t, result.IsError)
}

func TestHandleThesaurus(t *testing.T) {
	tools := newTestTools(t)
	id := openDocument(t, tools, "en-US")

	text := resultText(t, call(t, tools.HandleThesaurus, map[string]interface{}{
		"document_id": id,
		"word":        "runs",
		"max_words":   float64(3),
	}))
	assert.Contains(t, text, `Synonyms for "runs" (via "run")`)
	assert.Contains(t, text, "1. (verb)")
	assert.Contains(t, text, "sprint, jog, dash")
	assert.Contains(t, text, "Suggested: sprint, trip, jog, ...")

	text = resultText(t, call(t, tools.HandleThesaurus, map[string]interface{}{
		"document_id": id,
		"text":        "the car",
		"cursor":      float64(5),
	}))
	assert.Contains(t, text, `Synonyms for "car"`)
	assert.Contains(t, text, "Suggested: automobile, auto\n")

	text = resultText(t, call(t, tools.HandleThesaurus, map[string]interface{}{"document_id": id, "word": "hello"}))
	assert.Equal(t, `No synonyms found for "hello".`, text)
}

func TestHandleThesaurusUnavailable(t *testing.T) {
	tools := newTestTools(t)
	id := openDocument(t, tools, "de-DE")

	text := resultText(t, call(t, tools.HandleThesaurus, map[string]interface{}{"document_id": id, "word": "hallo"}))
	assert.Equal(t, "No thesaurus available for this document.", text)

	var request mcp.CallToolRequest
	request.Params.Arguments = map[string]interface{}{"document_id": id, "text": "hallo"}
	_, err := tools.HandleThesaurus(context.Background(), request)
	assert.Error(t, err, "text needs a cursor")
}

func TestHandleSpellCheckFile(t *testing.T) {
	tools := newTestTools(t)
	id := openDocument(t, tools, "en-US")

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world\nthe car runs fsat\n"), 0o644))

	text := resultText(t, call(t, tools.HandleSpellCheckFile, map[string]interface{}{"document_id": id, "path": path}))
	assert.Contains(t, text, "Found 1 spelling issues")
	assert.Contains(t, text, "Line: 2, Columns: 14-18")
	assert.Contains(t, text, "Context: the car runs fsat")
}

func TestHandleSpellCheckDirectory(t *testing.T) {
	tools := newTestTools(t)
	id := openDocument(t, tools, "en-US")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello wrold\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.log"), []byte("wrold wrold\n"), 0o644))

	text := resultText(t, call(t, tools.HandleSpellCheckFile, map[string]interface{}{
		"document_id": id,
		"path":        dir,
		"pattern":     "*.txt",
	}))
	assert.Contains(t, text, "Found 1 spelling issues")
	assert.Contains(t, text, "a.txt")
	assert.NotContains(t, text, "b.log")
}

func TestHandleCloseDocument(t *testing.T) {
	tools := newTestTools(t)
	id := openDocument(t, tools, "en-US")

	text := resultText(t, call(t, tools.HandleCloseDocument, map[string]interface{}{"document_id": id}))
	assert.Contains(t, text, "Document closed")

	result := call(t, tools.HandleCloseDocument, map[string]interface{}{"document_id": id})
	assert.True(t, result.IsError)
}
