package resources

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

func newTestResources(t *testing.T) (*Resources, *documents.Store) {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"en_US.dic", "en_US.aff", "th_en_US_v2.dat", "th_en_US_v2.idx"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	base := filepath.ToSlash(resolved)

	loader := enginetest.NewLoader()
	loader.Spellers[base+"/en_US"] = func() engine.Speller {
		return enginetest.NewSpeller("hello")
	}

	cache := dictionary.NewCache([]string{dir}, nil)
	store := documents.NewStore(cache, loader, documents.Options{DefaultLanguage: "en-US"})
	t.Cleanup(func() { store.CloseAll() })
	return New(cache, store), store
}

func read(t *testing.T, handler func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error), uri string) string {
	t.Helper()
	var request mcp.ReadResourceRequest
	request.Params.URI = uri

	contents, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, uri, text.URI)
	assert.Equal(t, "text/plain", text.MIMEType)
	return text.Text
}

func TestHandleCatalog(t *testing.T) {
	r, _ := newTestResources(t)

	text := read(t, r.HandleCatalog, CatalogURI)
	assert.Contains(t, text, "Dictionary Catalog (1 languages):")
	assert.Contains(t, text, "en-US\n")
	assert.Contains(t, text, "en_US.dic")
	assert.Contains(t, text, "th_en_US_v2.idx")
	assert.Contains(t, text, "Search directories (scan order):")
}

func TestHandleDocuments(t *testing.T) {
	r, store := newTestResources(t)

	text := read(t, r.HandleDocuments, DocumentsURI)
	assert.Contains(t, text, "Open Documents (0):")

	doc, err := store.Open("")
	require.NoError(t, err)

	text = read(t, r.HandleDocuments, DocumentsURI)
	assert.Contains(t, text, "Open Documents (1):")
	assert.Contains(t, text, "1. Document ID: "+doc.ID())
	assert.Contains(t, text, "   language: en-US")

	text = read(t, r.HandleDocuments, DocumentsURI+"/"+doc.ID())
	assert.Contains(t, text, "document_id: "+doc.ID())
	assert.Contains(t, text, "dictionary_loaded: true")
}

func TestHandleDocumentsUnknownID(t *testing.T) {
	r, _ := newTestResources(t)

	var request mcp.ReadResourceRequest
	request.Params.URI = DocumentsURI + "/missing"
	_, err := r.HandleDocuments(context.Background(), request)
	assert.ErrorIs(t, err, documents.ErrNotFound)
}

func TestHandleServerInfo(t *testing.T) {
	r, store := newTestResources(t)
	_, err := store.Open("")
	require.NoError(t, err)

	text := read(t, r.HandleServerInfo, ServerInfoURI)
	assert.Contains(t, text, "Server Information:")
	assert.Contains(t, text, "go_version: go")
	assert.Contains(t, text, "languages: 1")
	assert.Contains(t, text, "open_documents: 1")
}
