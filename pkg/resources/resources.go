// Package resources publishes read-only MCP resources: the dictionary
// catalog, the open documents and the server state.
package resources

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Code-Monger/WordSpinneret/pkg/dictionary"
	"github.com/Code-Monger/WordSpinneret/pkg/documents"
)

// Resource URIs
const (
	CatalogURI          = "dictionaries://catalog"
	DocumentsURI        = "documents://info"
	DocumentURITemplate = "documents://info/{document_id}"
	ServerInfoURI       = "server://info"
)

// Resources serves the resource handlers
type Resources struct {
	cache *dictionary.Cache
	store *documents.Store
}

// New creates the resource handlers
func New(cache *dictionary.Cache, store *documents.Store) *Resources {
	return &Resources{cache: cache, store: store}
}

// HandleCatalog is the handler function for the dictionary catalog resource
func (r *Resources) HandleCatalog(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	catalog, err := r.cache.Catalog()
	if err != nil {
		return nil, fmt.Errorf("error scanning dictionaries: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dictionary Catalog (%d languages):\n\n", catalog.Len())
	for _, e := range catalog.Entries() {
		fmt.Fprintf(&b, "%s\n", e.Code)
		fmt.Fprintf(&b, "   dictionary: %s\n", e.DictionaryPath())
		fmt.Fprintf(&b, "   affix: %s\n", e.AffixPath())
		if e.HasThesaurus() {
			fmt.Fprintf(&b, "   thesaurus: %s\n", e.DataPath())
			fmt.Fprintf(&b, "   thesaurus index: %s\n", e.IndexPath())
		}
	}

	b.WriteString("\nSearch directories (scan order):\n")
	for _, dir := range r.cache.Dirs() {
		fmt.Fprintf(&b, "   %s\n", dir)
	}

	return textContents(request, b.String()), nil
}

// HandleDocuments is the handler function for the document resources. Without
// an id in the URI every open document is listed.
func (r *Resources) HandleDocuments(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := strings.TrimPrefix(request.Params.URI, DocumentsURI)
	id = strings.TrimPrefix(id, "/")

	if id == "" {
		infos := r.store.List()

		var b strings.Builder
		fmt.Fprintf(&b, "Open Documents (%d):\n\n", len(infos))
		for i, info := range infos {
			fmt.Fprintf(&b, "%d. Document ID: %s\n", i+1, info.ID)
			writeInfo(&b, "   ", info)
			b.WriteString("\n")
		}
		return textContents(request, b.String()), nil
	}

	doc, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("Document Information:\n\n")
	fmt.Fprintf(&b, "document_id: %s\n", id)
	writeInfo(&b, "", doc.Info())
	return textContents(request, b.String()), nil
}

func writeInfo(b *strings.Builder, indent string, info documents.Info) {
	fmt.Fprintf(b, "%slanguage: %s\n", indent, info.Language)
	fmt.Fprintf(b, "%senabled: %t\n", indent, info.Enabled)
	fmt.Fprintf(b, "%sdictionary_loaded: %t\n", indent, info.Loaded)
	fmt.Fprintf(b, "%sthesaurus: %t\n", indent, info.HasThesaurus)
	fmt.Fprintf(b, "%sopened: %s\n", indent, info.Opened.Format(time.RFC3339))
	fmt.Fprintf(b, "%slast_access: %s\n", indent, info.LastAccess.Format(time.RFC3339))
}

// HandleServerInfo is the handler function for the server info resource
func (r *Resources) HandleServerInfo(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	languages := 0
	if catalog, err := r.cache.Catalog(); err == nil {
		languages = catalog.Len()
	}

	info := []struct {
		key   string
		value interface{}
	}{
		{"timestamp", time.Now().Format(time.RFC3339)},
		{"go_version", runtime.Version()},
		{"os", runtime.GOOS},
		{"architecture", runtime.GOARCH},
		{"goroutines", runtime.NumGoroutine()},
		{"memory_stats", getMemoryStats()},
		{"uptime_seconds", getUptime()},
		{"languages", languages},
		{"open_documents", r.store.Len()},
	}

	var b strings.Builder
	b.WriteString("Server Information:\n\n")
	for _, kv := range info {
		fmt.Fprintf(&b, "%s: %v\n", kv.key, kv.value)
	}

	return textContents(request, b.String()), nil
}

// RegisterResources registers the resources with the MCP server
func RegisterResources(mcpServer *server.MCPServer, r *Resources) {
	mcpServer.AddResource(
		mcp.NewResource(
			CatalogURI,
			"Dictionary Catalog",
			mcp.WithMIMEType("text/plain"),
		),
		r.HandleCatalog,
	)

	mcpServer.AddResource(
		mcp.NewResource(
			DocumentsURI,
			"Open Documents",
			mcp.WithMIMEType("text/plain"),
		),
		r.HandleDocuments,
	)

	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			DocumentURITemplate,
			"Document Information",
			mcp.WithTemplateMIMEType("text/plain"),
			mcp.WithTemplateDescription("Speller state of an open document"),
		),
		r.HandleDocuments,
	)

	mcpServer.AddResource(
		mcp.NewResource(
			ServerInfoURI,
			"Server Information",
			mcp.WithMIMEType("text/plain"),
		),
		r.HandleServerInfo,
	)

	log.Printf("[Resources] Registered catalog, document and server resources")
}

func textContents(request mcp.ReadResourceRequest, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		},
	}
}

// getMemoryStats returns memory statistics
func getMemoryStats() map[string]interface{} {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return map[string]interface{}{
		"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
		"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
		"num_gc":   memStats.NumGC,
	}
}

// startTime is used to calculate uptime
var startTime = time.Now()

// getUptime returns the server uptime in seconds
func getUptime() float64 {
	return time.Since(startTime).Seconds()
}
