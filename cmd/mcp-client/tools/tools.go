// Package tools provides test functions for MCP tools
package tools

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// callTool calls a tool and returns the text of its first content item
func callTool(ctx context.Context, c client.MCPClient, name string, arguments map[string]interface{}) (string, error) {
	callReq := mcp.CallToolRequest{}
	callReq.Params.Name = name
	callReq.Params.Arguments = arguments

	result, err := c.CallTool(ctx, callReq)
	if err != nil {
		return "", fmt.Errorf("failed to call %s: %w", name, err)
	}

	var text string
	if len(result.Content) > 0 {
		if textContent, ok := result.Content[0].(mcp.TextContent); ok {
			text = textContent.Text
		}
	}
	if result.IsError {
		return text, fmt.Errorf("%s failed: %s", name, text)
	}
	return text, nil
}

// openDocument opens a document and returns its ID
func openDocument(ctx context.Context, c client.MCPClient, language string) (string, error) {
	arguments := map[string]interface{}{}
	if language != "" {
		arguments["language"] = language
	}

	text, err := callTool(ctx, c, "open_document", arguments)
	if err != nil {
		return "", err
	}
	log.Printf("open_document result:\n%s", text)

	for _, line := range strings.Split(text, "\n") {
		if id, ok := strings.CutPrefix(line, "Document ID: "); ok {
			return strings.TrimSpace(id), nil
		}
	}
	return "", fmt.Errorf("no document ID in open_document result")
}

func closeDocument(ctx context.Context, c client.MCPClient, documentID string) {
	if _, err := callTool(ctx, c, "close_document", map[string]interface{}{"document_id": documentID}); err != nil {
		log.Printf("Failed to close document: %v", err)
	}
}
