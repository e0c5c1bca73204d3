package tools

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/client"
)

// TestSpellCheck opens a document and runs the spell checking tools against it
func TestSpellCheck(ctx context.Context, c client.MCPClient, language string) error {
	documentID, err := openDocument(ctx, c, language)
	if err != nil {
		return err
	}
	defer closeDocument(ctx, c, documentID)

	// Create a test file with spelling mistakes
	testDir, err := os.MkdirTemp("", "mcp_test_spellcheck")
	if err != nil {
		log.Printf("Failed to create test directory: %v", err)
		return err
	}
	defer os.RemoveAll(testDir)

	testFile := filepath.Join(testDir, "letter.txt")
	content := "Dear friend,\nThis is a mesage with a speling mistake.\nSee you soon.\n"
	if err := os.WriteFile(testFile, []byte(content), 0644); err != nil {
		log.Printf("Failed to create test file: %v", err)
		return err
	}

	testCases := []struct {
		name      string
		tool      string
		arguments map[string]interface{}
	}{
		{
			name: "List languages",
			tool: "languages",
			arguments: map[string]interface{}{
				"document_id": documentID,
			},
		},
		{
			name: "Check text",
			tool: "spellcheck",
			arguments: map[string]interface{}{
				"document_id": documentID,
				"text":        "This is a mesage with a speling mistake",
			},
		},
		{
			name: "Check word at cursor",
			tool: "spellcheck",
			arguments: map[string]interface{}{
				"document_id": documentID,
				"text":        "This is a mesage with a speling mistake",
				"cursor":      12,
			},
		},
		{
			name: "Check file",
			tool: "spellcheck_file",
			arguments: map[string]interface{}{
				"document_id": documentID,
				"path":        testFile,
			},
		},
		{
			name: "Ignore word",
			tool: "ignore_word",
			arguments: map[string]interface{}{
				"document_id": documentID,
				"word":        "speling",
			},
		},
		{
			name: "Check text after ignoring a word",
			tool: "spellcheck",
			arguments: map[string]interface{}{
				"document_id": documentID,
				"text":        "This is a mesage with a speling mistake",
			},
		},
		{
			name: "Look up synonyms",
			tool: "thesaurus",
			arguments: map[string]interface{}{
				"document_id": documentID,
				"word":        "travel",
				"max_words":   3,
			},
		},
		{
			name: "Look up synonyms at cursor",
			tool: "thesaurus",
			arguments: map[string]interface{}{
				"document_id": documentID,
				"text":        "She runs every morning",
				"cursor":      5,
			},
		},
		{
			name: "Disable speller",
			tool: "enable_speller",
			arguments: map[string]interface{}{
				"document_id": documentID,
				"enabled":     false,
			},
		},
	}

	for _, tc := range testCases {
		log.Printf("Running spellcheck test: %s", tc.name)

		text, err := callTool(ctx, c, tc.tool, tc.arguments)
		if err != nil {
			log.Printf("%v", err)
			continue
		}
		log.Printf("%s result:\n%s", tc.tool, text)
	}

	return nil
}

// TestSetLanguage switches a document through every installed language
func TestSetLanguage(ctx context.Context, c client.MCPClient, languages []string) error {
	documentID, err := openDocument(ctx, c, "")
	if err != nil {
		return err
	}
	defer closeDocument(ctx, c, documentID)

	for _, language := range append(languages, "xx-XX") {
		text, err := callTool(ctx, c, "set_language", map[string]interface{}{
			"document_id": documentID,
			"language":    language,
		})
		if err != nil {
			log.Printf("%v", err)
			continue
		}
		log.Printf("set_language %s result:\n%s", language, text)
	}

	return nil
}
