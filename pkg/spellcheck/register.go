package spellcheck

import (
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Code-Monger/WordSpinneret/pkg/stats"
)

// RegisterSpellCheck registers the document and spell checking tools with the MCP server
func RegisterSpellCheck(mcpServer *server.MCPServer, tools *Tools) {
	documentID := mcp.WithString("document_id",
		mcp.Description("ID of a document returned by open_document"),
		mcp.Required(),
	)

	mcpServer.AddTool(mcp.NewTool("open_document",
		mcp.WithDescription("Opens a document with its own speller session and returns its ID. The speller starts enabled."),
		mcp.WithString("language",
			mcp.Description("Language code such as en-US (default: the configured default language)"),
		),
	), stats.WrapHandler("open_document", tools.HandleOpenDocument))

	mcpServer.AddTool(mcp.NewTool("close_document",
		mcp.WithDescription("Closes a document and releases its dictionaries"),
		documentID,
	), stats.WrapHandler("close_document", tools.HandleCloseDocument))

	mcpServer.AddTool(mcp.NewTool("languages",
		mcp.WithDescription("Lists the installed dictionary languages, marking the current language of a document"),
		mcp.WithString("document_id",
			mcp.Description("Document whose current language is marked"),
		),
		mcp.WithBoolean("rescan",
			mcp.Description("Search the dictionary directories again (default: false)"),
		),
	), stats.WrapHandler("languages", tools.HandleLanguages))

	mcpServer.AddTool(mcp.NewTool("set_language",
		mcp.WithDescription("Switches the language of a document"),
		documentID,
		mcp.WithString("language",
			mcp.Description("Language code such as en-US"),
			mcp.Required(),
		),
	), stats.WrapHandler("set_language", tools.HandleSetLanguage))

	mcpServer.AddTool(mcp.NewTool("enable_speller",
		mcp.WithDescription("Turns spell checking of a document on or off. Turning it off releases the dictionaries."),
		documentID,
		mcp.WithBoolean("enabled",
			mcp.Description("Whether the speller is enabled"),
			mcp.Required(),
		),
	), stats.WrapHandler("enable_speller", tools.HandleEnableSpeller))

	mcpServer.AddTool(mcp.NewTool("spellcheck",
		mcp.WithDescription("Finds misspelled words in a text and suggests corrections. Positions count characters from 0."),
		documentID,
		mcp.WithString("text",
			mcp.Description("The text to check"),
			mcp.Required(),
		),
		mcp.WithNumber("cursor",
			mcp.Description("Only report the misspelled word at this character position"),
		),
	), stats.WrapHandler("spellcheck", tools.HandleSpellCheck))

	mcpServer.AddTool(mcp.NewTool("spellcheck_file",
		mcp.WithDescription("Checks the spelling of a text file line by line, or of the files in a directory"),
		documentID,
		mcp.WithString("path",
			mcp.Description("The path of the file or directory to check"),
			mcp.Required(),
		),
		mcp.WithString("pattern",
			mcp.Description("File name pattern for directories, e.g. *.txt (default: all files)"),
		),
		mcp.WithBoolean("recursive",
			mcp.Description("Check sub-directories too (default: false)"),
		),
	), stats.WrapHandler("spellcheck_file", tools.HandleSpellCheckFile))

	mcpServer.AddTool(mcp.NewTool("ignore_word",
		mcp.WithDescription("Accepts a word in a document until its language changes or it is closed"),
		documentID,
		mcp.WithString("word",
			mcp.Description("The word to accept"),
			mcp.Required(),
		),
	), stats.WrapHandler("ignore_word", tools.HandleIgnoreWord))

	mcpServer.AddTool(mcp.NewTool("thesaurus",
		mcp.WithDescription("Looks up synonyms of a word, falling back to its stems. Give either word, or text and cursor."),
		documentID,
		mcp.WithString("word",
			mcp.Description("The word to look up"),
		),
		mcp.WithString("text",
			mcp.Description("Text containing the word"),
		),
		mcp.WithNumber("cursor",
			mcp.Description("Character position of the word in text"),
		),
		mcp.WithNumber("max_words",
			mcp.Description("Number of synonyms to suggest across meanings (default: 5)"),
		),
	), stats.WrapHandler("thesaurus", tools.HandleThesaurus))

	log.Printf("[SpellCheck] Registered spell checking tools")
}
