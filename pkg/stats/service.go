package stats

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var (
	// Global stats manager instance
	globalStatsManager *StatsManager
)

// InitStatsManager initializes the global stats manager. An empty dataDir
// keeps the statistics in memory.
func InitStatsManager(dataDir string) error {
	statsFilePath := ""
	if dataDir != "" {
		statsFilePath = filepath.Join(dataDir, "stats.json")
	}
	var err error
	globalStatsManager, err = NewStatsManager(statsFilePath)
	return err
}

// GetStatsManager returns the global stats manager
func GetStatsManager() *StatsManager {
	return globalStatsManager
}

// HandleGetStats handles requests to get tool usage statistics
func HandleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Printf("[Stats] Received request to get stats")

	if globalStatsManager == nil {
		return nil, fmt.Errorf("stats manager not initialized")
	}

	statsText := FormatStats(globalStatsManager.GetSessionStats(), globalStatsManager.GetPersistentStats())

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: statsText,
			},
		},
	}, nil
}

// RecordToolUsage records statistics for a tool call
func RecordToolUsage(toolName string, startTime time.Time, result *mcp.CallToolResult, err error) {
	if globalStatsManager == nil {
		return
	}

	executionTime := time.Since(startTime)
	failed := err != nil || (result != nil && result.IsError)
	outputBytes := outputSize(result)

	log.Printf("[Stats] Recording usage for tool '%s': execution time=%v, output=%d bytes, failed=%t",
		toolName, executionTime, outputBytes, failed)

	if err := globalStatsManager.RecordToolUsage(toolName, executionTime, outputBytes, failed); err != nil {
		// Log the error but don't fail the request
		log.Printf("[Stats] Failed to record tool usage: %v", err)
	}
}

// WrapHandler wraps a tool handler with stats tracking
func WrapHandler(toolName string, handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		startTime := time.Now()

		result, err := handler(ctx, request)
		RecordToolUsage(toolName, startTime, result, err)
		if err != nil {
			log.Printf("[Stats] Error executing tool '%s': %v", toolName, err)
			return nil, err
		}

		return result, nil
	}
}

// outputSize returns the number of text bytes in the result
func outputSize(result *mcp.CallToolResult) int {
	if result == nil {
		return 0
	}
	size := 0
	for _, content := range result.Content {
		if c, ok := content.(mcp.TextContent); ok {
			size += len(c.Text)
		}
	}
	return size
}

// RegisterStats registers the stats tool with the MCP server
func RegisterStats(mcpServer *server.MCPServer) {
	statsTool := mcp.NewTool("stats",
		mcp.WithDescription("Retrieves usage statistics for the spell checking tools"),
	)

	mcpServer.AddTool(statsTool, WrapHandler("stats", HandleGetStats))

	log.Printf("[Stats] Registered stats tool")
}
