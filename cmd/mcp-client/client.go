package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Code-Monger/WordSpinneret/cmd/mcp-client/tools"
)

// Client represents the MCP client application
type Client struct {
	serverURL string
	language  string
	mcpClient client.MCPClient
}

// NewClient creates a new MCP client
func NewClient(serverURL, language string) *Client {
	return &Client{
		serverURL: serverURL,
		language:  language,
	}
}

// Run initializes and runs the client with the specified tool test
func (c *Client) Run(ctx context.Context, testTool string) error {
	log.Printf("Connecting to MCP server at %s...", c.serverURL)
	sseClient, err := client.NewSSEMCPClient(c.serverURL)
	if err != nil {
		return fmt.Errorf("failed to create SSE client: %v", err)
	}
	defer sseClient.Close()

	if err := sseClient.Start(ctx); err != nil {
		return fmt.Errorf("failed to start SSE client: %v", err)
	}

	c.mcpClient = sseClient

	if err := c.initialize(ctx); err != nil {
		return err
	}

	resourcesResult, toolsResult, err := c.listResourcesAndTools(ctx)
	if err != nil {
		return err
	}

	if err := c.testTool(ctx, testTool, toolsResult); err != nil {
		return err
	}

	// Read every static resource, the catalog and server info included
	for _, resource := range resourcesResult.Resources {
		ReadResource(ctx, c.mcpClient, resource.URI)
	}

	return nil
}

// initialize initializes the MCP client
func (c *Client) initialize(ctx context.Context) error {
	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION

	initResult, err := c.mcpClient.Initialize(ctx, initReq)
	if err != nil {
		return fmt.Errorf("failed to initialize client: %v", err)
	}

	log.Printf("Connected to server successfully")
	log.Printf("Server capabilities: %+v", initResult.Capabilities)
	return nil
}

// listResourcesAndTools lists available resources and tools
func (c *Client) listResourcesAndTools(ctx context.Context) (*mcp.ListResourcesResult, *mcp.ListToolsResult, error) {
	resourcesResult, err := c.mcpClient.ListResources(ctx, mcp.ListResourcesRequest{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list resources: %v", err)
	}

	log.Printf("Available resources (%d):", len(resourcesResult.Resources))
	for _, resource := range resourcesResult.Resources {
		log.Printf("  - %s (%s)", resource.Name, resource.URI)
	}

	toolsResult, err := c.mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tools: %v", err)
	}

	log.Printf("Available tools (%d):", len(toolsResult.Tools))
	for _, tool := range toolsResult.Tools {
		log.Printf("  - %s: %s", tool.Name, tool.Description)
	}

	return resourcesResult, toolsResult, nil
}

// testTool tests the specified tool
func (c *Client) testTool(ctx context.Context, testTool string, toolsResult *mcp.ListToolsResult) error {
	found := false
	for _, tool := range toolsResult.Tools {
		if tool.Name == testTool {
			found = true
			break
		}
	}

	if !found {
		log.Printf("%s tool not found on server", testTool)
		return nil
	}

	log.Printf("Testing %s tool...", testTool)

	switch testTool {
	case "spellcheck":
		return tools.TestSpellCheck(ctx, c.mcpClient, c.language)
	case "set_language":
		return tools.TestSetLanguage(ctx, c.mcpClient, strings.Fields(c.language))
	case "stats":
		return tools.TestStats(ctx, c.mcpClient)
	default:
		return fmt.Errorf("unknown tool: %s", testTool)
	}
}
