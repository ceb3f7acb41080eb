// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/gbb-community/showcase/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Showcase MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Showcase Catalog Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: list_contributors ---
	s.AddTool(mcp.NewTool("list_contributors",
		mcp.WithDescription("Merge per-repository contributor lists into a deduplicated community roster with region enrichment."),
		mcp.WithString("data_path", mcp.Description("Path to the contributor data JSON file."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Limit the number of roster rows returned.")),
	), h.handleListContributors)

	// --- 2. Tool: categorize_repositories ---
	s.AddTool(mcp.NewTool("categorize_repositories",
		mcp.WithDescription("Classify repositories into categories and asset types from their topics."),
		mcp.WithString("data_path", mcp.Description("Path to the repository data JSON file."), mcp.Required()),
		mcp.WithBoolean("legacy", mcp.Description("Use the legacy keyword classifier instead of topic matching.")),
	), h.handleCategorizeRepositories)

	// --- 3. Tool: catalog_state ---
	s.AddTool(mcp.NewTool("catalog_state",
		mcp.WithDescription("Derive the catalog lifecycle state (published, needs-review, deprecated, not-in-catalog) for each repository."),
		mcp.WithString("data_path", mcp.Description("Path to the repository data JSON file."), mcp.Required()),
	), h.handleCatalogState)

	// --- 4. Tool: validate_catalog ---
	s.AddTool(mcp.NewTool("validate_catalog",
		mcp.WithDescription("Validate a catalog metadata document and report every violated rule."),
		mcp.WithString("document", mcp.Description("The catalog document as a JSON string."), mcp.Required()),
	), h.handleValidateCatalog)

	// --- 5. Tool: find_stale_content ---
	s.AddTool(mcp.NewTool("find_stale_content",
		mcp.WithDescription("Scan a content directory for stale pages past the 90/120/180 day thresholds."),
		mcp.WithString("content_dir", mcp.Description("Path to the markdown content directory."), mcp.Required()),
	), h.handleFindStaleContent)

	// --- 6. Tool: detect_region ---
	s.AddTool(mcp.NewTool("detect_region",
		mcp.WithDescription("Map a free-text profile location to a geographic region."),
		mcp.WithString("location", mcp.Description("The free-text location string."), mcp.Required()),
	), h.handleDetectRegion)

	return s
}

// StartMCPServer starts the Showcase MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
