package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gbb-community/showcase/core"
	"github.com/gbb-community/showcase/internal/contract"
	"github.com/gbb-community/showcase/internal/loader"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleListContributors(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	data, err := loader.LoadContributorData(request.GetString("data_path", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading contributor data failed: %v", err)), nil
	}

	roster := core.MergeContributors(data)
	if len(roster) > cfg.ResultLimit {
		roster = roster[:cfg.ResultLimit]
	}

	jsonData, _ := json.MarshalIndent(roster, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCategorizeRepositories(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repos, err := loader.LoadRepositories(request.GetString("data_path", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading repository data failed: %v", err)), nil
	}

	legacy := request.GetBool("legacy", false)
	categorized := core.CategorizeRepositories(repos, legacy)

	jsonData, _ := json.MarshalIndent(categorized, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCatalogState(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	repos, err := loader.LoadRepositories(request.GetString("data_path", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading repository data failed: %v", err)), nil
	}

	states := core.EvaluateStates(repos, cfg.Now)
	jsonData, _ := json.MarshalIndent(states, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleValidateCatalog(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := request.GetString("document", "")
	doc, err := loader.ParseCatalogDocument([]byte(raw), true)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("parsing catalog document failed: %v", err)), nil
	}

	violations := core.ValidateCatalogDocument(doc)
	result := map[string]any{
		"valid":      len(violations) == 0,
		"violations": violations,
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleFindStaleContent(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	entries, err := loader.ScanContentDir(request.GetString("content_dir", ""), nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scanning content directory failed: %v", err)), nil
	}

	findings := core.SweepContent(entries, cfg.Now)
	jsonData, _ := json.MarshalIndent(findings, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDetectRegion(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	region := core.DetectRegion(request.GetString("location", ""))
	jsonData, _ := json.MarshalIndent(map[string]any{"region": region}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
