package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kotolint/kotolint/internal/adapters/outbound/config"
	"github.com/kotolint/kotolint/internal/adapters/outbound/gitinfo"
	"github.com/kotolint/kotolint/internal/application"
	"github.com/kotolint/kotolint/internal/domain"
	"github.com/kotolint/kotolint/internal/domain/fix"
)

// registerTools registers all kotolint MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. kotolint_scan_text
	s.AddTool(
		mcplib.NewTool("kotolint_scan_text",
			mcplib.WithDescription("Scan a block of text for Japanese orthography issues and return them as JSON"),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("Text to scan"),
			),
			mcplib.WithString("name",
				mcplib.Description("Label used in results; the extension decides code-aware extraction (default: input.txt)"),
			),
		),
		handleScanText(projectPath),
	)

	// 2. kotolint_scan_path
	s.AddTool(
		mcplib.NewTool("kotolint_scan_path",
			mcplib.WithDescription("Scan a file or directory in the project and return the issue report as JSON"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path relative to the project root"),
			),
		),
		handleScanPath(projectPath),
	)

	// 3. kotolint_fix_text
	s.AddTool(
		mcplib.NewTool("kotolint_fix_text",
			mcplib.WithDescription("Scan a block of text and return it with safe suggestions applied"),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("Text to fix"),
			),
			mcplib.WithString("name",
				mcplib.Description("Label used for extraction (default: input.txt)"),
			),
		),
		handleFixText(projectPath),
	)
}

// newScanService builds a scan service from the project configuration.
// MCP scans skip the on-disk cache: tool calls are one-shot.
func newScanService(ctx context.Context, projectPath string) (*application.ScanService, error) {
	cfg, err := config.New().Load(projectPath)
	if err != nil {
		return nil, err
	}
	f := false
	cfg.Cache = &f
	if cfg.Strict {
		cfg.ApplyStrict()
	}
	engine, configIssues, err := application.BuildEngine(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return application.NewScanService(cfg, engine, configIssues, nil, gitinfo.New()), nil
}

func handleScanText(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		name, _ := request.GetArguments()["name"].(string)
		if name == "" {
			name = "input.txt"
		}

		svc, err := newScanService(ctx, projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("building scan service: %v", err)), nil
		}
		issues := svc.ScanText(name, text)
		if issues == nil {
			issues = []domain.Issue{}
		}
		return jsonResult(issues)
	}
}

func handleScanPath(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rel, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc, err := newScanService(ctx, projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("building scan service: %v", err)), nil
		}
		report, err := svc.ScanPaths(ctx, []string{filepath.Join(projectPath, rel)})
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleFixText(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		name, _ := request.GetArguments()["name"].(string)
		if name == "" {
			name = "input.txt"
		}

		svc, err := newScanService(ctx, projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("building scan service: %v", err)), nil
		}
		issues := svc.ScanText(name, text)

		fixer := application.NewFixService(fix.Options{ContextGuard: true})
		fixed, summary := fixer.FixText(text, issues)
		return jsonResult(map[string]any{
			"text":    fixed,
			"applied": summary.Applied,
			"skipped": summary.Skipped,
		})
	}
}

// jsonResult marshals v and wraps it in a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
