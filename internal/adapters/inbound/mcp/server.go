package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewKotolintMCPServer creates an MCP server with the kotolint tools
// registered. projectPath is the root directory scans resolve against.
func NewKotolintMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"kotolint",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
