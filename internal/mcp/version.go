package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/scoutedge/scoutedge-api/internal/config"
)

// versionInfo holds the build fields reported by get_version.
type versionInfo struct {
	Service    string `json:"service"`
	APIVersion string `json:"api_version"`
	Version    string `json:"version"`
	Build      string `json:"build"`
	Commit     string `json:"commit"`
}

// VersionTool returns the mcp.Tool definition for get_version.
func VersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get ScoutEdge API version information. Use this to verify connectivity."),
	)
}

// VersionToolHandler reports the running build.
func VersionToolHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(versionInfo{
			Service:    config.ServiceName,
			APIVersion: config.APIVersion,
			Version:    config.GetVersion(),
			Build:      config.GetBuild(),
			Commit:     config.GetGitCommit(),
		})
	}
}
