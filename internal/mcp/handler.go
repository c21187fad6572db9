// Package mcp exposes report generation and team search as MCP tools.
package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/scoutedge/scoutedge-api/internal/common"
	"github.com/scoutedge/scoutedge-api/internal/config"
)

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
	tools      []string
}

// NewHandler registers the scouting tools on a stateless MCP server.
// recorder may be nil.
func NewHandler(generator ReportGenerator, recorder ReportRecorder, logger *common.Logger) *Handler {
	mcpSrv := mcpserver.NewMCPServer(
		config.ServiceName,
		config.GetVersion(),
		mcpserver.WithToolCapabilities(true),
	)

	tools := []string{}
	for _, t := range scoutingTools(generator, recorder, logger) {
		mcpSrv.AddTool(t.tool, t.handler)
		tools = append(tools, t.tool.Name)
	}

	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)

	logger.Info().
		Int("tools", len(tools)).
		Msg("MCP handler initialized")

	return &Handler{
		streamable: streamable,
		logger:     logger,
		tools:      tools,
	}
}

// Tools returns the names of the registered tools.
func (h *Handler) Tools() []string {
	out := make([]string, len(h.tools))
	copy(out, h.tools)
	return out
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}
