package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/scoutedge/scoutedge-api/internal/handlers"
)

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *mux.Router {
	r := mux.NewRouter()

	r.Handle("/", s.app.RootHandler).Methods(http.MethodGet, http.MethodHead)
	r.Handle("/docs", s.app.DocsHandler).Methods(http.MethodGet, http.MethodHead)
	r.Handle("/health", s.app.HealthHandler).Methods(http.MethodGet, http.MethodHead)
	r.Handle("/version", s.app.VersionHandler).Methods(http.MethodGet, http.MethodHead)

	r.Handle("/teams/search", s.app.TeamsHandler).Methods(http.MethodGet)
	r.Handle("/report/generate", s.app.ReportHandler).Methods(http.MethodPost)

	// Report history
	r.HandleFunc("/reports", s.app.ReportsHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/reports/{reportId}", s.app.ReportsHandler.Get).Methods(http.MethodGet)

	// MCP endpoint (JSON-RPC over streamable HTTP)
	if s.app.MCPHandler != nil {
		r.Handle("/mcp", s.app.MCPHandler)
	}

	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.handleMethodNotAllowed)

	return r
}

// handleNotFound returns a JSON 404 for unmatched routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	handlers.WriteError(w, http.StatusNotFound, "Not Found")
}

// handleMethodNotAllowed returns a JSON 405 when the path exists under another method.
func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	handlers.WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
