package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/scoutedge/scoutedge-api/internal/common"
	"github.com/scoutedge/scoutedge-api/internal/config"
)

//go:embed pages/*.html
var pageFS embed.FS

type docEndpoint struct {
	Method      string
	Path        string
	Description string
}

type docStatus struct {
	Code int
	When string
}

type docField struct {
	Field       string
	Description string
}

var docEndpoints = []docEndpoint{
	{"GET", "/", "Welcome message with links to docs and health"},
	{"GET", "/health", "Liveness check: status, service and API version"},
	{"GET", "/docs", "This page"},
	{"GET", "/version", "Build version, build time and git commit"},
	{"GET", "/teams/search?q=", "Search the team directory; empty query lists every team"},
	{"POST", "/report/generate", "Generate a scouting report"},
	{"GET", "/reports", "Recently generated reports, newest first"},
	{"GET", "/reports/{reportId}", "A recently generated report by id"},
	{"POST", "/mcp", "MCP tools over streamable HTTP: generate_scouting_report, search_teams, get_version"},
}

var docStatuses = []docStatus{
	{http.StatusOK, "demo mode; body is {success, data: Report, meta: {cached, generatedAt}}"},
	{http.StatusBadRequest, "lastN below 1 or empty teamId"},
	{http.StatusRequestEntityTooLarge, "body larger than 1 MB"},
	{http.StatusUnprocessableEntity, "malformed JSON or a missing field"},
	{http.StatusInternalServerError, "fixture missing, unreadable or empty"},
	{http.StatusNotImplemented, "any mode other than demo"},
}

var docSchema = []docField{
	{"metadata.reportId", `"demo-report-{teamId}-{lastN}"`},
	{"metadata.teamId, teamName", "requested team id and the fixture team's name"},
	{"metadata.generatedAt", "UTC, RFC 3339"},
	{"metadata.mode, lastN", "echo of the request"},
	{"sections.overview", "teamName, teamId, matchWindow {first, last}, matchesAnalyzed, mapsPlayed, overallWinRate (0..1)"},
	{"sections.teamInsights, playerInsights, compInsights, exploits", "Insight: id, category, title, claim, value, confidence (0-100), evidence"},
	{"sections.howToWin", "Counter: id, title, condition, action, expectedOutcome, confidence, evidence"},
	{"evidence", "metric, sampleSize {matches, rounds}, numerator, denominator, matchIds"},
}

// DocsHandler serves the human-readable API reference.
type DocsHandler struct {
	logger    *common.Logger
	templates *template.Template
}

// NewDocsHandler parses the embedded page templates.
func NewDocsHandler(logger *common.Logger) *DocsHandler {
	return &DocsHandler{
		logger:    logger,
		templates: template.Must(template.ParseFS(pageFS, "pages/*.html")),
	}
}

// ServeHTTP handles GET /docs.
func (h *DocsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	data := map[string]interface{}{
		"Service":    config.ServiceName,
		"APIVersion": config.APIVersion,
		"Endpoints":  docEndpoints,
		"Statuses":   docStatuses,
		"Schema":     docSchema,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "docs.html", data); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("template", "docs.html").Str("error", err.Error()).Msg("failed to render page")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
