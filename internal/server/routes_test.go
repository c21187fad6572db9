package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scoutedge/scoutedge-api/internal/app"
	"github.com/scoutedge/scoutedge-api/internal/common"
	"github.com/scoutedge/scoutedge-api/internal/config"
	"github.com/scoutedge/scoutedge-api/internal/models"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.Fixtures.Path = filepath.Join("..", "..", "data", "fixtures", "demo-team.json")

	application, err := app.New(cfg, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("failed to create test app: %v", err)
	}

	t.Cleanup(func() {
		application.Close()
	})

	return application
}

type reportEnvelope struct {
	Success bool          `json:"success"`
	Data    models.Report `json:"data"`
	Meta    struct {
		Cached      bool   `json:"cached"`
		GeneratedAt string `json:"generatedAt"`
	} `json:"meta"`
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func generateRequest(body string) *http.Request {
	req := httptest.NewRequest("POST", "/report/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal error body: %v", err)
	}
	return body["detail"]
}

func TestRoutes_HealthEndpoint(t *testing.T) {
	srv := New(newTestApp(t))

	w := serve(srv, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if body["status"] != "ok" || body["service"] != "scoutedge-api" || body["version"] != "1.0.0" {
		t.Errorf("unexpected health body: %v", body)
	}
}

func TestRoutes_RootEndpoint(t *testing.T) {
	srv := New(newTestApp(t))

	w := serve(srv, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if body["message"] != "Welcome to ScoutEdge API" {
		t.Errorf("unexpected message: %q", body["message"])
	}
	if body["docs"] != "/docs" || body["health"] != "/health" {
		t.Errorf("unexpected links: %v", body)
	}
}

func TestRoutes_VersionEndpoint(t *testing.T) {
	srv := New(newTestApp(t))

	w := serve(srv, httptest.NewRequest("GET", "/version", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if _, ok := body["version"]; !ok {
		t.Error("expected version field in response")
	}
}

func TestRoutes_TeamsSearch(t *testing.T) {
	srv := New(newTestApp(t))

	tests := []struct {
		query string
		want  int
	}{
		{"", 1},
		{"PHANTOM", 1},
		{"sentinels", 0},
	}

	for _, tt := range tests {
		w := serve(srv, httptest.NewRequest("GET", "/teams/search?q="+tt.query, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("q=%q: expected status 200, got %d", tt.query, w.Code)
		}

		var body struct {
			Success bool          `json:"success"`
			Data    []models.Team `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}
		if !body.Success {
			t.Errorf("q=%q: expected success=true", tt.query)
		}
		if body.Data == nil {
			t.Errorf("q=%q: expected data to be a list, got null", tt.query)
		}
		if len(body.Data) != tt.want {
			t.Errorf("q=%q: expected %d teams, got %d", tt.query, tt.want, len(body.Data))
		}
	}
}

func TestRoutes_GenerateDemoReport(t *testing.T) {
	srv := New(newTestApp(t))

	w := serve(srv, generateRequest(`{"teamId":"demo-team-001","lastN":5,"mode":"demo"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var body reportEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if !body.Success {
		t.Error("expected success=true")
	}
	if body.Meta.Cached {
		t.Error("expected meta.cached=false")
	}
	if body.Meta.GeneratedAt != body.Data.Metadata.GeneratedAt {
		t.Errorf("meta.generatedAt %q != metadata.generatedAt %q", body.Meta.GeneratedAt, body.Data.Metadata.GeneratedAt)
	}

	md := body.Data.Metadata
	if md.ReportID != "demo-report-demo-team-001-5" {
		t.Errorf("unexpected reportId %q", md.ReportID)
	}
	if md.Mode != "demo" || md.LastN != 5 || md.TeamName != "Phantom Tactics" {
		t.Errorf("unexpected metadata: %+v", md)
	}
	if body.Data.Sections.Overview.MatchesAnalyzed != 5 {
		t.Errorf("expected 5 matches analyzed, got %d", body.Data.Sections.Overview.MatchesAnalyzed)
	}
}

func TestRoutes_GenerateLiveModeNotImplemented(t *testing.T) {
	srv := New(newTestApp(t))

	w := serve(srv, generateRequest(`{"teamId":"demo-team-001","lastN":10,"mode":"live"}`))

	if w.Code != http.StatusNotImplemented {
		t.Fatalf("expected status 501, got %d", w.Code)
	}
	if detail := decodeDetail(t, w); detail != "Live mode not yet implemented" {
		t.Errorf("unexpected detail %q", detail)
	}
}

func TestRoutes_GenerateInvalidLastN(t *testing.T) {
	srv := New(newTestApp(t))

	w := serve(srv, generateRequest(`{"teamId":"demo-team-001","lastN":0,"mode":"demo"}`))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestRoutes_GenerateMalformedBody(t *testing.T) {
	srv := New(newTestApp(t))

	w := serve(srv, generateRequest(`{"teamId":`))

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", w.Code)
	}
}

func TestRoutes_GenerateMissingFixture(t *testing.T) {
	application := newTestApp(t)
	cfg := *application.Config
	cfg.Fixtures.Path = filepath.Join(t.TempDir(), "missing.json")

	missing, err := app.New(&cfg, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	srv := New(missing)

	w := serve(srv, generateRequest(`{"teamId":"demo-team-001","lastN":5,"mode":"demo"}`))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	if detail := decodeDetail(t, w); !strings.Contains(detail, "missing.json") {
		t.Errorf("expected detail to name the fixture path, got %q", detail)
	}
}

func TestRoutes_ReportHistory(t *testing.T) {
	srv := New(newTestApp(t))

	w := serve(srv, generateRequest(`{"teamId":"demo-team-001","lastN":3,"mode":"demo"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("generate: expected status 200, got %d", w.Code)
	}

	w = serve(srv, httptest.NewRequest("GET", "/reports", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected status 200, got %d", w.Code)
	}

	var list struct {
		Data []models.ReportSummary `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if len(list.Data) != 1 || list.Data[0].ReportID != "demo-report-demo-team-001-3" {
		t.Fatalf("unexpected history: %+v", list.Data)
	}

	w = serve(srv, httptest.NewRequest("GET", "/reports/demo-report-demo-team-001-3", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected status 200, got %d", w.Code)
	}

	w = serve(srv, httptest.NewRequest("GET", "/reports/demo-report-unknown-1", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown report: expected status 404, got %d", w.Code)
	}
}

func TestRoutes_NotFound(t *testing.T) {
	srv := New(newTestApp(t))

	w := serve(srv, httptest.NewRequest("GET", "/nonexistent", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
	if detail := decodeDetail(t, w); detail != "Not Found" {
		t.Errorf("unexpected detail %q", detail)
	}
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	srv := New(newTestApp(t))

	w := serve(srv, httptest.NewRequest("GET", "/report/generate", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestRoutes_MiddlewareApplied(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := serve(srv, req)

	if w.Header().Get("X-Correlation-ID") == "" {
		t.Error("expected X-Correlation-ID header from middleware")
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Error("expected CORS header for the configured origin")
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected X-Content-Type-Options header from security middleware")
	}
}

func TestRoutes_PreflightBypassesRouter(t *testing.T) {
	srv := New(newTestApp(t))

	req := httptest.NewRequest("OPTIONS", "/report/generate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := serve(srv, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 for preflight, got %d", w.Code)
	}
}

func TestRoutes_DocsPage(t *testing.T) {
	srv := New(newTestApp(t))

	w := serve(srv, httptest.NewRequest("GET", "/", nil))
	var root map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &root); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	w = serve(srv, httptest.NewRequest("GET", root["docs"], nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected advertised docs link %q to serve 200, got %d", root["docs"], w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("expected HTML, got %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "/report/generate") {
		t.Error("expected docs to describe /report/generate")
	}
}

func TestRoutes_GenerateTrailingInput(t *testing.T) {
	srv := New(newTestApp(t))

	w := serve(srv, generateRequest(`{"teamId":"demo-team-001","lastN":5,"mode":"demo"}garbage`))

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", w.Code)
	}
}

func TestRoutes_GenerateOversizedBody(t *testing.T) {
	srv := New(newTestApp(t))

	body := `{"teamId":"` + strings.Repeat("x", 2<<20) + `","lastN":5,"mode":"demo"}`
	w := serve(srv, generateRequest(body))

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status 413, got %d", w.Code)
	}
}
