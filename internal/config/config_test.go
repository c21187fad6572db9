package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host localhost, got %s", cfg.Server.Host)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("expected default CORS origin http://localhost:3000, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Fixtures.Path != "data/fixtures/demo-team.json" {
		t.Errorf("expected default fixture path, got %s", cfg.Fixtures.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
	if issues := cfg.Validate(); len(issues) != 0 {
		t.Errorf("expected default config to validate, got %v", issues)
	}
}

func TestLoadFromFiles_NoFiles(t *testing.T) {
	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles with no files should not error: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
}

func TestLoadFromFiles_ValidTOML(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "test.toml")

	content := `
environment = "dev"

[server]
port = 9090
host = "0.0.0.0"

[cors]
allowed_origins = ["https://scout.example.com"]

[fixtures]
path = "/srv/fixtures/team.json"

[reports]
history_ttl = "5m"
history_max = 10

[logging]
level = "debug"
outputs = ["console", "file"]
file_path = "/tmp/scoutedge.log"
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if !cfg.IsDevMode() {
		t.Error("expected dev mode")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.CORS.AllowedOrigins[0] != "https://scout.example.com" {
		t.Errorf("unexpected CORS origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Fixtures.Path != "/srv/fixtures/team.json" {
		t.Errorf("unexpected fixture path %s", cfg.Fixtures.Path)
	}
	if cfg.HistoryTTLDuration() != 5*time.Minute {
		t.Errorf("expected history ttl 5m, got %s", cfg.HistoryTTLDuration())
	}
	if cfg.Reports.HistoryMax != 10 {
		t.Errorf("expected history max 10, got %d", cfg.Reports.HistoryMax)
	}
	if len(cfg.Logging.Outputs) != 2 {
		t.Errorf("expected 2 log outputs, got %v", cfg.Logging.Outputs)
	}
}

func TestLoadFromFiles_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.toml")
	second := filepath.Join(dir, "second.toml")

	os.WriteFile(first, []byte("[server]\nport = 7000\nhost = \"first\"\n"), 0644)
	os.WriteFile(second, []byte("[server]\nport = 7001\n"), 0644)

	cfg, err := LoadFromFiles(first, second)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("expected port 7001, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "first" {
		t.Errorf("expected host from first file, got %s", cfg.Server.Host)
	}
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	if _, err := LoadFromFiles(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadFromFiles_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	os.WriteFile(path, []byte("[server\nport = "), 0644)

	if _, err := LoadFromFiles(path); err == nil {
		t.Error("expected parse error for invalid TOML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SCOUTEDGE_SERVER_PORT", "8123")
	t.Setenv("SCOUTEDGE_CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("SCOUTEDGE_FIXTURES_PATH", "/env/fixture.json")
	t.Setenv("SCOUTEDGE_LOG_LEVEL", "warn")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}
	if cfg.Server.Port != 8123 {
		t.Errorf("expected env port 8123, got %d", cfg.Server.Port)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("unexpected CORS origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Fixtures.Path != "/env/fixture.json" {
		t.Errorf("expected env fixture path, got %s", cfg.Fixtures.Path)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected env log level warn, got %s", cfg.Logging.Level)
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()
	ApplyFlagOverrides(cfg, 9999, "127.0.0.1", "/flag/fixture.json")

	if cfg.Server.Port != 9999 {
		t.Errorf("expected port 9999, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("expected host 127.0.0.1, got %s", cfg.Server.Host)
	}
	if cfg.Fixtures.Path != "/flag/fixture.json" {
		t.Errorf("expected flag fixture path, got %s", cfg.Fixtures.Path)
	}

	ApplyFlagOverrides(cfg, 0, "", "")
	if cfg.Server.Port != 9999 {
		t.Error("zero-value flags must not override config")
	}
}

func TestValidate_ReportsIssues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Server.Port = 0
	cfg.Fixtures.Path = " "
	cfg.Reports.HistoryTTL = "soon"
	cfg.Reports.HistoryMax = -1
	cfg.CORS.AllowedOrigins = []string{"localhost:3000"}

	issues := cfg.Validate()
	if len(issues) != 5 {
		t.Errorf("expected 5 issues, got %d: %v", len(issues), issues)
	}
}

func TestHistoryTTLDuration_FallsBack(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Reports.HistoryTTL = ""
	if cfg.HistoryTTLDuration() != defaultHistoryTTL {
		t.Errorf("expected fallback ttl, got %s", cfg.HistoryTTLDuration())
	}
}

func TestVersionDefaults(t *testing.T) {
	if GetVersion() != "dev" {
		t.Errorf("expected default version dev, got %s", GetVersion())
	}
	expected := "dev (build: unknown, commit: unknown)"
	if GetFullVersion() != expected {
		t.Errorf("expected full version %q, got %q", expected, GetFullVersion())
	}
}
