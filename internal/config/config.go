package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Environment string         `toml:"environment"`
	Server      ServerConfig   `toml:"server"`
	CORS        CORSConfig     `toml:"cors"`
	Fixtures    FixturesConfig `toml:"fixtures"`
	Reports     ReportsConfig  `toml:"reports"`
	Logging     LoggingConfig  `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// CORSConfig lists the browser origins allowed to call the API with credentials.
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// FixturesConfig points at the demo dataset.
type FixturesConfig struct {
	Path string `toml:"path"`
}

// ReportsConfig bounds the in-memory report history.
type ReportsConfig struct {
	HistoryTTL string `toml:"history_ttl"`
	HistoryMax int    `toml:"history_max"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// HistoryTTLDuration parses Reports.HistoryTTL, falling back to the default
// when the value is empty or invalid.
func (c *Config) HistoryTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.Reports.HistoryTTL)
	if err != nil || d <= 0 {
		return defaultHistoryTTL
	}
	return d
}

// IsDevMode reports whether the service runs with environment "dev".
func (c *Config) IsDevMode() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "dev")
}

// Validate returns a list of human-readable problems with the configuration.
func (c *Config) Validate() []string {
	var issues []string
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port must be between 1 and 65535 (got %d)", c.Server.Port))
	}
	if strings.TrimSpace(c.Fixtures.Path) == "" {
		issues = append(issues, "fixtures.path is required")
	}
	if c.Reports.HistoryMax < 0 {
		issues = append(issues, fmt.Sprintf("reports.history_max must not be negative (got %d)", c.Reports.HistoryMax))
	}
	if c.Reports.HistoryTTL != "" {
		if _, err := time.ParseDuration(c.Reports.HistoryTTL); err != nil {
			issues = append(issues, fmt.Sprintf("reports.history_ttl is not a duration: %q", c.Reports.HistoryTTL))
		}
	}
	for _, origin := range c.CORS.AllowedOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			issues = append(issues, fmt.Sprintf("cors.allowed_origins entry %q must start with http:// or https://", origin))
		}
	}
	return issues
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies SCOUTEDGE_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("SCOUTEDGE_ENV"); env != "" {
		config.Environment = env
	}
	if port := os.Getenv("SCOUTEDGE_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("SCOUTEDGE_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if origins := os.Getenv("SCOUTEDGE_CORS_ORIGINS"); origins != "" {
		config.CORS.AllowedOrigins = splitList(origins)
	}
	if path := os.Getenv("SCOUTEDGE_FIXTURES_PATH"); path != "" {
		config.Fixtures.Path = path
	}
	if ttl := os.Getenv("SCOUTEDGE_REPORTS_HISTORY_TTL"); ttl != "" {
		config.Reports.HistoryTTL = ttl
	}
	if max := os.Getenv("SCOUTEDGE_REPORTS_HISTORY_MAX"); max != "" {
		if n, err := strconv.Atoi(max); err == nil {
			config.Reports.HistoryMax = n
		}
	}
	if level := os.Getenv("SCOUTEDGE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("SCOUTEDGE_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if outputs := os.Getenv("SCOUTEDGE_LOG_OUTPUTS"); outputs != "" {
		config.Logging.Outputs = splitList(outputs)
	}
}

// splitList splits a comma-separated env value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host, fixturesPath string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
	if fixturesPath != "" {
		config.Fixtures.Path = fixturesPath
	}
}
