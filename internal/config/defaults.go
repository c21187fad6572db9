package config

import "time"

const defaultHistoryTTL = 30 * time.Minute

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "prod",
		Server: ServerConfig{
			Port: 8000,
			Host: "localhost",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Fixtures: FixturesConfig{
			Path: "data/fixtures/demo-team.json",
		},
		Reports: ReportsConfig{
			HistoryTTL: defaultHistoryTTL.String(),
			HistoryMax: 100,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Format:  "text",
			Outputs: []string{"console"},
		},
	}
}
