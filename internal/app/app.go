package app

import (
	"os"
	"strings"

	"github.com/scoutedge/scoutedge-api/internal/cache"
	"github.com/scoutedge/scoutedge-api/internal/common"
	"github.com/scoutedge/scoutedge-api/internal/config"
	"github.com/scoutedge/scoutedge-api/internal/fixtures"
	"github.com/scoutedge/scoutedge-api/internal/handlers"
	"github.com/scoutedge/scoutedge-api/internal/mcp"
	"github.com/scoutedge/scoutedge-api/internal/report"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Fixtures      *fixtures.Loader
	ReportBuilder *report.Builder
	History       *cache.ReportHistory

	// HTTP handlers
	RootHandler    *handlers.RootHandler
	DocsHandler    *handlers.DocsHandler
	HealthHandler  *handlers.HealthHandler
	VersionHandler *handlers.VersionHandler
	TeamsHandler   *handlers.TeamsHandler
	ReportHandler  *handlers.ReportHandler
	ReportsHandler *handlers.ReportsHandler
	MCPHandler     *mcp.Handler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	env := strings.ToLower(strings.TrimSpace(cfg.Environment))
	if cfg.IsDevMode() {
		logger.Warn().Msg("running in dev mode")
	} else if env != "prod" && env != "" {
		logger.Warn().
			Str("environment", cfg.Environment).
			Msg("unrecognized environment value, defaulting to prod behavior")
	}

	// The fixture is read per request; a missing file only fails report generation.
	if _, err := os.Stat(cfg.Fixtures.Path); err != nil {
		logger.Warn().
			Str("path", cfg.Fixtures.Path).
			Str("error", err.Error()).
			Msg("demo fixture not readable, report generation will fail until it is present")
	}

	a.Fixtures = fixtures.NewLoader(cfg.Fixtures.Path, logger)
	a.ReportBuilder = report.NewBuilder(a.Fixtures, logger)
	a.History = cache.New(cfg.HistoryTTLDuration(), cfg.Reports.HistoryMax)

	a.initHandlers()

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.RootHandler = handlers.NewRootHandler()
	a.DocsHandler = handlers.NewDocsHandler(a.Logger)
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.TeamsHandler = handlers.NewTeamsHandler(a.Logger)
	a.ReportHandler = handlers.NewReportHandler(a.Logger, a.ReportBuilder, a.History)
	a.ReportsHandler = handlers.NewReportsHandler(a.Logger, a.History)
	a.MCPHandler = mcp.NewHandler(a.ReportBuilder, a.History, a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
