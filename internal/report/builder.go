// Package report assembles scouting reports from a team's match history.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/scoutedge/scoutedge-api/internal/common"
	"github.com/scoutedge/scoutedge-api/internal/models"
)

var (
	// ErrInvalidLastN is returned when fewer than one match is requested.
	ErrInvalidLastN = errors.New("lastN must be at least 1")
	// ErrInvalidTeamID is returned for a blank team ID.
	ErrInvalidTeamID = errors.New("teamId is required")
	// ErrNoMatches is returned when the dataset has no matches to analyse.
	ErrNoMatches = errors.New("no matches available for report window")
	// ErrModeNotImplemented is returned for any mode other than demo.
	ErrModeNotImplemented = errors.New("report mode not implemented")
)

// LiveModeMessage is the client-facing explanation for ErrModeNotImplemented.
const LiveModeMessage = "Live mode not yet implemented"

// DatasetSource supplies the match history a report is built from.
type DatasetSource interface {
	Load(ctx context.Context) (*models.Dataset, error)
}

// Request is a report generation request.
type Request struct {
	TeamID string `json:"teamId"`
	LastN  int    `json:"lastN"`
	Mode   string `json:"mode"`
}

// Builder produces reports from a DatasetSource.
type Builder struct {
	source    DatasetSource
	templates templateSet
	now       func() time.Time
	logger    *common.Logger
}

// NewBuilder creates a demo-mode report builder.
func NewBuilder(source DatasetSource, logger *common.Logger) *Builder {
	return &Builder{
		source:    source,
		templates: demoTemplates,
		now:       time.Now,
		logger:    logger,
	}
}

// SetClock replaces the clock used for generatedAt.
func (b *Builder) SetClock(now func() time.Time) {
	b.now = now
}

// Generate dispatches on req.Mode. Only demo mode is implemented.
func (b *Builder) Generate(ctx context.Context, req Request) (*models.Report, error) {
	if req.Mode != models.ModeDemo {
		return nil, fmt.Errorf("%w (mode %q)", ErrModeNotImplemented, req.Mode)
	}
	return b.BuildDemoReport(ctx, req.TeamID, req.LastN)
}

// BuildDemoReport builds a report over the lastN most recent fixture matches.
// A lastN larger than the fixture covers the whole fixture.
func (b *Builder) BuildDemoReport(ctx context.Context, teamID string, lastN int) (*models.Report, error) {
	if teamID == "" {
		return nil, ErrInvalidTeamID
	}
	if lastN < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidLastN, lastN)
	}

	ds, err := b.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load match data: %w", err)
	}

	window := ds.Matches
	if lastN < len(window) {
		window = window[:lastN]
	}
	if len(window) == 0 {
		return nil, ErrNoMatches
	}

	sections := b.templates.fill(window)
	sections.Overview = buildOverview(ds.Team.Name, teamID, window)

	r := &models.Report{
		Metadata: models.ReportMetadata{
			ReportID:    ReportID(teamID, lastN),
			TeamID:      teamID,
			TeamName:    ds.Team.Name,
			GeneratedAt: b.now().UTC().Format(time.RFC3339),
			Mode:        models.ModeDemo,
			LastN:       lastN,
		},
		Sections: sections,
	}

	if b.logger != nil {
		b.logger.Debug().
			Str("report_id", r.Metadata.ReportID).
			Int("matches", len(window)).
			Int("insights", sections.InsightCount()).
			Msg("demo report built")
	}

	return r, nil
}

// ReportID derives the demo report identifier from the request.
func ReportID(teamID string, lastN int) string {
	return fmt.Sprintf("demo-report-%s-%d", teamID, lastN)
}

// buildOverview computes the window aggregates. window is newest-first and non-empty.
func buildOverview(teamName, teamID string, window []models.Match) models.Overview {
	wins := 0
	seen := make(map[string]bool)
	maps := make([]string, 0)
	for _, m := range window {
		if m.Won {
			wins++
		}
		if !seen[m.Map] {
			seen[m.Map] = true
			maps = append(maps, m.Map)
		}
	}

	return models.Overview{
		TeamName: teamName,
		TeamID:   teamID,
		MatchWindow: models.MatchWindow{
			First: window[len(window)-1].Date,
			Last:  window[0].Date,
		},
		MatchesAnalyzed: len(window),
		MapsPlayed:      maps,
		OverallWinRate:  float64(wins) / float64(len(window)),
	}
}
