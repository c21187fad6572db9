// Package fixtures loads the static demo dataset that stands in for live match data.
package fixtures

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/scoutedge/scoutedge-api/internal/common"
	"github.com/scoutedge/scoutedge-api/internal/models"
)

var (
	// ErrFixtureNotFound is returned when the fixture file does not exist.
	ErrFixtureNotFound = errors.New("fixture not found")
	// ErrFixtureParse is returned when the fixture is malformed or breaks the format contract.
	ErrFixtureParse = errors.New("fixture parse error")
)

// dateLayouts are the accepted formats of Match.Date.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Loader reads the fixture file. It holds no state between calls.
type Loader struct {
	path   string
	logger *common.Logger
}

// NewLoader creates a loader for the fixture at path.
func NewLoader(path string, logger *common.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

// Path returns the fixture path.
func (l *Loader) Path() string {
	return l.path
}

// Load reads and validates the fixture from disk. Every call re-reads the file.
func (l *Loader) Load(ctx context.Context) (*models.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFixtureNotFound, l.path)
		}
		return nil, fmt.Errorf("failed to read fixture %s: %w", l.path, err)
	}

	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}

	if l.logger != nil {
		l.logger.Debug().
			Str("path", l.path).
			Str("team_id", ds.Team.ID).
			Int("matches", len(ds.Matches)).
			Msg("fixture loaded")
	}

	return ds, nil
}

// Parse decodes and validates a fixture document.
func Parse(data []byte) (*models.Dataset, error) {
	var ds models.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFixtureParse, err)
	}

	var present fixturePresence
	if err := json.Unmarshal(data, &present); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFixtureParse, err)
	}
	if present.Matches == nil {
		return nil, fmt.Errorf("%w: matches is required", ErrFixtureParse)
	}

	if err := Validate(&ds); err != nil {
		return nil, err
	}
	for i, m := range *present.Matches {
		if m.Won == nil {
			return nil, fmt.Errorf("%w: match %s: won is required", ErrFixtureParse, ds.Matches[i].ID)
		}
	}
	return &ds, nil
}

// fixturePresence records which keys a fixture document actually carries,
// so absent fields are not mistaken for zero values.
type fixturePresence struct {
	Matches *[]struct {
		Won *bool `json:"won"`
	} `json:"matches"`
}

// Validate checks required fields and that matches are stored newest-first.
func Validate(ds *models.Dataset) error {
	if ds.Team.ID == "" {
		return fmt.Errorf("%w: team.id is required", ErrFixtureParse)
	}
	if ds.Team.Name == "" {
		return fmt.Errorf("%w: team.name is required", ErrFixtureParse)
	}

	var prev time.Time
	for i, m := range ds.Matches {
		if m.ID == "" {
			return fmt.Errorf("%w: matches[%d].id is required", ErrFixtureParse, i)
		}
		if m.Map == "" {
			return fmt.Errorf("%w: match %s: map is required", ErrFixtureParse, m.ID)
		}
		if m.Date == "" {
			return fmt.Errorf("%w: match %s: date is required", ErrFixtureParse, m.ID)
		}
		date, err := parseDate(m.Date)
		if err != nil {
			return fmt.Errorf("%w: match %s: invalid date %q", ErrFixtureParse, m.ID, m.Date)
		}
		if i > 0 && date.After(prev) {
			return fmt.Errorf("%w: match %s is newer than the match before it; matches must be stored newest-first", ErrFixtureParse, m.ID)
		}
		prev = date
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
