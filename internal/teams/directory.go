// Package teams serves the demo team directory.
package teams

import (
	"strings"

	"github.com/scoutedge/scoutedge-api/internal/models"
)

// demoTeam is the only team available in demo mode.
var demoTeam = models.Team{
	ID:     "demo-team-001",
	Name:   "Phantom Tactics",
	Region: "NA",
}

// Search returns the demo team when q is empty or mentions "phantom"
// (case-insensitive), and an empty list otherwise.
func Search(q string) []models.Team {
	if q == "" || strings.Contains(strings.ToLower(q), "phantom") {
		return []models.Team{demoTeam}
	}
	return []models.Team{}
}
