package models

// Dataset is the static demo fixture: one team and its match history.
//
// Matches are stored newest-first. The fixture loader rejects files that
// break this ordering, so Matches[0] is always the most recent match.
type Dataset struct {
	Team    FixtureTeam `json:"team"`
	Matches []Match     `json:"matches"`
}

// Match is one map played by the fixture team.
type Match struct {
	ID           string      `json:"id"`
	Date         string      `json:"date"`
	Map          string      `json:"map"`
	Won          bool        `json:"won"`
	OpponentName string      `json:"opponentName,omitempty"`
	Score        *MatchScore `json:"score,omitempty"`
}

// MatchScore is the round score of a match from the fixture team's side.
type MatchScore struct {
	Team     int `json:"team"`
	Opponent int `json:"opponent"`
}

// MatchIDs returns the IDs of matches in order.
func MatchIDs(matches []Match) []string {
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	return ids
}
