package models

// Team is a directory entry returned by team search.
type Team struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Region string  `json:"region"`
	Logo   *string `json:"logo"`
}

// FixtureTeam identifies the team a fixture dataset belongs to.
type FixtureTeam struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}
