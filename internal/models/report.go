package models

// Report modes.
const (
	ModeDemo = "demo"
	ModeLive = "live"
)

// Insight categories.
const (
	CategoryTeam    = "team"
	CategoryPlayer  = "player"
	CategoryComp    = "comp"
	CategoryExploit = "exploit"
)

// Report is a generated scouting report.
type Report struct {
	Metadata ReportMetadata `json:"metadata"`
	Sections ReportSections `json:"sections"`
}

// ReportMetadata identifies a report and the request that produced it.
type ReportMetadata struct {
	ReportID    string `json:"reportId"`
	TeamID      string `json:"teamId"`
	TeamName    string `json:"teamName"`
	GeneratedAt string `json:"generatedAt"` // RFC 3339, UTC
	Mode        string `json:"mode"`
	LastN       int    `json:"lastN"`
}

// ReportSections holds the overview and the insight lists.
type ReportSections struct {
	Overview       Overview  `json:"overview"`
	TeamInsights   []Insight `json:"teamInsights"`
	PlayerInsights []Insight `json:"playerInsights"`
	CompInsights   []Insight `json:"compInsights"`
	Exploits       []Insight `json:"exploits"`
	HowToWin       []Counter `json:"howToWin"`
}

// InsightCount is the number of insights across all categories, counters excluded.
func (s ReportSections) InsightCount() int {
	return len(s.TeamInsights) + len(s.PlayerInsights) + len(s.CompInsights) + len(s.Exploits)
}

// Overview summarises the analysed match window.
type Overview struct {
	TeamName        string      `json:"teamName"`
	TeamID          string      `json:"teamId"`
	MatchWindow     MatchWindow `json:"matchWindow"`
	MatchesAnalyzed int         `json:"matchesAnalyzed"`
	MapsPlayed      []string    `json:"mapsPlayed"`
	OverallWinRate  float64     `json:"overallWinRate"`
}

// MatchWindow is the date range covered by a report. First is the oldest match.
type MatchWindow struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// Insight is a category-tagged claim with supporting evidence.
type Insight struct {
	ID         string   `json:"id"`
	Category   string   `json:"category"`
	Title      string   `json:"title"`
	Claim      string   `json:"claim"`
	Value      string   `json:"value"`
	Confidence int      `json:"confidence"`
	Evidence   Evidence `json:"evidence"`
}

// Counter is a recommended counter-strategy.
type Counter struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Condition       string   `json:"condition"`
	Action          string   `json:"action"`
	ExpectedOutcome string   `json:"expectedOutcome"`
	Confidence      int      `json:"confidence"`
	Evidence        Evidence `json:"evidence"`
}

// Evidence describes how a claim was measured.
type Evidence struct {
	Metric      string     `json:"metric"`
	SampleSize  SampleSize `json:"sampleSize"`
	Numerator   int        `json:"numerator"`
	Denominator int        `json:"denominator"`
	MatchIDs    []string   `json:"matchIds"`
}

// SampleSize counts matches and, when measured per round, rounds.
type SampleSize struct {
	Matches int `json:"matches"`
	Rounds  int `json:"rounds,omitempty"`
}

// ReportSummary is the list view of a generated report.
type ReportSummary struct {
	ReportID        string  `json:"id"`
	TeamID          string  `json:"teamId"`
	TeamName        string  `json:"teamName"`
	Mode            string  `json:"mode"`
	GeneratedAt     string  `json:"generatedAt"`
	MatchesAnalyzed int     `json:"matchesAnalyzed"`
	InsightCount    int     `json:"insightCount"`
	WinRate         float64 `json:"winRate"`
}

// Summary builds the list view of r.
func (r *Report) Summary() ReportSummary {
	return ReportSummary{
		ReportID:        r.Metadata.ReportID,
		TeamID:          r.Metadata.TeamID,
		TeamName:        r.Metadata.TeamName,
		Mode:            r.Metadata.Mode,
		GeneratedAt:     r.Metadata.GeneratedAt,
		MatchesAnalyzed: r.Sections.Overview.MatchesAnalyzed,
		InsightCount:    r.Sections.InsightCount(),
		WinRate:         r.Sections.Overview.OverallWinRate,
	}
}
