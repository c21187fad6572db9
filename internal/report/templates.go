package report

import "github.com/scoutedge/scoutedge-api/internal/models"

// matchSelector picks the matches that back a claim out of the report window.
type matchSelector func(window []models.Match) []models.Match

func firstN(n int) matchSelector {
	return func(window []models.Match) []models.Match {
		if n >= len(window) {
			return window
		}
		return window[:n]
	}
}

func allMatches(window []models.Match) []models.Match {
	return window
}

func onMap(name string) matchSelector {
	return func(window []models.Match) []models.Match {
		var out []models.Match
		for _, m := range window {
			if m.Map == name {
				out = append(out, m)
			}
		}
		return out
	}
}

// evidenceTemplate is the static part of an Evidence record. When
// FixedMatches is zero the sample size is the window length.
type evidenceTemplate struct {
	Metric       string
	Rounds       int
	FixedMatches int
	Numerator    int
	Denominator  int
	Select       matchSelector
}

func (e evidenceTemplate) fill(window []models.Match) models.Evidence {
	sample := models.SampleSize{Matches: len(window), Rounds: e.Rounds}
	if e.FixedMatches > 0 {
		sample.Matches = e.FixedMatches
	}
	return models.Evidence{
		Metric:      e.Metric,
		SampleSize:  sample,
		Numerator:   e.Numerator,
		Denominator: e.Denominator,
		MatchIDs:    models.MatchIDs(e.Select(window)),
	}
}

type insightTemplate struct {
	ID         string
	Category   string
	Title      string
	Claim      string
	Value      string
	Confidence int
	Evidence   evidenceTemplate
}

func (t insightTemplate) fill(window []models.Match) models.Insight {
	return models.Insight{
		ID:         t.ID,
		Category:   t.Category,
		Title:      t.Title,
		Claim:      t.Claim,
		Value:      t.Value,
		Confidence: t.Confidence,
		Evidence:   t.Evidence.fill(window),
	}
}

type counterTemplate struct {
	ID              string
	Title           string
	Condition       string
	Action          string
	ExpectedOutcome string
	Confidence      int
	Evidence        evidenceTemplate
}

func (t counterTemplate) fill(window []models.Match) models.Counter {
	return models.Counter{
		ID:              t.ID,
		Title:           t.Title,
		Condition:       t.Condition,
		Action:          t.Action,
		ExpectedOutcome: t.ExpectedOutcome,
		Confidence:      t.Confidence,
		Evidence:        t.Evidence.fill(window),
	}
}

// templateSet is the full set of claims rendered into a report. A live
// analytics engine supplies its own set; the report shape stays the same.
type templateSet struct {
	TeamInsights   []insightTemplate
	PlayerInsights []insightTemplate
	CompInsights   []insightTemplate
	Exploits       []insightTemplate
	HowToWin       []counterTemplate
}

// demoTemplates are the canned demo-mode claims. Only match IDs and sample
// sizes depend on the requested window.
var demoTemplates = templateSet{
	TeamInsights: []insightTemplate{
		{
			ID:         "team-001",
			Category:   models.CategoryTeam,
			Title:      "Site A Dominance",
			Claim:      "Team wins 73% of rounds when attacking Site A",
			Value:      "73%",
			Confidence: 87,
			Evidence: evidenceTemplate{
				Metric:      "Attack Site A Win Rate",
				Rounds:      42,
				Numerator:   31,
				Denominator: 42,
				Select:      firstN(5),
			},
		},
		{
			ID:         "team-002",
			Category:   models.CategoryTeam,
			Title:      "Eco Round Discipline",
			Claim:      "High save discipline with 62% eco round conversion",
			Value:      "62%",
			Confidence: 78,
			Evidence: evidenceTemplate{
				Metric:      "Eco Round Win Rate",
				Rounds:      18,
				Numerator:   11,
				Denominator: 18,
				Select:      allMatches,
			},
		},
	},
	PlayerInsights: []insightTemplate{
		{
			ID:         "player-001",
			Category:   models.CategoryPlayer,
			Title:      "Entry Fragger Success",
			Claim:      "Primary duelist has 68% first blood success rate",
			Value:      "68%",
			Confidence: 82,
			Evidence: evidenceTemplate{
				Metric:      "First Blood Success Rate",
				Rounds:      50,
				Numerator:   34,
				Denominator: 50,
				Select:      allMatches,
			},
		},
	},
	CompInsights: []insightTemplate{
		{
			ID:         "comp-001",
			Category:   models.CategoryComp,
			Title:      "Ascent Signature Comp",
			Claim:      "Jett-Sova-Omen-Killjoy-Sage has 80% win rate on Ascent",
			Value:      "80%",
			Confidence: 85,
			Evidence: evidenceTemplate{
				Metric:       "Comp Win Rate on Ascent",
				FixedMatches: 5,
				Numerator:    4,
				Denominator:  5,
				Select:       onMap("Ascent"),
			},
		},
	},
	Exploits: []insightTemplate{
		{
			ID:         "exploit-001",
			Category:   models.CategoryExploit,
			Title:      "Force Buy Weakness",
			Claim:      "Team loses 71% of rounds when forcing after pistol loss",
			Value:      "71%",
			Confidence: 91,
			Evidence: evidenceTemplate{
				Metric:      "Force Buy Round Loss Rate",
				Rounds:      14,
				Numerator:   10,
				Denominator: 14,
				Select:      firstN(7),
			},
		},
	},
	HowToWin: []counterTemplate{
		{
			ID:              "counter-001",
			Title:           "Punish Force Buys",
			Condition:       "When opponent forces after pistol loss",
			Action:          "Apply early aggression to exploit weak utility",
			ExpectedOutcome: "71% win rate based on their force-buy pattern",
			Confidence:      91,
			Evidence: evidenceTemplate{
				Metric:      "Counter-strategy success prediction",
				Rounds:      14,
				Numerator:   10,
				Denominator: 14,
				Select:      firstN(7),
			},
		},
	},
}

func (s templateSet) fill(window []models.Match) models.ReportSections {
	sections := models.ReportSections{
		TeamInsights:   make([]models.Insight, 0, len(s.TeamInsights)),
		PlayerInsights: make([]models.Insight, 0, len(s.PlayerInsights)),
		CompInsights:   make([]models.Insight, 0, len(s.CompInsights)),
		Exploits:       make([]models.Insight, 0, len(s.Exploits)),
		HowToWin:       make([]models.Counter, 0, len(s.HowToWin)),
	}
	for _, t := range s.TeamInsights {
		sections.TeamInsights = append(sections.TeamInsights, t.fill(window))
	}
	for _, t := range s.PlayerInsights {
		sections.PlayerInsights = append(sections.PlayerInsights, t.fill(window))
	}
	for _, t := range s.CompInsights {
		sections.CompInsights = append(sections.CompInsights, t.fill(window))
	}
	for _, t := range s.Exploits {
		sections.Exploits = append(sections.Exploits, t.fill(window))
	}
	for _, t := range s.HowToWin {
		sections.HowToWin = append(sections.HowToWin, t.fill(window))
	}
	return sections
}
