package risk

import (
	"fmt"
	"sort"
	"strings"
)

// Report splits scored fixtures into high and medium risk tiers, each
// sorted by score descending and capped at top-N.
type Report struct {
	High   []ScoredFixture
	Medium []ScoredFixture
}

// BuildReport tiers the scored fixtures by the given cutoffs.
func BuildReport(scored []ScoredFixture, highCutoff, mediumCutoff, topN int) Report {
	var report Report
	for _, s := range scored {
		switch {
		case s.Score >= highCutoff:
			report.High = append(report.High, s)
		case s.Score >= mediumCutoff:
			report.Medium = append(report.Medium, s)
		}
	}
	sortTier(report.High)
	sortTier(report.Medium)
	if topN > 0 {
		if len(report.High) > topN {
			report.High = report.High[:topN]
		}
		if len(report.Medium) > topN {
			report.Medium = report.Medium[:topN]
		}
	}
	return report
}

func sortTier(tier []ScoredFixture) {
	sort.Slice(tier, func(i, j int) bool {
		if tier[i].Score != tier[j].Score {
			return tier[i].Score > tier[j].Score
		}
		return tier[i].Fixture.Home < tier[j].Fixture.Home
	})
}

// severityMarker maps a numeric score to a colored marker.
func severityMarker(score int) string {
	if score >= 70 {
		return "🟥"
	}
	if score >= 55 {
		return "🟧"
	}
	return "🟩"
}

// Markdown renders the full report.
func (r Report) Markdown() string {
	lines := []string{"# Daily INTL Sports Risk Report\n"}

	if len(r.High) > 0 {
		lines = append(lines, "## 🔴 High Risk Matches\n")
		for _, s := range r.High {
			lines = append(lines, fixtureLine(s))
		}
	}
	if len(r.Medium) > 0 {
		lines = append(lines, "\n## 🟠 Medium Risk Matches\n")
		for _, s := range r.Medium {
			lines = append(lines, fixtureLine(s))
		}
	}
	if len(r.High) == 0 && len(r.Medium) == 0 {
		lines = append(lines, "_No elevated risk matches found._")
	}

	return strings.Join(lines, "\n")
}

func fixtureLine(s ScoredFixture) string {
	return fmt.Sprintf("- **%s vs %s** (%s, %s) — %d/100 — %s",
		s.Fixture.Home, s.Fixture.Away, s.Fixture.Competition,
		s.Fixture.Kickoff.UTC().Format("2006-01-02 15:04 MST"),
		s.Score, s.Why)
}

// Preview renders the short webhook alert for the report.
func (r Report) Preview() string {
	if len(r.High) == 0 {
		return "✅ No high-risk matches flagged today. (Full report committed to repo)"
	}
	lines := []string{"❌ *Alert — These Are Upcoming High Risk Matches*"}
	for _, s := range r.High {
		lines = append(lines, fmt.Sprintf("%s %s vs %s — %d/100",
			severityMarker(s.Score), s.Fixture.Home, s.Fixture.Away, s.Score))
	}
	lines = append(lines, "(Full report committed to repo)")
	return strings.Join(lines, "\n")
}
