package domain

import "github.com/Koushal55/GitReceipt/internal/entities"

type styleRule struct {
	match func(s entities.DerivedStatistics, total int, topLanguage string) bool
	label entities.StyleLabel
}

// styleRules is evaluated top to bottom; the first match wins. The order is
// load-bearing: the zero-activity rule short-circuits every later threshold
// and guards the ratio rules against a zero denominator.
var styleRules = []styleRule{
	{func(_ entities.DerivedStatistics, total int, _ string) bool {
		return total == 0
	}, entities.StyleGhostwareEngineer},
	{func(s entities.DerivedStatistics, total int, _ string) bool {
		return float64(s.LateNightCount) > 0.4*float64(total)
	}, entities.StyleVampireCoder},
	{func(s entities.DerivedStatistics, total int, _ string) bool {
		return float64(s.WeekendCount) > 0.4*float64(total)
	}, entities.StyleWeekendWarrior},
	{func(s entities.DerivedStatistics, total int, _ string) bool {
		return float64(s.MorningCount) > 0.5*float64(total)
	}, entities.StyleCaffeineDriven},
	{func(s entities.DerivedStatistics, _ int, _ string) bool {
		return s.Commits > 100
	}, entities.StyleTenXEngineer},
	{func(s entities.DerivedStatistics, _ int, _ string) bool {
		return s.PullRequestsOpened > s.Commits
	}, entities.StyleCodeReviewer},
	{func(s entities.DerivedStatistics, _ int, _ string) bool {
		return s.IssuesOpened > s.Commits
	}, entities.StyleQaInDisguise},
	{func(_ entities.DerivedStatistics, _ int, lang string) bool {
		return lang == "CSS" || lang == "HTML"
	}, entities.StyleDivCenterer},
	{func(_ entities.DerivedStatistics, _ int, lang string) bool {
		return lang == "JavaScript" || lang == "TypeScript"
	}, entities.StyleConsoleLogDebug},
	{func(_ entities.DerivedStatistics, _ int, lang string) bool {
		return lang == "Python"
	}, entities.StyleSnakeCharmer},
	{func(_ entities.DerivedStatistics, _ int, lang string) bool {
		return lang == "Rust"
	}, entities.StyleMemorySafe},
	{func(_ entities.DerivedStatistics, _ int, lang string) bool {
		return lang == "Go"
	}, entities.StyleGopher},
	{func(s entities.DerivedStatistics, _ int, _ string) bool {
		return s.ReposCreated > 5
	}, entities.StyleTheArchitect},
}

// ClassifyStyle maps derived statistics plus the top language to exactly one
// style label. It is a pure function: identical inputs yield the identical
// label.
func ClassifyStyle(stats entities.DerivedStatistics, topLanguage string) entities.StyleLabel {
	total := stats.TotalActivity()
	for _, rule := range styleRules {
		if rule.match(stats, total, topLanguage) {
			return rule.label
		}
	}
	return entities.StyleFullStackOverflow
}
