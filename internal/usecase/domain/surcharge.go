package domain

import (
	"strings"

	"github.com/Koushal55/GitReceipt/internal/entities"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type surchargeRule struct {
	match func(s entities.DerivedStatistics, topLanguage string) bool
	fee   entities.Surcharge
}

// surchargeRules is evaluated top to bottom; the first match wins. The
// Lurker Fee outranks everything, so commits < 5 always yields it.
var surchargeRules = []surchargeRule{
	{func(s entities.DerivedStatistics, _ string) bool {
		return s.Commits < 5
	}, entities.Surcharge{Label: "Lurker Fee", Amount: 42.00}},
	{func(s entities.DerivedStatistics, _ string) bool {
		return s.Commits > 80
	}, entities.Surcharge{Label: "Touch Grass Rebate", Amount: -15.00, IsPercentage: true}},
	{func(s entities.DerivedStatistics, _ string) bool {
		return s.PullRequestsOpened > 10
	}, entities.Surcharge{Label: "Merge Conflict Tax", Amount: 12.50}},
	{func(_ entities.DerivedStatistics, lang string) bool {
		return lang == "JavaScript" || lang == "TypeScript"
	}, entities.Surcharge{Label: "Node_modules Heaviness", Amount: 8.99}},
	{func(_ entities.DerivedStatistics, lang string) bool {
		return lang == "CSS"
	}, entities.Surcharge{Label: "!important Surcharge", Amount: 5.50}},
	{func(_ entities.DerivedStatistics, lang string) bool {
		return lang == "Python"
	}, entities.Surcharge{Label: "Whitespace Cleanup", Amount: 3.14}},
	{func(_ entities.DerivedStatistics, lang string) bool {
		return lang == "Java"
	}, entities.Surcharge{Label: "Boilerplate Fee", Amount: 10.01}},
	{func(_ entities.DerivedStatistics, lang string) bool {
		return lang == "C++" || lang == "C"
	}, entities.Surcharge{Label: "Segfault Insurance", Amount: 20.48}},
	{func(s entities.DerivedStatistics, _ string) bool {
		return s.LateNightCount > 10
	}, entities.Surcharge{Label: "Burnout Prevention", Amount: 25.25}},
	{func(s entities.DerivedStatistics, _ string) bool {
		return s.WeekendCount > 5
	}, entities.Surcharge{Label: "No Life Surcharge", Amount: 14.99}},
}

// flavorFees is the cosmetic fallback pool when no rule matches.
var flavorFees = []entities.Surcharge{
	{Label: "Works On My Machine", Amount: 15.15},
	{Label: "Tech Debt Interest", Amount: 29.99},
	{Label: "Context Switching", Amount: 8.88},
	{Label: "Yak Shaving Fee", Amount: 6.66},
	{Label: "Premature Optimization", Amount: 11.11},
	{Label: "Copy-Paste Royalty", Amount: 4.04},
	{Label: "Dark Mode Surcharge", Amount: 5.55},
	{Label: "Unnecessary Refactor", Amount: 13.37},
}

// SelectSurcharge walks the fee cascade and falls back to a uniform-random
// flavor fee when nothing matches.
func SelectSurcharge(stats entities.DerivedStatistics, topLanguage string, rng Rand) entities.Surcharge {
	for _, rule := range surchargeRules {
		if rule.match(stats, topLanguage) {
			return rule.fee
		}
	}
	return flavorFees[rng.Intn(len(flavorFees))]
}

// overrideAmount is the fixed price of an enrichment-generated fee line.
const overrideAmount = 15.00

// OverrideSurcharge wraps an enrichment label into the fee line that
// replaces the heuristic pick. The caser is built per call: cases.Caser
// is not safe for concurrent use.
func OverrideSurcharge(label string) entities.Surcharge {
	caser := cases.Title(language.English)
	return entities.Surcharge{
		Label:  caser.String(strings.ToLower(strings.TrimSpace(label))),
		Amount: overrideAmount,
	}
}
