package domain

import (
	"testing"

	"github.com/Koushal55/GitReceipt/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestClassifyStyleCascade(t *testing.T) {
	tests := []struct {
		name     string
		stats    entities.DerivedStatistics
		topLang  string
		expected entities.StyleLabel
	}{
		{
			name:     "zero activity wins over everything",
			stats:    entities.DerivedStatistics{LateNightCount: 50, WeekendCount: 50},
			topLang:  "Go",
			expected: entities.StyleGhostwareEngineer,
		},
		{
			name:     "late night ratio",
			stats:    entities.DerivedStatistics{Commits: 10, LateNightCount: 5},
			topLang:  "Go",
			expected: entities.StyleVampireCoder,
		},
		{
			name:     "vampire outranks weekend",
			stats:    entities.DerivedStatistics{Commits: 10, LateNightCount: 5, WeekendCount: 9},
			topLang:  "Go",
			expected: entities.StyleVampireCoder,
		},
		{
			name:     "weekend ratio",
			stats:    entities.DerivedStatistics{Commits: 10, WeekendCount: 5},
			topLang:  "Go",
			expected: entities.StyleWeekendWarrior,
		},
		{
			name:     "morning ratio",
			stats:    entities.DerivedStatistics{Commits: 10, MorningCount: 6},
			topLang:  "Go",
			expected: entities.StyleCaffeineDriven,
		},
		{
			name:     "octocat example hits 10x before fallback",
			stats:    entities.DerivedStatistics{Commits: 120, PullRequestsOpened: 3, LateNightCount: 2, WeekendCount: 2, MorningCount: 3},
			topLang:  "Go",
			expected: entities.StyleTenXEngineer,
		},
		{
			name:     "more PRs than commits",
			stats:    entities.DerivedStatistics{Commits: 5, PullRequestsOpened: 6},
			topLang:  "Haskell",
			expected: entities.StyleCodeReviewer,
		},
		{
			name:     "more issues than commits",
			stats:    entities.DerivedStatistics{Commits: 5, IssuesOpened: 6},
			topLang:  "Haskell",
			expected: entities.StyleQaInDisguise,
		},
		{
			name:     "css",
			stats:    entities.DerivedStatistics{Commits: 50},
			topLang:  "CSS",
			expected: entities.StyleDivCenterer,
		},
		{
			name:     "html",
			stats:    entities.DerivedStatistics{Commits: 50},
			topLang:  "HTML",
			expected: entities.StyleDivCenterer,
		},
		{
			name:     "typescript",
			stats:    entities.DerivedStatistics{Commits: 50},
			topLang:  "TypeScript",
			expected: entities.StyleConsoleLogDebug,
		},
		{
			name:     "python",
			stats:    entities.DerivedStatistics{Commits: 50},
			topLang:  "Python",
			expected: entities.StyleSnakeCharmer,
		},
		{
			name:     "rust",
			stats:    entities.DerivedStatistics{Commits: 50},
			topLang:  "Rust",
			expected: entities.StyleMemorySafe,
		},
		{
			name:     "go",
			stats:    entities.DerivedStatistics{Commits: 50},
			topLang:  "Go",
			expected: entities.StyleGopher,
		},
		{
			name:     "architect",
			stats:    entities.DerivedStatistics{Commits: 50, ReposCreated: 6},
			topLang:  entities.LanguageUnknown,
			expected: entities.StyleTheArchitect,
		},
		{
			name:     "fallback",
			stats:    entities.DerivedStatistics{Commits: 50},
			topLang:  "Haskell",
			expected: entities.StyleFullStackOverflow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, ClassifyStyle(tc.stats, tc.topLang))
			// Pure function: the same inputs always classify the same.
			require.Equal(t, tc.expected, ClassifyStyle(tc.stats, tc.topLang))
		})
	}
}
