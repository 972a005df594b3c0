package domain

import (
	"testing"

	"github.com/Koushal55/GitReceipt/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestEffortScore(t *testing.T) {
	tests := []struct {
		name     string
		stats    entities.DerivedStatistics
		expected int
	}{
		{"no commits no prs", entities.DerivedStatistics{}, 0},
		{"issues alone score zero", entities.DerivedStatistics{IssuesOpened: 40}, 0},
		{"one commit", entities.DerivedStatistics{Commits: 1}, 1},
		{"half commit weight", entities.DerivedStatistics{Commits: 25}, 30},
		{"prs only", entities.DerivedStatistics{PullRequestsOpened: 5}, 40},
		{"octocat example clamps to 100", entities.DerivedStatistics{Commits: 120, PullRequestsOpened: 3}, 100},
		{"exact full score", entities.DerivedStatistics{Commits: 50, PullRequestsOpened: 5}, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score := EffortScore(tc.stats)
			require.Equal(t, tc.expected, score)
			require.GreaterOrEqual(t, score, 0)
			require.LessOrEqual(t, score, 100)
		})
	}
}
