package domain

import (
	"math"

	"github.com/Koushal55/GitReceipt/internal/entities"
)

// EffortScore is the bounded composite activity score: commits weigh 60
// points at 50, pull requests weigh 40 points at 5, clamped to [0,100].
// Zero commits and zero pull requests score zero outright.
func EffortScore(stats entities.DerivedStatistics) int {
	if stats.Commits == 0 && stats.PullRequestsOpened == 0 {
		return 0
	}

	score := int(math.Round(float64(stats.Commits)/50*60 + float64(stats.PullRequestsOpened)/5*40))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
