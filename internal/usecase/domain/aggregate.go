package domain

import (
	"time"

	"github.com/Koushal55/GitReceipt/internal/entities"
)

// AggregateStats reduces a normalized event stream into derived statistics.
// An empty stream yields all-zero statistics. The four hour buckets are
// disjoint, so they always sum to the number of processed events.
func AggregateStats(events []entities.ActivityEvent) entities.DerivedStatistics {
	var stats entities.DerivedStatistics
	days := make(map[string]struct{})

	for _, ev := range events {
		ts := ev.Timestamp
		days[ts.Format("2006-01-02")] = struct{}{}

		switch hour := ts.Hour(); {
		case hour >= 22 || hour < 4:
			stats.LateNightCount++
		case hour < 12:
			stats.MorningCount++
		case hour < 17:
			stats.AfternoonCount++
		default:
			stats.EveningCount++
		}

		if wd := ts.Weekday(); wd == time.Saturday || wd == time.Sunday {
			stats.WeekendCount++
		}

		switch ev.Type {
		case entities.EventPush:
			// A push contributes its whole commit batch, not one.
			stats.Commits += ev.PushSize
		case entities.EventPullRequestOpened:
			stats.PullRequestsOpened++
		case entities.EventRepositoryCreated:
			stats.ReposCreated++
		case entities.EventIssueOpened:
			stats.IssuesOpened++
		}
	}

	stats.ActiveDayCount = len(days)
	return stats
}
