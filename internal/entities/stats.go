// Package entities contains core business entities.
package entities

// DerivedStatistics is the reduction of one identity's recent activity feed.
// All counters are non-negative; the four hour buckets partition the
// processed events.
type DerivedStatistics struct {
	Commits            int
	PullRequestsOpened int
	ReposCreated       int
	IssuesOpened       int
	ActiveDayCount     int
	LateNightCount     int
	MorningCount       int
	AfternoonCount     int
	EveningCount       int
	WeekendCount       int
}

// TotalActivity is the raw counter sum used as the denominator by the style
// and surcharge cascades.
func (s DerivedStatistics) TotalActivity() int {
	return s.Commits + s.PullRequestsOpened + s.ReposCreated + s.IssuesOpened
}

// StatsSummary is the slice of DerivedStatistics printed on the receipt.
type StatsSummary struct {
	Commits      int
	PullRequests int
	NewRepos     int
	IssuesOpened int
	TopLanguage  string
	ActiveDays   int
}
