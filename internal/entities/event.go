// Package entities contains core business entities.
package entities

import "time"

// EventType is the normalized kind of one public activity event.
type EventType string

const (
	EventPush              EventType = "push"
	EventPullRequestOpened EventType = "pull_request_opened"
	EventRepositoryCreated EventType = "repository_created"
	EventIssueOpened       EventType = "issue_opened"
	EventOther             EventType = "other"
)

// ActivityEvent is a normalized view of one raw source event.
// PushSize carries the commit batch size and is meaningful only for EventPush.
type ActivityEvent struct {
	Type      EventType
	Timestamp time.Time
	PushSize  int
}

// RepositorySummary describes one repository in the analysis window.
type RepositorySummary struct {
	PrimaryLanguage string
}
