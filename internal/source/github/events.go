package github

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/Koushal55/GitReceipt/internal/entities"
)

type githubEvent struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Payload   struct {
		Size    int    `json:"size"`
		Action  string `json:"action"`
		RefType string `json:"ref_type"`
	} `json:"payload"`
}

// GetRecentEvents fetches and normalizes the most recent public events.
func (g *GitHub) GetRecentEvents(ctx context.Context, login string, limit int) ([]entities.ActivityEvent, error) {
	endpoint := fmt.Sprintf("%s/users/%s/events?per_page=%d", g.cfg.BaseURL, url.PathEscape(login), limit)

	var raw []githubEvent
	status, err := g.getJSON(ctx, endpoint, &raw)
	if err != nil {
		return nil, sourceErr("events", err)
	}
	if status < 200 || status >= 300 {
		return nil, statusErr("events", status)
	}

	events := make([]entities.ActivityEvent, 0, len(raw))
	for _, ev := range raw {
		events = append(events, normalizeEvent(ev))
	}
	return events, nil
}

// normalizeEvent collapses the raw event type plus payload discriminators
// into the closed EventType enum. Pull request and issue events count only
// on the "opened" action, create events only for whole repositories.
func normalizeEvent(ev githubEvent) entities.ActivityEvent {
	out := entities.ActivityEvent{Type: entities.EventOther, Timestamp: ev.CreatedAt}

	switch ev.Type {
	case "PushEvent":
		out.Type = entities.EventPush
		out.PushSize = ev.Payload.Size
	case "PullRequestEvent":
		if ev.Payload.Action == "opened" {
			out.Type = entities.EventPullRequestOpened
		}
	case "CreateEvent":
		if ev.Payload.RefType == "repository" {
			out.Type = entities.EventRepositoryCreated
		}
	case "IssuesEvent":
		if ev.Payload.Action == "opened" {
			out.Type = entities.EventIssueOpened
		}
	}
	return out
}
