// Package source contains provider interfaces for external activity data.
package source

import (
	"context"

	"github.com/Koushal55/GitReceipt/internal/entities"
)

// LifecycleInterface describes provider startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ProfileInterface exposes identity lookups.
type ProfileInterface interface {
	GetProfile(ctx context.Context, login string) (*entities.Identity, error)
}

// ActivityInterface exposes the recent public activity feed.
type ActivityInterface interface {
	GetRecentEvents(ctx context.Context, login string, limit int) ([]entities.ActivityEvent, error)
}

// RepositoryInterface exposes the recently-updated repository listing.
type RepositoryInterface interface {
	GetRepositories(ctx context.Context, login string, limit int) ([]entities.RepositorySummary, error)
}
