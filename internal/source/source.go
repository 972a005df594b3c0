// Package source provides the factory for activity data providers.
package source

import (
	"context"
	"fmt"

	"github.com/Koushal55/GitReceipt/config"
	"github.com/Koushal55/GitReceipt/internal/source/github"

	"go.uber.org/zap"
)

// Provider aggregates all source data interfaces.
type Provider interface {
	LifecycleInterface
	ProfileInterface
	ActivityInterface
	RepositoryInterface
}

// New constructs a source backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Provider, error) {
	switch name {
	case "github":
		return github.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown source backend: %s", name)
	}
}
