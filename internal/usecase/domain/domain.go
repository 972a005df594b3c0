// Package domain contains the receipt engine and its orchestration.
package domain

import (
	"context"
	"time"

	"github.com/Koushal55/GitReceipt/config"
	"github.com/Koushal55/GitReceipt/internal/enrichment"
	"github.com/Koushal55/GitReceipt/internal/source"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx           context.Context
	log           *zap.SugaredLogger
	source        source.Provider
	enrichment    enrichment.Provider
	rng           Rand
	eventsLimit   int
	reposLimit    int
	timeout       time.Duration
	enrichTimeout time.Duration
}

// New constructs the receipt usecase with its dependencies. The enrichment
// provider may be nil; the heuristic surcharge is used then.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	src source.Provider,
	enrich enrichment.Provider,
	cfg *config.Config,
) *Usecase {
	return &Usecase{
		ctx:           ctx,
		log:           log,
		source:        src,
		enrichment:    enrich,
		rng:           newSystemRand(),
		eventsLimit:   cfg.GitHub.EventsLimit,
		reposLimit:    cfg.GitHub.ReposLimit,
		timeout:       cfg.HTTP.RequestTimeout,
		enrichTimeout: cfg.Gemini.RequestTimeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
