// Package enrichment defines the optional surcharge-label generator.
package enrichment

import (
	"context"

	"github.com/Koushal55/GitReceipt/internal/entities"
)

// Provider generates a short (at most five words) surcharge label from the
// derived statistics. Callers must treat any error as "no label": the
// heuristic surcharge is always a valid fallback.
type Provider interface {
	GenerateSurchargeLabel(ctx context.Context, login string, stats entities.DerivedStatistics, topLanguage string) (string, error)
}
