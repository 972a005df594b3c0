package usecase

import (
	"context"

	"github.com/Koushal55/GitReceipt/config"
	"github.com/Koushal55/GitReceipt/internal/enrichment"
	"github.com/Koushal55/GitReceipt/internal/source"
	"github.com/Koushal55/GitReceipt/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ReceiptUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	src source.Provider,
	enrich enrichment.Provider,
	cfg *config.Config,
) InterfaceUsecase {
	return domain.New(log, ctx, src, enrich, cfg)
}
