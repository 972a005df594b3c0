package usecase

import (
	"context"

	"github.com/Koushal55/GitReceipt/internal/entities"
)

// ReceiptUsecaseInterface abstracts receipt building for the delivery layer.
type ReceiptUsecaseInterface interface {
	BuildReceipt(ctx context.Context, login string) (entities.ReceiptDocument, error)
}
