package ports

import (
	"context"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
)

// RecordLookup — приёмник, из которого можно прочитать запись обратно (postgres).
// Нужен, чтобы отдать запись, вытесненную из кэша недавних.
type RecordLookup interface {
	GetByID(ctx context.Context, messageID string) (*domain.Record, error)
}
