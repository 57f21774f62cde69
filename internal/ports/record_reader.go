package ports

import (
	"context"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
)

// RecordReader — чтение недавно агрегированных записей (для HTTP).
type RecordReader interface {
	Recent(ctx context.Context, messageID string) (*domain.Record, bool)
	RecentList(ctx context.Context, limit, offset int) []*domain.Record
}
