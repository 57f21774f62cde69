package ports

import (
	"context"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
)

// RecordSink — конечное хранилище принятых записей (postgres, kafka, redis, лог).
// Store должен быть идемпотентным по MessageID: очередь доставляет at-least-once.
type RecordSink interface {
	Store(ctx context.Context, rec *domain.Record) error
}
