package ports

import (
	"context"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
)

// RecordCache — кэш недавно агрегированных записей.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий.
type RecordCache interface {
	// Get — вернуть запись по MessageID; (rec, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, messageID string) (*domain.Record, bool)

	// Set — сохранить/обновить запись.
	Set(ctx context.Context, rec *domain.Record) error

	// Recent — записи от самой свежей к самой старой, с пагинацией.
	Recent(ctx context.Context, limit, offset int) []*domain.Record
}
