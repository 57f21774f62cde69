package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
	"github.com/Gunvolt24/sqs_consumer/internal/ports"
)

// Проверка, что RecordRepository удовлетворяет интерфейсам приёмника и чтения.
var (
	_ ports.RecordSink   = (*RecordRepository)(nil)
	_ ports.RecordLookup = (*RecordRepository)(nil)
)

// RecordRepository — хранилище принятых записей на Postgres (pgxpool).
type RecordRepository struct {
	pool *pgxpool.Pool
}

// NewRecordRepository - конструктор RecordRepository.
func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository { return &RecordRepository{pool: pool} }

// Store — идемпотентная вставка: повторная доставка того же сообщения ничего не меняет.
func (r *RecordRepository) Store(ctx context.Context, rec *domain.Record) error {
	if rec == nil || rec.MessageID == "" {
		return errors.New("record is empty or message_id is required")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO aggregates (message_id, queue, body, received_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (message_id) DO NOTHING
	`, rec.MessageID, rec.Queue, rec.Body, rec.ReceivedAt); err != nil {
		return fmt.Errorf("insert aggregate: %w", err)
	}
	return nil
}

// GetByID — запись по id сообщения; (nil, nil), если не найдена.
func (r *RecordRepository) GetByID(ctx context.Context, messageID string) (*domain.Record, error) {
	var rec domain.Record
	err := r.pool.QueryRow(ctx, `
		SELECT message_id, queue, body, received_at
		FROM aggregates
		WHERE message_id = $1
	`, messageID).Scan(&rec.MessageID, &rec.Queue, &rec.Body, &rec.ReceivedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select aggregate: %w", err)
	}
	return &rec, nil
}
