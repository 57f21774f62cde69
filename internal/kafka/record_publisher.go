package kafka

//go:generate mockgen -source=record_publisher.go -destination=mocks/mock_record_publisher.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
	"github.com/Gunvolt24/sqs_consumer/internal/ports"
)

// Проверка, что RecordPublisher удовлетворяет интерфейсу RecordSink.
var _ ports.RecordSink = (*RecordPublisher)(nil)

const (
	HeaderQueue      = "queue"
	HeaderReceivedAt = "received_at"
)

// messageWriter — минимальный контракт над kafka.Writer,
// чтобы легко подменять его моками в тестах.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RecordPublisher — приёмник записей: публикует тело в топик Kafka.
// Ключ — id сообщения SQS, поэтому повторы одной доставки идут в одну партицию.
type RecordPublisher struct {
	writer    messageWriter
	topic     string
	closeOnce sync.Once
}

// NewRecordPublisher — конструктор поверх kafka.Writer.
func NewRecordPublisher(cfg *PublisherConfig) *RecordPublisher {
	return &RecordPublisher{writer: cfg.writer(), topic: cfg.Topic}
}

// Store публикует запись и ждёт подтверждения брокера.
func (p *RecordPublisher) Store(ctx context.Context, rec *domain.Record) error {
	if rec == nil || rec.MessageID == "" {
		return errors.New("record is empty or message_id is required")
	}

	msg := kafka.Message{
		Key:   []byte(rec.MessageID),
		Value: []byte(rec.Body),
		Headers: []kafka.Header{
			{Key: HeaderQueue, Value: []byte(rec.Queue)},
			{Key: HeaderReceivedAt, Value: []byte(rec.ReceivedAt.UTC().Format(time.RFC3339Nano))},
		},
		Time: rec.ReceivedAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	return nil
}

// Close - закрывает writer (дожидается отправки буфера). Вызывается при остановке приложения.
func (p *RecordPublisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
