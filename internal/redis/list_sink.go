package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
	"github.com/Gunvolt24/sqs_consumer/internal/ports"
)

// Проверка, что ListSink удовлетворяет интерфейсу RecordSink.
var _ ports.RecordSink = (*ListSink)(nil)

// listPusher — подмножество redis.Cmdable, которое нужно приёмнику.
type listPusher interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd
}

type ListConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
	MaxLen   int64 // 0 — без обрезки
}

// ListSink — приёмник записей: JSON в конец списка Redis, список обрезается до MaxLen.
type ListSink struct {
	client    listPusher
	closer    func() error
	key       string
	maxLen    int64
	closeOnce sync.Once
}

// NewListSink — подключается и проверяет соединение (PING).
func NewListSink(ctx context.Context, cfg *ListConfig) (*ListSink, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return &ListSink{client: rdb, closer: rdb.Close, key: cfg.Key, maxLen: cfg.MaxLen}, nil
}

// Store дописывает запись в список. Дубли при повторной доставке возможны:
// читатель списка дедуплицирует по message_id.
func (s *ListSink) Store(ctx context.Context, rec *domain.Record) error {
	if rec == nil || rec.MessageID == "" {
		return errors.New("record is empty or message_id is required")
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	if err := s.client.RPush(ctx, s.key, raw).Err(); err != nil {
		return fmt.Errorf("rpush %s: %w", s.key, err)
	}

	if s.maxLen > 0 {
		// оставляем только последние maxLen элементов
		if err := s.client.LTrim(ctx, s.key, -s.maxLen, -1).Err(); err != nil {
			return fmt.Errorf("ltrim %s: %w", s.key, err)
		}
	}
	return nil
}

// Close - закрывает клиента Redis. Вызывается при остановке приложения.
func (s *ListSink) Close() (retErr error) {
	if s.closer == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		retErr = s.closer()
	})
	return retErr
}
