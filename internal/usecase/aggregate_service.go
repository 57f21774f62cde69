package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
	"github.com/Gunvolt24/sqs_consumer/internal/ports"
	"github.com/Gunvolt24/sqs_consumer/pkg/compress"
	"github.com/Gunvolt24/sqs_consumer/pkg/ctxmeta"
	"github.com/Gunvolt24/sqs_consumer/pkg/metrics"
)

var (
	_ ports.Aggregator   = (*AggregateService)(nil)
	_ ports.RecordReader = (*AggregateService)(nil)
)

// AggregateOptions — параметры приёма тел сообщений.
type AggregateOptions struct {
	SinkName   string // метка метрик: log|postgres|kafka|redis
	Decompress bool   // тело — base64(gzip(charset(text)))
	Charset    string
}

// AggregateService — прикладная логика приёма сообщений (без знаний о транспорте).
type AggregateService struct {
	sink   ports.RecordSink   // конечное хранилище
	lookup ports.RecordLookup // чтение из приёмника при промахе кэша; nil, если приёмник не читается
	cache  ports.RecordCache  // недавние записи для HTTP
	log    ports.Logger
	opts   AggregateOptions
	now    func() time.Time
}

// NewAggregateService — DI-конструктор.
func NewAggregateService(
	sink ports.RecordSink,
	cache ports.RecordCache,
	log ports.Logger,
	opts AggregateOptions,
) *AggregateService {
	if opts.SinkName == "" {
		opts.SinkName = "unknown"
	}
	lookup, _ := sink.(ports.RecordLookup)
	return &AggregateService{
		sink:   sink,
		lookup: lookup,
		cache:  cache,
		log:    log,
		opts:   opts,
		now:    time.Now,
	}
}

// Aggregate — принять тело сообщения.
// Шаги:
//  1. при включённом сжатии — декодирование (ошибка → сообщение остаётся в очереди);
//  2. запись из метаданных контекста (id сообщения, очередь);
//  3. сохранение в приёмник;
//  4. положить запись в кэш недавних.
func (s *AggregateService) Aggregate(ctx context.Context, body string) error {
	if s.opts.Decompress {
		text, err := compress.DecodeText(body, s.opts.Charset)
		if err != nil {
			s.log.Warnf(ctx, "decode body failed: %v", err)
			return fmt.Errorf("decode body: %w", err)
		}
		body = text
	}

	rec := s.newRecord(ctx, body)

	if err := s.sink.Store(ctx, rec); err != nil {
		metrics.RecordsStoreFailed.WithLabelValues(s.opts.SinkName).Inc()
		if errors.Is(err, context.DeadlineExceeded) {
			s.log.Warnf(ctx, "sink %s timed out message_id=%s", s.opts.SinkName, rec.MessageID)
		} else {
			s.log.Errorf(ctx, "sink %s store failed message_id=%s err=%v", s.opts.SinkName, rec.MessageID, err)
		}
		return fmt.Errorf("store record: %w", err)
	}
	metrics.RecordsStored.WithLabelValues(s.opts.SinkName).Inc()

	// Кэш вторичен: ошибка не отменяет приём
	if s.cache != nil {
		if err := s.cache.Set(ctx, rec); err != nil {
			s.log.Warnf(ctx, "cache.Set failed message_id=%s err=%v", rec.MessageID, err)
		}
	}

	s.log.Infof(ctx, "record accepted message_id=%s queue=%s bytes=%d", rec.MessageID, rec.Queue, len(rec.Body))
	return nil
}

// Recent — запись по id сообщения: сначала кэш, при промахе — приёмник (если он читается),
// найденная запись возвращается в кэш.
func (s *AggregateService) Recent(ctx context.Context, messageID string) (*domain.Record, bool) {
	if s.cache != nil {
		if rec, ok := s.cache.Get(ctx, messageID); ok {
			return rec, true
		}
	}
	if s.lookup == nil {
		return nil, false
	}

	rec, err := s.lookup.GetByID(ctx, messageID)
	if err != nil {
		s.log.Warnf(ctx, "sink %s lookup failed message_id=%s err=%v", s.opts.SinkName, messageID, err)
		return nil, false
	}
	if rec == nil {
		return nil, false
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, rec); err != nil {
			s.log.Warnf(ctx, "cache.Set failed message_id=%s err=%v", rec.MessageID, err)
		}
	}
	return rec, true
}

// RecentList — недавние записи от самой свежей (пагинация уже валидирована на верхнем уровне).
func (s *AggregateService) RecentList(ctx context.Context, limit, offset int) []*domain.Record {
	if s.cache == nil {
		return nil
	}
	return s.cache.Recent(ctx, limit, offset)
}

func (s *AggregateService) newRecord(ctx context.Context, body string) *domain.Record {
	id, ok := ctxmeta.MessageIDFromContext(ctx)
	if !ok {
		id = uuid.NewString()
	}
	queue, _ := ctxmeta.QueueFromContext(ctx)

	return &domain.Record{
		MessageID:  id,
		Queue:      queue,
		Body:       body,
		ReceivedAt: s.now().UTC(),
	}
}
