package usecase

import (
	"context"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
	"github.com/Gunvolt24/sqs_consumer/internal/ports"
)

var _ ports.RecordSink = (*LogSink)(nil)

// LogSink — приёмник по умолчанию: одна строка лога на запись.
type LogSink struct {
	log ports.Logger
}

func NewLogSink(log ports.Logger) *LogSink { return &LogSink{log: log} }

func (s *LogSink) Store(ctx context.Context, rec *domain.Record) error {
	s.log.Infof(ctx, "aggregate message_id=%s queue=%s body=%q", rec.MessageID, rec.Queue, rec.Body)
	return nil
}
