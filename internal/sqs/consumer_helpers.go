package sqs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
	"github.com/Gunvolt24/sqs_consumer/pkg/ctxmeta"
	"github.com/Gunvolt24/sqs_consumer/pkg/metrics"
	"github.com/Gunvolt24/sqs_consumer/pkg/telemetry"
)

// handleBatch обрабатывает пачку по порядку. Отмена между сообщениями — выход
// без удаления оставшихся. Ошибка удаления фатальна.
func (c *Consumer) handleBatch(ctx context.Context, queueURL string, batch []domain.Message) error {
	for i := range batch {
		if err := ctx.Err(); err != nil {
			c.log.Infof(ctx, "stopping mid-batch queue=%s, %d message(s) left for redelivery", c.queueName, len(batch)-i)
			return err
		}
		if err := c.handleMessage(ctx, queueURL, &batch[i]); err != nil {
			return err
		}
	}
	return nil
}

// handleMessage — агрегатор, затем (только при успехе) удаление.
func (c *Consumer) handleMessage(ctx context.Context, queueURL string, msg *domain.Message) error {
	msgCtx := ctxmeta.WithQueue(ctxmeta.WithMessageID(ctx, msg.ID), c.queueName)
	msgCtx, span := telemetry.Tracer().Start(msgCtx, "sqs.process_message",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "aws_sqs"),
			attribute.String("messaging.destination.name", c.queueName),
			attribute.String("messaging.message.id", msg.ID),
		),
	)
	defer span.End()

	aggCtx, cancel := context.WithTimeout(msgCtx, c.processTimeout)
	aggErr := c.aggregator.Aggregate(aggCtx, msg.Body)
	cancel()

	if aggErr != nil {
		// Агрегатор отказал: НЕ удаляем, сообщение вернётся после visibility timeout
		err := fmt.Errorf("%w: %w", domain.ErrAggregation, aggErr)
		metrics.SQSMessagesFailed.WithLabelValues(c.queueName).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "aggregation failed")
		c.log.Warnf(msgCtx, "message not accepted id=%s: %v (left in queue)", msg.ID, err)
		return nil
	}
	metrics.SQSMessagesProcessed.WithLabelValues(c.queueName).Inc()

	// Удаление переживает отмену: принятое сообщение должно быть подтверждено
	delCtx, delCancel := context.WithTimeout(context.WithoutCancel(msgCtx), c.deleteTimeout)
	defer delCancel()
	if err := c.client.Delete(delCtx, queueURL, msg.ReceiptHandle); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		c.log.Errorf(msgCtx, "delete failed id=%s: %v", msg.ID, err)
		if isTransport(err) {
			return err
		}
		return fmt.Errorf("%w: delete message: %w", domain.ErrTransport, err)
	}

	metrics.SQSMessagesDeleted.WithLabelValues(c.queueName).Inc()
	c.log.Debugf(msgCtx, "message processed and deleted id=%s", msg.ID)
	return nil
}

// sleepCtx ждёт d или останавливается по контексту.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

func isTransport(err error) bool {
	return errors.Is(err, domain.ErrTransport)
}
