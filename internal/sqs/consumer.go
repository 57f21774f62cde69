package sqs

//go:generate mockgen -source=consumer.go -destination=mocks/mock_consumer.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/sqs_consumer/internal/domain"
	"github.com/Gunvolt24/sqs_consumer/internal/ports"
	"github.com/Gunvolt24/sqs_consumer/pkg/metrics"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// queueClient — минимальный контракт над клиентом очереди,
// чтобы легко подменять его моками в тестах.
type queueClient interface {
	Resolve(ctx context.Context, queueName string) (string, error)
	ReceiveBatch(ctx context.Context, queueURL string, maxMessages int) ([]domain.Message, error)
	Delete(ctx context.Context, queueURL, receiptHandle string) error
	Shutdown() error
}

// messageAggregator — бизнес-логика, принимающая тело сообщения.
type messageAggregator interface {
	Aggregate(ctx context.Context, body string) error
}

// receiveLimiter — ограничение частоты выборок (rate.Limiter).
type receiveLimiter interface {
	Wait(ctx context.Context) error
}

// Consumer — цикл опроса одной очереди: receive → aggregate → delete.
type Consumer struct {
	client          queueClient
	aggregator      messageAggregator
	log             ports.Logger
	limiter         receiveLimiter
	queueName       string
	pollingInterval time.Duration
	processTimeout  time.Duration
	deleteTimeout   time.Duration
	// sleep — ожидание между пустыми выборками; false — контекст отменён.
	sleep     func(ctx context.Context, d time.Duration) bool
	closeOnce sync.Once
}

// NewConsumer — конструктор. Клиент закрывается через Close.
func NewConsumer(cfg *ConsumerConfig, client queueClient, aggregator messageAggregator, log ports.Logger) *Consumer {
	// Параметры по умолчанию (если не заданы в конфиге)
	pi := cfg.PollingInterval
	if pi <= 0 {
		pi = DefaultPollingInterval
	}

	pt := cfg.ProcessTimeout
	if pt <= 0 {
		pt = 5 * time.Second
	}

	dt := cfg.DeleteTimeout
	if dt <= 0 {
		dt = 5 * time.Second
	}

	return &Consumer{
		client:          client,
		aggregator:      aggregator,
		log:             log,
		limiter:         cfg.limiter(),
		queueName:       cfg.QueueName,
		pollingInterval: pi,
		processTimeout:  pt,
		deleteTimeout:   dt,
		sleep:           sleepCtx,
	}
}

// Run — основной цикл:
// 1) забираем пачку до MaxBatchSize сообщений;
// 2) пустая пачка → пауза pollingInterval;
// 3) каждое сообщение по порядку → агрегатор;
// 4) агрегатор принял → удаляем по receipt handle;
// 5) агрегатор отказал → не удаляем (сообщение вернётся после visibility timeout).
// Ошибка клиента очереди фатальна: Run возвращает её, перезапуск — забота процесса.
func (c *Consumer) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	queueURL, err := c.client.Resolve(ctx, c.queueName)
	if err != nil {
		return c.transportErr(ctx, "resolve queue", err)
	}
	c.log.Infof(ctx, "sqs consumer started queue=%s url=%s polling_interval=%s", c.queueName, queueURL, c.pollingInterval)

	for {
		// Проверяем отмену до каждой выборки
		if err := ctx.Err(); err != nil {
			return err
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				// Wait отказывает и без отмены: ожидание не укладывается в дедлайн контекста
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				c.log.Errorf(ctx, "receive limiter failed queue=%s: %v", c.queueName, err)
				return fmt.Errorf("receive limiter: %w", err)
			}
		}

		batch, recvErr := c.client.ReceiveBatch(ctx, queueURL, MaxBatchSize)
		if recvErr != nil {
			return c.transportErr(ctx, "receive batch", recvErr)
		}

		metrics.SQSBatchSize.WithLabelValues(c.queueName).Observe(float64(len(batch)))

		// Пустая пачка → ждём и опрашиваем снова
		if len(batch) == 0 {
			metrics.SQSEmptyReceives.WithLabelValues(c.queueName).Inc()
			c.log.Debugf(ctx, "empty receive queue=%s, sleeping %s", c.queueName, c.pollingInterval)
			if !c.sleep(ctx, c.pollingInterval) {
				return ctx.Err()
			}
			continue
		}

		metrics.SQSMessagesReceived.WithLabelValues(c.queueName).Add(float64(len(batch)))
		c.log.Debugf(ctx, "received batch queue=%s size=%d", c.queueName, len(batch))

		if err := c.handleBatch(ctx, queueURL, batch); err != nil {
			return err
		}
	}
}

// Close — освобождает клиента очереди. Вызывается при остановке приложения.
func (c *Consumer) Close() (retErr error) {
	if c == nil || c.client == nil {
		return nil
	}
	c.closeOnce.Do(func() {
		retErr = c.client.Shutdown()
	})
	return retErr
}

// transportErr — отмена контекста важнее ошибки клиента; иначе оборачиваем в ErrTransport.
func (c *Consumer) transportErr(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	c.log.Errorf(ctx, "%s failed queue=%s: %v", op, c.queueName, err)
	if isTransport(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrTransport, op, err)
}
