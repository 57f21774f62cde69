package sqs

import (
	"time"

	"golang.org/x/time/rate"
)

const (
	// MaxBatchSize — максимум сообщений за один ReceiveMessage (ограничение SQS).
	MaxBatchSize = 10

	// DefaultPollingInterval — пауза после пустой выборки.
	DefaultPollingInterval = 3 * time.Second
)

type ConsumerConfig struct {
	QueueName       string
	PollingInterval time.Duration
	ProcessTimeout  time.Duration
	DeleteTimeout   time.Duration
	MaxReceiveRate  float64 // выборок в секунду; 0 — без ограничения
}

// limiter — ограничитель частоты ReceiveMessage или nil, если лимит не задан.
func (c *ConsumerConfig) limiter() receiveLimiter {
	if c.MaxReceiveRate <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(c.MaxReceiveRate), 1)
}
