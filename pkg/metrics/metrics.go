package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	SQSMessagesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqs_messages_received_total",
			Help: "Number of messages received from the queue",
		},
		[]string{"queue"},
	)
	SQSMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqs_messages_processed_total",
			Help: "Number of messages accepted by the aggregator",
		},
		[]string{"queue"},
	)
	SQSMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqs_messages_failed_total",
			Help: "Number of messages rejected by the aggregator (left for redelivery)",
		},
		[]string{"queue"},
	)
	SQSMessagesDeleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqs_messages_deleted_total",
			Help: "Number of messages deleted from the queue",
		},
		[]string{"queue"},
	)
	SQSEmptyReceives = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqs_empty_receives_total",
			Help: "Number of receive calls that returned no messages",
		},
		[]string{"queue"},
	)
	SQSBatchSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sqs_batch_size",
			Help:    "Number of messages per receive call",
			Buckets: []float64{0, 1, 2, 5, 10},
		},
		[]string{"queue"},
	)
)

var (
	RecordsStored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aggregate_records_stored_total",
			Help: "Records written to the aggregate sink",
		},
		[]string{"sink"},
	)
	RecordsStoreFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aggregate_records_store_failed_total",
			Help: "Failed writes to the aggregate sink",
		},
		[]string{"sink"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister регистрирует коллекторы в default-реестре. Повторный вызов — no-op.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			SQSMessagesReceived, SQSMessagesProcessed, SQSMessagesFailed,
			SQSMessagesDeleted, SQSEmptyReceives, SQSBatchSize,
			RecordsStored, RecordsStoreFailed,
			CacheOps, CacheSize,
		)
	})
}
