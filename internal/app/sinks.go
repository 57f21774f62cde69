package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/sqs_consumer/config"
	"github.com/Gunvolt24/sqs_consumer/internal/kafka"
	"github.com/Gunvolt24/sqs_consumer/internal/ports"
	"github.com/Gunvolt24/sqs_consumer/internal/redis"
	"github.com/Gunvolt24/sqs_consumer/internal/repo/postgres"
	"github.com/Gunvolt24/sqs_consumer/internal/usecase"
)

const (
	SinkLog      = "log"
	SinkPostgres = "postgres"
	SinkKafka    = "kafka"
	SinkRedis    = "redis"
)

// buildSink — приёмник записей по имени из конфигурации и функция его освобождения.
func buildSink(ctx context.Context, cfg *config.Config, logg ports.Logger) (ports.RecordSink, func(), error) {
	kind := strings.ToLower(strings.TrimSpace(cfg.Aggregator.Sink))

	switch kind {
	case "", SinkLog:
		return usecase.NewLogSink(logg), func() {}, nil

	case SinkPostgres:
		// Пул подключений Postgres
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres pool: %w", err)
		}
		if cfg.Postgres.AutoMigrate {
			applied, mErr := postgres.Migrate(ctx, pool)
			if mErr != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("postgres migrate: %w", mErr)
			}
			logg.Infof(ctx, "postgres migrations applied=%d", applied)
		}
		return postgres.NewRecordRepository(pool), pool.Close, nil

	case SinkKafka:
		pub := kafka.NewRecordPublisher(&kafka.PublisherConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		})
		release := func() {
			if err := pub.Close(); err != nil {
				logg.Warnf(ctx, "kafka publisher close: %v", err)
			}
		}
		return pub, release, nil

	case SinkRedis:
		sink, err := redis.NewListSink(ctx, &redis.ListConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Redis.Key,
			MaxLen:   cfg.Redis.MaxLen,
		})
		if err != nil {
			return nil, nil, err
		}
		release := func() {
			if err := sink.Close(); err != nil {
				logg.Warnf(ctx, "redis sink close: %v", err)
			}
		}
		return sink, release, nil

	default:
		return nil, nil, fmt.Errorf("unknown aggregator sink %q (want log|postgres|kafka|redis)", cfg.Aggregator.Sink)
	}
}
