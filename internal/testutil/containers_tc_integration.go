//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/testcontainers/testcontainers-go/wait"

	pgrepo "github.com/Gunvolt24/sqs_consumer/internal/repo/postgres"
)

// Общий логгер жизненного цикла контейнеров
var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags)

// StopFunc — остановка контейнера (и связанных с ним клиентов).
type StopFunc func(context.Context) error

// lifecycleLog — одна строка на этап: created/ready/terminated.
func lifecycleLog() tc.ContainerLifecycleHooks {
	stage := func(name string) tc.ContainerHook {
		return func(_ context.Context, c tc.Container) error {
			id := c.GetContainerID()
			if len(id) > 12 {
				id = id[:12]
			}
			tcLogger.Printf("%s id=%s", name, id)
			return nil
		}
	}
	return tc.ContainerLifecycleHooks{
		PostCreates:    []tc.ContainerHook{stage("created")},
		PostReadies:    []tc.ContainerHook{stage("ready")},
		PostTerminates: []tc.ContainerHook{stage("terminated")},
	}
}

// PGContainer — Postgres для sink=postgres; Pool собран тем же NewPool, что и в сервисе.
type PGContainer struct {
	Pool *pgxpool.Pool
	DSN  string
}

func StartPostgresTC(ctx context.Context) (*PGContainer, StopFunc, error) {
	pg, err := postgres.Run(ctx, "postgres:16-alpine",
		tc.WithLifecycleHooks(lifecycleLog()),
		postgres.WithDatabase("aggregates"),
		postgres.WithUsername("app"),
		postgres.WithPassword("app"),
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = tc.TerminateContainer(pg)
		return nil, nil, fmt.Errorf("conn string: %w", err)
	}

	pool, err := pgrepo.NewPool(ctx, dsn, 5)
	if err != nil {
		_ = tc.TerminateContainer(pg)
		return nil, nil, fmt.Errorf("new pool: %w", err)
	}

	stop := func(context.Context) error {
		pool.Close()
		return tc.TerminateContainer(pg)
	}
	return &PGContainer{Pool: pool, DSN: dsn}, stop, nil
}

// KafkaEnv — redpanda для sink=kafka.
type KafkaEnv struct {
	Brokers   []string
	BaseTopic string
}

func StartKafkaTC(ctx context.Context, baseTopic string) (*KafkaEnv, StopFunc, error) {
	rp, err := redpanda.Run(ctx, "docker.redpanda.com/redpandadata/redpanda:v23.3.8",
		tc.WithLifecycleHooks(lifecycleLog()),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	stop := func(context.Context) error { return tc.TerminateContainer(rp) }
	return &KafkaEnv{Brokers: []string{seed}, BaseTopic: baseTopic}, stop, nil
}

// RedisEnv — redis для sink=redis.
type RedisEnv struct {
	Addr string
}

func StartRedisTC(ctx context.Context) (*RedisEnv, StopFunc, error) {
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:          "redis:7-alpine",
			ExposedPorts:   []string{"6379/tcp"},
			LifecycleHooks: []tc.ContainerLifecycleHooks{lifecycleLog()},
			WaitingFor:     wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("run redis: %w", err)
	}

	endpoint, err := c.Endpoint(ctx, "")
	if err != nil {
		_ = tc.TerminateContainer(c)
		return nil, nil, fmt.Errorf("redis endpoint: %w", err)
	}

	stop := func(context.Context) error { return tc.TerminateContainer(c) }
	return &RedisEnv{Addr: endpoint}, stop, nil
}
