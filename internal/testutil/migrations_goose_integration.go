//go:build integration

package testutil

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	pgrepo "github.com/Gunvolt24/sqs_consumer/internal/repo/postgres"
)

// ApplyMigrationsGoose применяет встроенные миграции репозитория к базе по DSN.
func ApplyMigrationsGoose(ctx context.Context, dsn string) error {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("open pool: %w", err)
	}
	defer pool.Close()

	if _, err := pgrepo.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
