package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations — SQL-миграции схемы без префикса каталога.
func Migrations() (fs.FS, error) {
	return fs.Sub(embeddedMigrations, "migrations")
}

// Migrate применяет встроенные миграции через goose поверх пула pgx.
// Возвращает число применённых миграций.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	fsys, err := Migrations()
	if err != nil {
		return 0, fmt.Errorf("migrations fs: %w", err)
	}

	// goose работает с database/sql — оборачиваем пул
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}
