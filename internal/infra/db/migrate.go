package db

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"agendamento-api/migrations"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate applies every embedded schema file in name order. The files are
// written with IF NOT EXISTS / ON CONFLICT DO NOTHING, so running them on an
// already initialized database changes nothing.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	return applyFS(ctx, pool, migrations.FS)
}

func applyFS(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS) error {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		// Simple protocol lets one Exec carry several statements.
		if _, err := pool.Exec(ctx, string(body), pgx.QueryExecModeSimpleProtocol); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
		slog.Info("migration applied", "file", name)
	}
	return nil
}
