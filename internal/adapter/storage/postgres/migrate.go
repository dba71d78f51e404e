package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Migration status values stored in schema_migrations.
const (
	MigrationCompleted = "COMPLETED"
	MigrationFailed    = "FAILED"
)

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version     VARCHAR(50) PRIMARY KEY,
	executed_at TIMESTAMPTZ NOT NULL,
	duration_ms BIGINT      NOT NULL,
	status      VARCHAR(20) NOT NULL
)`

// Migrate applies every *.up.sql file in fsys that has not completed yet, in
// lexical order. Each file runs in its own transaction.
func Migrate(ctx context.Context, pool Pool, fsys fs.FS, log zerolog.Logger) error {
	if _, err := pool.Exec(ctx, createMigrationsTable); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	names, err := fs.Glob(fsys, "*.up.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		version := strings.TrimSuffix(name, ".up.sql")

		var status string
		err := pool.QueryRow(ctx,
			`SELECT COALESCE((SELECT status FROM schema_migrations WHERE version = $1), '')`, version,
		).Scan(&status)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", version, err)
		}
		if status == MigrationCompleted {
			continue
		}

		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", version, err)
		}

		start := time.Now()
		applyErr := applyMigration(ctx, pool, string(body))
		status = MigrationCompleted
		if applyErr != nil {
			status = MigrationFailed
		}

		_, err = pool.Exec(ctx,
			`INSERT INTO schema_migrations (version, executed_at, duration_ms, status)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (version) DO UPDATE SET executed_at = $2, duration_ms = $3, status = $4`,
			version, start.UTC(), time.Since(start).Milliseconds(), status,
		)
		if applyErr != nil {
			return fmt.Errorf("apply migration %s: %w", version, applyErr)
		}
		if err != nil {
			return fmt.Errorf("record migration %s: %w", version, err)
		}

		log.Info().Str("version", version).Dur("duration", time.Since(start)).Msg("migration applied")
	}
	return nil
}

func applyMigration(ctx context.Context, pool Pool, sql string) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, sql); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
