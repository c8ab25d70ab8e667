package store

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/mysql/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// applyMigrations runs every embedded script of one dialect in file-name
// order. Scripts are idempotent, so this runs on every start.
func applyMigrations(ctx context.Context, dialect string, exec func(ctx context.Context, stmt string) error) error {
	names, err := fs.Glob(migrationsFS, "migrations/"+dialect+"/*.sql")
	if err != nil {
		return fmt.Errorf("listing %s migrations: %w", dialect, err)
	}
	sort.Strings(names)

	for _, name := range names {
		stmt, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := exec(ctx, string(stmt)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
	}
	return nil
}
