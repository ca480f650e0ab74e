package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// MigrateAccounts brings the Postgres accounts schema up to date.
// It opens its own database/sql connection because goose does not
// speak pgxpool; the connection is closed before returning.
func MigrateAccounts(ctx context.Context, dbURL string) error {
	sqlDB, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer sqlDB.Close()

	return runMigrations(ctx, sqlDB, "postgres", "migrations/postgres")
}

// OpenDiaryIndex opens (creating if needed) the sqlite diary index
// and brings its schema up to date. The caller owns the returned handle.
func OpenDiaryIndex(ctx context.Context, path string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := runMigrations(ctx, sqlDB, "sqlite3", "migrations/sqlite"); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func runMigrations(ctx context.Context, sqlDB *sql.DB, dialect, dir string) error {
	sub, err := fs.Sub(migrations, dir)
	if err != nil {
		return fmt.Errorf("migration fs error: %w", err)
	}

	goose.SetBaseFS(sub)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration dialect error: %w", err)
	}

	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
