package pg

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrate applies pending SQL migrations from cfg.MigrationsPath using goose.
// Returns ErrMigrationsDirNotFound when the directory does not exist so
// callers can treat a missing directory as "nothing to migrate".
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, log *slog.Logger) error {
	if cfg.MigrationsPath == "" {
		return ErrMigrationPathNotProvided
	}

	info, err := os.Stat(cfg.MigrationsPath)
	if err != nil || !info.IsDir() {
		return ErrMigrationsDirNotFound
	}

	return runMigrations(ctx, pool, os.DirFS(cfg.MigrationsPath), cfg.MigrationsTable, log)
}

// MigrateFS applies pending SQL migrations from the root of fsys, typically
// an embed.FS shipped with the application binary.
func MigrateFS(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS, cfg Config, log *slog.Logger) error {
	if fsys == nil {
		return ErrMigrationsDirNotFound
	}
	return runMigrations(ctx, pool, fsys, cfg.MigrationsTable, log)
}

// MigratePreferences applies the migrations embedded in this package,
// creating the language_preferences table used by PreferenceStore.
func MigratePreferences(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	fsys, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return runMigrations(ctx, pool, fsys, "", log)
}

// runMigrations drives goose over a pgx pool. Goose speaks database/sql, so
// the pool is wrapped with the stdlib adapter; closing the adapter does not
// close the pool.
func runMigrations(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS, table string, log *slog.Logger) error {
	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if table != "" {
		goose.SetTableName(table)
	}
	if log != nil {
		goose.SetLogger(&gooseLogger{log: log})
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return nil
}

// gooseLogger adapts slog to the goose logging interface.
type gooseLogger struct {
	log *slog.Logger
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error(strings.TrimRight(fmt.Sprintf(format, v...), "\n"))
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.log.Info(strings.TrimRight(fmt.Sprintf(format, v...), "\n"))
}
