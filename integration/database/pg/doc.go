// Package pg provides PostgreSQL connection management with migrations and
// health checking, plus a durable language preference store.
//
// This package wraps the pgx PostgreSQL driver with application-level retry
// logic, connection pool configuration, and integrated schema migrations
// using goose. It also ships a preference.Store implementation so language
// choices survive restarts and are shared across application instances.
//
// # Key Features
//
//   - Connect: Creates a connection pool with retry logic and connection verification
//   - Migrate / MigrateFS: Apply schema migrations using goose with pgx integration
//   - MigratePreferences: Apply this package's embedded migrations
//   - Healthcheck: Returns a health check function for monitoring connectivity
//   - PreferenceStore: preference.Store backed by the language_preferences table
//   - Error classification functions for common PostgreSQL error patterns
//
// Connection establishment uses exponential backoff retry logic to handle
// transient network issues and prevents thundering herd problems when
// multiple services restart simultaneously.
//
// # Configuration
//
// All configuration is handled through the Config struct with environment
// variable mapping:
//
//	type Config struct {
//		ConnectionString  string        `env:"PG_CONN_URL,required"`
//		MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
//		MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
//		HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
//		MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
//		MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`
//		RetryAttempts     int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval     time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
//		MigrationsPath    string        `env:"PG_MIGRATIONS_PATH" envDefault:"internal/db/migrations"`
//		MigrationsTable   string        `env:"PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"`
//	}
//
// # Usage Example
//
//	package main
//
//	import (
//		"context"
//		"log"
//		"log/slog"
//		"os"
//		"time"
//
//		"github.com/dmitrymomot/lingo/core/config"
//		"github.com/dmitrymomot/lingo/core/preference"
//		"github.com/dmitrymomot/lingo/integration/database/pg"
//	)
//
//	func main() {
//		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//		defer cancel()
//
//		var cfg pg.Config
//		config.MustLoad(&cfg)
//
//		pool, err := pg.Connect(ctx, cfg)
//		if err != nil {
//			log.Fatal("Failed to connect to PostgreSQL:", err)
//		}
//		defer pool.Close()
//
//		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
//		if err := pg.MigratePreferences(ctx, pool, logger); err != nil {
//			log.Fatal("Migration failed:", err)
//		}
//
//		store := pg.NewPreferenceStore(pool)
//		manager := preference.NewManager(store, localizationService)
//		_ = manager
//	}
//
// # Database Migrations
//
// The package applies migrations using goose with pgx compatibility. Migrate
// reads SQL files from a directory on disk; MigrateFS reads them from any
// fs.FS, typically an embed.FS shipped with the binary:
//
//	//go:embed migrations/*.sql
//	var migrations embed.FS
//
//	fsys, _ := fs.Sub(migrations, "migrations")
//	if err := pg.MigrateFS(ctx, pool, fsys, cfg, logger); err != nil {
//		log.Fatal("Migration failed:", err)
//	}
//
// MigratePreferences is a shortcut that applies this package's own embedded
// migrations, creating the language_preferences table PreferenceStore needs.
// Both functions handle the pgx to database/sql conversion goose requires
// while preserving connection pool efficiency.
//
// # Health Checking
//
// The package provides a health check function suitable for Kubernetes
// readiness/liveness probes or HTTP health endpoints:
//
//	healthCheck := pg.Healthcheck(pool)
//
//	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
//		if err := healthCheck(r.Context()); err != nil {
//			http.Error(w, "Database unhealthy", http.StatusServiceUnavailable)
//			return
//		}
//		w.WriteHeader(http.StatusOK)
//	})
//
// # Error Handling
//
// The package defines domain-specific errors and provides helper functions
// for common PostgreSQL error patterns:
//
//	var (
//		ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
//		ErrEmptyConnectionString    = errors.New("empty postgres connection string, use PG_CONN_URL env var")
//		ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")
//		ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
//		ErrFailedToApplyMigrations  = errors.New("failed to apply migrations")
//		ErrMigrationsDirNotFound    = errors.New("migrations directory not found")
//		ErrMigrationPathNotProvided = errors.New("migration path not provided")
//	)
//
//	isNotFound := pg.IsNotFoundError(err)               // Detects pgx.ErrNoRows
//	isDuplicate := pg.IsDuplicateKeyError(err)          // Detects unique constraint violations
//	isFKViolation := pg.IsForeignKeyViolationError(err) // Detects referential integrity violations
//	isTxClosed := pg.IsTxClosedError(err)               // Detects closed transaction usage
//
// # Transaction Management
//
// The package provides small context helpers to propagate a transaction
// through application layers so stores participate in the same DB
// transaction. PreferenceStore checks the context on every operation:
//
//	tx, err := pool.Begin(ctx)
//	if err != nil {
//		return err
//	}
//	defer tx.Rollback(ctx) // Safe even after commit
//
//	ctx = pg.WithTx(ctx, tx)
//
//	// Both writes commit or roll back together.
//	if err := store.Save(ctx, pref); err != nil {
//		return err
//	}
//	if _, err := tx.Exec(ctx, "UPDATE accounts SET onboarded = true WHERE id = $1", pref.SubjectID); err != nil {
//		return err
//	}
//
//	return tx.Commit(ctx)
package pg
