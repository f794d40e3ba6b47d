package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"budgetbuddy/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var (
	readinessAttempts = 30
	readinessBackoff  = 2 * time.Second

	ErrMigrationsNotFound = errors.New("migrations directory not found")
)

// Migrator applies the versioned SQL files under MigrationsPath to postgres
// and replays the seed scripts when seeding is switched on.
type Migrator struct {
	db         *sql.DB
	migrations string
	seeds      string
	seed       bool
	logger     *slog.Logger
}

func NewMigrator(db *sql.DB, cfg *config.DatabaseConfig) *Migrator {
	return &Migrator{
		db:         db,
		migrations: cfg.MigrationsPath,
		seeds:      cfg.SeedsPath,
		seed:       cfg.SeedDatabase,
		logger:     slog.Default().With(slog.String("component", "migrator")),
	}
}

// AwaitReady pings with a fixed backoff until the server answers, the attempt
// budget runs out, or ctx ends.
func (m *Migrator) AwaitReady(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= readinessAttempts; attempt++ {
		if lastErr = m.db.PingContext(ctx); lastErr == nil {
			return nil
		}
		m.logger.Info("waiting for database",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", readinessAttempts),
			slog.Any("error", lastErr),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readinessBackoff):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", readinessAttempts, lastErr)
}

func (m *Migrator) instance() (*migrate.Migrate, error) {
	dir, err := filepath.Abs(m.migrations)
	if err != nil {
		return nil, fmt.Errorf("resolve migrations path: %w", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsNotFound, dir)
	}

	driver, err := postgres.WithInstance(m.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres migrate driver: %w", err)
	}
	return migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
}

// Up brings the schema to the latest version. A version left dirty by an
// interrupted run is forced back before migrating.
func (m *Migrator) Up() error {
	mig, err := m.instance()
	if err != nil {
		return err
	}

	from, dirty, err := mig.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case dirty:
		m.logger.Warn("schema version is dirty, forcing", slog.Uint64("version", uint64(from)))
		if err := mig.Force(int(from)); err != nil {
			return fmt.Errorf("force schema version %d: %w", from, err)
		}
	}

	if err := mig.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.logger.Info("schema up to date", slog.Uint64("version", uint64(from)))
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	to, _, err := mig.Version()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	m.logger.Info("schema migrated", slog.Uint64("from", uint64(from)), slog.Uint64("to", uint64(to)))
	return nil
}

func (m *Migrator) Version() (version uint, dirty bool, err error) {
	mig, err := m.instance()
	if err != nil {
		return 0, false, err
	}
	return mig.Version()
}

// Seed executes the *.sql files in SeedsPath in lexical order. A script that
// fails is logged and the rest still run; a script that cannot be read stops
// the pass.
func (m *Migrator) Seed(ctx context.Context) (applied int, err error) {
	if !m.seed {
		return 0, nil
	}

	scripts, err := filepath.Glob(filepath.Join(m.seeds, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("list seed scripts: %w", err)
	}

	for _, script := range scripts {
		body, err := os.ReadFile(script)
		if err != nil {
			return applied, fmt.Errorf("read seed script %s: %w", filepath.Base(script), err)
		}
		if _, err := m.db.ExecContext(ctx, string(body)); err != nil {
			m.logger.Warn("seed script failed", slog.String("script", filepath.Base(script)), slog.Any("error", err))
			continue
		}
		applied++
	}

	if applied > 0 {
		m.logger.Info("seed scripts applied", slog.Int("count", applied))
	}
	return applied, nil
}

// Migrate runs the SQL migrations when AutoMigrate is set and reports whether
// the schema is now owned by them.
func Migrate(ctx context.Context, db *sql.DB, cfg *config.DatabaseConfig) (bool, error) {
	if !cfg.AutoMigrate {
		return false, nil
	}

	m := NewMigrator(db, cfg)
	if err := m.AwaitReady(ctx); err != nil {
		return false, err
	}
	if err := m.Up(); err != nil {
		return false, err
	}
	if _, err := m.Seed(ctx); err != nil {
		m.logger.Warn("seeding stopped early", slog.Any("error", err))
	}
	return true, nil
}
