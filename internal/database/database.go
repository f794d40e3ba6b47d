package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budgetbuddy/internal/config"
	"budgetbuddy/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectTimeout = 5 * time.Second

// DB is the gorm handle plus the settings it was opened with.
type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// Models lists every persisted model in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.RefreshToken{},
		&models.BlacklistedToken{},
		&models.AuditLog{},
		&models.UserActivity{},
		&models.Account{},
		&models.Category{},
		&models.Transaction{},
		&models.Budget{},
		&models.Goal{},
		&models.GoalContribution{},
		&models.Insight{},
	}
}

// supplementalIndexes cover the composite and partial indexes gorm tags
// cannot express. Each statement is valid on both postgres and sqlite.
var supplementalIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users(LOWER(email))",
	"CREATE INDEX IF NOT EXISTS idx_users_locked_at ON users(locked_at) WHERE locked_at IS NOT NULL",
	"CREATE INDEX IF NOT EXISTS idx_refresh_tokens_active ON refresh_tokens(user_id, expires_at) WHERE revoked_at IS NULL",
	"CREATE INDEX IF NOT EXISTS idx_accounts_user_active ON accounts(user_id, is_active)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_user_time ON transactions(user_id, txn_time DESC)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_account_time ON transactions(account_id, txn_time DESC)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_user_category ON transactions(user_id, category_id) WHERE category_id IS NOT NULL",
	"CREATE INDEX IF NOT EXISTS idx_transactions_pending ON transactions(account_id) WHERE is_pending",
	"CREATE INDEX IF NOT EXISTS idx_budgets_user_dates ON budgets(user_id, start_date, end_date)",
	"CREATE INDEX IF NOT EXISTS idx_goals_user_status ON goals(user_id, status)",
	"CREATE INDEX IF NOT EXISTS idx_insights_user_unacknowledged ON insights(user_id, generated_at DESC) WHERE NOT acknowledged",
	"CREATE INDEX IF NOT EXISTS idx_audit_logs_user_created ON audit_logs(user_id, created_at DESC)",
}

func dialectorFor(cfg *config.DatabaseConfig) gorm.Dialector {
	if cfg.Driver == config.DriverSQLite {
		return sqlite.Open(cfg.DSN())
	}
	return postgres.Open(cfg.DSN())
}

// Open connects with the configured driver, sizes the pool and pings once.
func Open(cfg *config.DatabaseConfig, level logger.LogLevel) (*DB, error) {
	gdb, err := gorm.Open(dialectorFor(cfg), &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	db := &DB{DB: gdb, config: cfg}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s database: %w", cfg.Driver, err)
	}
	return db, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(Models()...)
}

func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureIndexes creates the supplemental indexes and returns how many could
// not be created. Failures are logged, never fatal.
func (db *DB) EnsureIndexes() int {
	failed := 0
	for _, stmt := range supplementalIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			failed++
			slog.Warn("index not created", slog.String("statement", stmt), slog.Any("error", err))
		}
	}
	return failed
}

// migrateSchema lets postgres own its schema through the SQL migrations when
// enabled; every other case, and a failed migration run, uses AutoMigrate.
func (db *DB) migrateSchema(ctx context.Context) error {
	if db.config.Driver != config.DriverSQLite {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return fmt.Errorf("unwrap sql.DB: %w", err)
		}
		managed, err := Migrate(ctx, sqlDB, db.config)
		if err != nil {
			slog.Warn("sql migrations failed, using AutoMigrate", slog.Any("error", err))
		}
		if managed {
			return nil
		}
	}

	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Initialize opens the configured database and brings its schema and indexes
// up to date.
func Initialize(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.IsDevelopment() {
		level = logger.Info
	}

	db, err := Open(&cfg.Database, level)
	if err != nil {
		return nil, err
	}

	if err := db.migrateSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if failed := db.EnsureIndexes(); failed > 0 {
		slog.Warn("some indexes are missing", slog.Int("failed", failed))
	}

	slog.Info("database ready", slog.String("driver", cfg.Database.Driver))
	return db.DB, nil
}
