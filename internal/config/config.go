package config

import (
	"crypto/rsa"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Security SecurityConfig
	Firebase FirebaseConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	BodyLimit        string
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// AutoMigrate applies db/migrations on startup (postgres only).
	AutoMigrate    bool
	MigrationsPath string
	SeedDatabase   bool
	SeedsPath      string
}

type JWTConfig struct {
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	PrivateKey           *rsa.PrivateKey
	PublicKey            *rsa.PublicKey
	Issuer               string
}

type SecurityConfig struct {
	BCryptCost          int
	RateLimitPerSecond  int
	RateLimitBurst      int
	MaxFailedAttempts   int
	PasswordMinLength   int
	RequireUppercase    bool
	RequireLowercase    bool
	RequireNumbers      bool
	RequireSpecialChars bool
	// MobileAPIKey is compared against X-Mobile-API-Key. Empty means any non-empty header passes.
	MobileAPIKey string
}

// FirebaseConfig enables verification of Firebase ID tokens. Verification is
// disabled when ProjectID is empty.
type FirebaseConfig struct {
	ProjectID    string
	CertsURL     string
	CertCacheTTL time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultFirebaseCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"
)

// Load reads the configuration from the environment. Malformed numbers,
// booleans and durations fall back to their defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            envString("SERVER_PORT", "8080"),
			Host:            envString("SERVER_HOST", "localhost"),
			Environment:     envString("APP_ENV", "development"),
			ReadTimeout:     envDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    envDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: envDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			BodyLimit:       envString("SERVER_BODY_LIMIT", "1M"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(envString("DB_DRIVER", DriverPostgres)),
			Host:            envString("DB_HOST", "localhost"),
			Port:            envString("DB_PORT", "5432"),
			User:            envString("DB_USER", "budgetbuddy"),
			Password:        envString("DB_PASSWORD", "budgetbuddy"),
			Name:            envString("DB_NAME", "budgetbuddy"),
			SSLMode:         envString("DB_SSL_MODE", "disable"),
			SQLitePath:      envString("DB_SQLITE_PATH", "budgetbuddy.db"),
			MaxConnections:  envInt("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     envBool("AUTO_MIGRATE", false),
			MigrationsPath:  envString("DB_MIGRATIONS_PATH", "db/migrations"),
			SeedDatabase:    envBool("SEED_DATABASE", false),
			SeedsPath:       envString("DB_SEEDS_PATH", "db/seeds"),
		},
		Security: SecurityConfig{
			BCryptCost:          envInt("BCRYPT_COST", 12),
			RateLimitPerSecond:  envInt("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:      envInt("RATE_LIMIT_BURST", 20),
			MaxFailedAttempts:   envInt("MAX_FAILED_ATTEMPTS", 5),
			PasswordMinLength:   envInt("PASSWORD_MIN_LENGTH", 6),
			RequireUppercase:    envBool("PASSWORD_REQUIRE_UPPERCASE", false),
			RequireLowercase:    envBool("PASSWORD_REQUIRE_LOWERCASE", false),
			RequireNumbers:      envBool("PASSWORD_REQUIRE_NUMBERS", false),
			RequireSpecialChars: envBool("PASSWORD_REQUIRE_SPECIAL", false),
			MobileAPIKey:        os.Getenv("MOBILE_API_KEY"),
		},
		JWT: JWTConfig{
			AccessTokenDuration:  envDuration("JWT_ACCESS_TOKEN_DURATION", 15*time.Minute),
			RefreshTokenDuration: envDuration("JWT_REFRESH_TOKEN_DURATION", 7*24*time.Hour),
			Issuer:               envString("JWT_ISSUER", "budgetbuddy-api"),
		},
		Firebase: FirebaseConfig{
			ProjectID:    os.Getenv("FIREBASE_PROJECT_ID"),
			CertsURL:     envString("FIREBASE_CERTS_URL", defaultFirebaseCertsURL),
			CertCacheTTL: envDuration("FIREBASE_CERT_CACHE_TTL", time.Hour),
		},
		Logging: LoggingConfig{
			Level:  envString("LOG_LEVEL", "info"),
			Format: envString("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}

	cfg.Server.CORSAllowOrigins = envList("CORS_ALLOW_ORIGINS")
	if len(cfg.Server.CORSAllowOrigins) == 0 {
		if cfg.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, allowing all origins")
		}
		cfg.Server.CORSAllowOrigins = []string{"*"}
	}

	var err error
	if cfg.JWT.PrivateKey, cfg.JWT.PublicKey, err = loadJWTKeys(cfg.IsProduction()); err != nil {
		return nil, fmt.Errorf("failed to load RSA keys: %w", err)
	}

	return cfg, nil
}

func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (expected %q or %q)", c.Driver, DriverPostgres, DriverSQLite)
	}
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func (c *Config) FirebaseEnabled() bool {
	return c.Firebase.ProjectID != ""
}

// SlogLevel maps LOG_LEVEL onto slog levels, defaulting to info.
func (c *LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	return envParsed(key, fallback, strconv.Atoi)
}

func envBool(key string, fallback bool) bool {
	return envParsed(key, fallback, strconv.ParseBool)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	return envParsed(key, fallback, time.ParseDuration)
}

func envParsed[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := parse(raw)
	if err != nil {
		slog.Warn("ignoring malformed environment value", "key", key, "value", raw)
		return fallback
	}
	return value
}

// envList splits a comma separated variable, dropping empty items.
func envList(key string) []string {
	var items []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
