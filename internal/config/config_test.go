package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("FIREBASE_PROJECT_ID", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 6, cfg.Security.PasswordMinLength)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenDuration)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.NotNil(t, cfg.JWT.PrivateKey)
	assert.NotNil(t, cfg.JWT.PublicKey)
	assert.False(t, cfg.FirebaseEnabled())
	assert.True(t, cfg.IsTesting())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/bb.db")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_PER_SECOND", "not-a-number")
	t.Setenv("FIREBASE_PROJECT_ID", "budgetbuddy-app")
	t.Setenv("MOBILE_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/bb.db", cfg.Database.DSN())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, 10, cfg.Security.RateLimitPerSecond)
	assert.True(t, cfg.FirebaseEnabled())
	assert.Equal(t, "secret", cfg.Security.MobileAPIKey)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}

func TestLoad_ProductionRequiresKeys(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_KeysFromEnv(t *testing.T) {
	priv, _, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_PRIVATE_KEY", base64.StdEncoding.EncodeToString(privPEM))
	t.Setenv("JWT_PUBLIC_KEY", base64.StdEncoding.EncodeToString(pubPEM))

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, priv.Equal(cfg.JWT.PrivateKey))
	assert.True(t, priv.PublicKey.Equal(cfg.JWT.PublicKey))
}

func TestParseRSAPrivateKey_PKCS8(t *testing.T) {
	priv, _, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)

	parsed, err := ParseRSAPrivateKey(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
	require.NoError(t, err)
	assert.True(t, priv.Equal(parsed))

	_, err = ParseRSAPrivateKey([]byte("garbage"))
	assert.Error(t, err)
}

func TestLoggingConfig_SlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		cfg := LoggingConfig{Level: in}
		assert.Equal(t, want, cfg.SlogLevel(), in)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("BB_TEST_LIST", " https://a.example,, https://b.example ,")
	t.Setenv("BB_TEST_DURATION", "90s")
	t.Setenv("BB_TEST_BOOL", "yes-please")

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, envList("BB_TEST_LIST"))
	assert.Empty(t, envList("BB_TEST_UNSET"))
	assert.Equal(t, 90*time.Second, envDuration("BB_TEST_DURATION", time.Second))
	assert.True(t, envBool("BB_TEST_BOOL", true), "malformed bool keeps the default")
	assert.Equal(t, 7, envInt("BB_TEST_UNSET", 7))
}

func TestParseRSAPublicKey_Errors(t *testing.T) {
	_, err := ParseRSAPublicKey(nil)
	assert.Error(t, err)

	priv, _, err := GenerateRSAKeyPair()
	require.NoError(t, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	_, err = ParseRSAPublicKey(privPEM)
	assert.Error(t, err, "a private key block is not a public key")
}
