package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)

	var missing *MissingEnvError
	require.True(t, errors.As(err, &missing))
	assert.ElementsMatch(t, []string{"DATABASE_URL", "JWT_SECRET"}, missing.Vars)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/hrms?sslmode=disable")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRATION", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.App.Port)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "postgres://u:p@localhost:5432/hrms?sslmode=disable", cfg.DatabaseURL())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.AllowedOrigins)
}

func TestLoad_PinsCORSOriginAndLimiterTTL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/hrms?sslmode=disable")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("LOGIN_RATE_IDLE_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
	assert.Equal(t, time.Hour, cfg.RateLimit.IdleTTL)
}

func TestConfig_DatabaseURLFromParts(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5433, User: "hr", Password: "pw", Name: "hrms", SSLMode: "require",
	}}
	assert.Equal(t, "postgres://hr:pw@db:5433/hrms?sslmode=require", cfg.DatabaseURL())
}

func TestConfig_SlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		cfg := &Config{App: AppConfig{LogLevel: in}}
		assert.Equal(t, want, cfg.SlogLevel(), in)
	}
}
