package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	cfg, err := Load(discardLogger(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Jwt.Expiry)
	assert.Equal(t, "snack_session", cfg.Auth.CookieName)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "X-Forwarded-For", cfg.Proxy.Header)
	assert.Empty(t, cfg.Proxy.TrustedProxies)
	assert.False(t, cfg.SeedData)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "JWT_SECRET_KEY=file-secret\nDB_DRIVER=sqlite\nDB_URL=snacks.db\nAUTH_ALLOWED_EMAIL_DOMAIN=byui.edu\nAPP_ENV=production\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	for _, key := range []string{"JWT_SECRET_KEY", "DB_DRIVER", "DB_URL", "AUTH_ALLOWED_EMAIL_DOMAIN", "APP_ENV"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load(discardLogger(), path)
	require.NoError(t, err)

	assert.Equal(t, "file-secret", cfg.Jwt.SecretKey)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "snacks.db", cfg.DB.URL)
	assert.Equal(t, "byui.edu", cfg.Auth.AllowedEmailDomain)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET_KEY"))

	_, err := Load(discardLogger(), filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "", maskValue(""))
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "po****5432", maskValue("postgres://localhost:5432"))
}
