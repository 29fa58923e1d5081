package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/maxviazov/talent-agency-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// clearSecrets makes sure nothing from the developer's shell leaks into a test.
func clearSecrets(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_POSTGRES_USER", "APP_POSTGRES_PASSWORD", "APP_POSTGRES_DB", "APP_AUTH_JWT_SECRET"} {
		t.Setenv(k, "")
	}
}

func TestLoad_FromYAMLAndEnv(t *testing.T) {
	clearSecrets(t)
	yaml := `
app:
  name: talent-agency-service
  version: 0.1.0
  env: test
  port: 18080
  shutdown_timeout: 5s

logger:
  level: info
  format: json
  output_target: stdout
  time_format: rfc3339

postgres:
  host: 127.0.0.1
  port: 5432
  sslmode: disable
  max_conns: 5
  min_conns: 1

upload:
  dir: /tmp/agency-uploads
  max_files: 4
`
	path := writeTempConfig(t, yaml)

	// secrets only come from the environment
	t.Setenv("APP_POSTGRES_USER", "testuser")
	t.Setenv("APP_POSTGRES_PASSWORD", "testpass")
	t.Setenv("APP_POSTGRES_DB", "testdb")
	t.Setenv("APP_AUTH_JWT_SECRET", testSecret)
	t.Setenv("APP_REDIS_ADDR", "localhost:6379")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 18080, cfg.App.Port)
	assert.Equal(t, 5*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, "testuser", cfg.Postgres.User)
	assert.Equal(t, "testpass", cfg.Postgres.Password)
	assert.Equal(t, "testdb", cfg.Postgres.DBName)
	assert.Equal(t, "127.0.0.1", cfg.Postgres.Host)
	assert.Equal(t, int32(5), cfg.Postgres.MaxConns)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, "/tmp/agency-uploads", cfg.Upload.Dir)
	assert.Equal(t, 4, cfg.Upload.MaxFiles)
	assert.Equal(t, "rfc3339", cfg.Logger.TimeFormat)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearSecrets(t)
	t.Setenv("APP_POSTGRES_USER", "u")
	t.Setenv("APP_POSTGRES_PASSWORD", "p")
	t.Setenv("APP_POSTGRES_DB", "agency")
	t.Setenv("APP_AUTH_JWT_SECRET", testSecret)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxFileSize)
	assert.Equal(t, 10, cfg.Upload.MaxFiles)
	assert.ElementsMatch(t, []string{"image/jpeg", "image/png", "image/webp", "image/gif"}, cfg.Upload.AllowedTypes)
	assert.Equal(t, "/uploads", cfg.Upload.PublicPrefix)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_MissingRequiredEnvFails(t *testing.T) {
	clearSecrets(t)
	path := writeTempConfig(t, "app:\n  port: 18080\n")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_ShortJWTSecretFails(t *testing.T) {
	clearSecrets(t)
	t.Setenv("APP_POSTGRES_USER", "u")
	t.Setenv("APP_POSTGRES_PASSWORD", "p")
	t.Setenv("APP_POSTGRES_DB", "agency")
	t.Setenv("APP_AUTH_JWT_SECRET", "short")

	_, err := config.Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
