package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	logpkg "github.com/maxviazov/talent-agency-service/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *logpkg.LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "valid production environment",
			config: &logpkg.LoggerConfig{
				ServiceName: "agency",
				Env:         "prod",
				Level:       "info",
				TimeFormat:  "unix",
				Fields:      map[string]interface{}{"region": "eu"},
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:        "invalid configuration - wrong env",
			config:      &logpkg.LoggerConfig{Env: "wrong-env", Level: "debug"},
			expectError: true,
		},
		{
			name:        "invalid log level",
			config:      &logpkg.LoggerConfig{Env: "prod", Level: "loud"},
			expectError: true,
		},
		{
			name:        "invalid output target",
			config:      &logpkg.LoggerConfig{Env: "prod", Level: "info", OutputTarget: "syslog"},
			expectError: true,
		},
		{
			name:      "staging writes json to stderr",
			config:    &logpkg.LoggerConfig{Env: "staging", Level: "warn", OutputTarget: "stderr", Stacktrace: true},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name:      "dev without debug uses console only",
			config:    &logpkg.LoggerConfig{Env: "dev", Level: "info"},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "dev with json format",
			config:    &logpkg.LoggerConfig{Env: "dev", Level: "error", Format: "json"},
			wantLevel: zerolog.ErrorLevel,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := logpkg.New(test.config)
			if test.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestNew_DefaultsApplied(t *testing.T) {
	cfg := &logpkg.LoggerConfig{}
	_, err := logpkg.New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "talent-agency-service", cfg.ServiceName)
	assert.True(t, cfg.Stacktrace)
	assert.NotNil(t, cfg.Fields)
}

func TestNew_DebugLogFileCreated(t *testing.T) {
	cfg := &logpkg.LoggerConfig{Env: "dev", Level: "debug"}
	_, err := logpkg.New(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = os.Remove(logpkg.DebugLogPath)
		_ = os.Remove(filepath.Dir(logpkg.DebugLogPath))
	})

	_, statErr := os.Stat(logpkg.DebugLogPath)
	assert.NoError(t, statErr)
}
