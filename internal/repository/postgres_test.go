package repository

import (
	"bytes"
	"context"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/maxviazov/talent-agency-service/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDSN_EscapesCredentials(t *testing.T) {
	dsn := DSN(config.PostgresConfig{
		Host: "db", Port: 5433, User: "agency", Password: "p@ss/word", DBName: "agency", SSLMode: "disable",
	})
	assert.Equal(t, "postgres://agency:p%40ss%2Fword@db:5433/agency?sslmode=disable", dsn)
}

func TestTraceLevel(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelTrace, traceLevel(zerolog.TraceLevel))
	assert.Equal(t, tracelog.LogLevelDebug, traceLevel(zerolog.DebugLevel))
	assert.Equal(t, tracelog.LogLevelInfo, traceLevel(zerolog.InfoLevel))
	assert.Equal(t, tracelog.LogLevelWarn, traceLevel(zerolog.WarnLevel))
	assert.Equal(t, tracelog.LogLevelError, traceLevel(zerolog.ErrorLevel))
}

func TestPgxLogger_RedactsAdminArgs(t *testing.T) {
	var buf bytes.Buffer
	l := newPgxLogger(zerolog.New(&buf).Level(zerolog.TraceLevel))

	l.Log(context.Background(), tracelog.LogLevelTrace, "Query", map[string]any{
		"sql":  "INSERT INTO admins (id, email, password_hash) VALUES ($1, $2, $3)",
		"args": []any{"id", "a@b.c", "$2a$10$hash"},
	})
	assert.Contains(t, buf.String(), `"args":"[redacted]"`)
	assert.NotContains(t, buf.String(), "$2a$10$hash")

	buf.Reset()
	l.Log(context.Background(), tracelog.LogLevelTrace, "Query", map[string]any{
		"sql":  "SELECT id FROM models WHERE slug = $1",
		"args": []any{"jane-doe"},
	})
	assert.Contains(t, buf.String(), "jane-doe")
	assert.Contains(t, buf.String(), `"component":"pgx"`)
}

func TestPgxLogger_NoneIsSilent(t *testing.T) {
	var buf bytes.Buffer
	l := newPgxLogger(zerolog.New(&buf))
	l.Log(context.Background(), tracelog.LogLevelNone, "ignored", nil)
	assert.Zero(t, buf.Len())
}
