package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// pgxLogger adapts zerolog.Logger to pgx's tracelog interface.
type pgxLogger struct {
	logger zerolog.Logger
}

func newPgxLogger(logger zerolog.Logger) *pgxLogger {
	l := logger.With().Str("component", "pgx").Logger()
	return &pgxLogger{logger: l}
}

// sensitiveTables never get their bind args logged: password hashes live there.
var sensitiveTables = []string{"admins"}

// Log maps pgx levels to zerolog. SQL text and args only travel at trace level.
func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var event *zerolog.Event

	switch level {
	case tracelog.LogLevelNone:
		return
	case tracelog.LogLevelTrace:
		event = l.logger.Trace()
		sql, _ := data["sql"].(string)
		if sql != "" {
			event = event.Str("sql", sql)
		}
		if args, ok := data["args"]; ok {
			if touchesSensitive(sql) {
				event = event.Str("args", "[redacted]")
			} else {
				event = event.Interface("args", args)
			}
		}
	case tracelog.LogLevelDebug:
		event = l.logger.Debug()
	case tracelog.LogLevelInfo:
		event = l.logger.Info()
	case tracelog.LogLevelWarn:
		event = l.logger.Warn()
	case tracelog.LogLevelError:
		event = l.logger.Error()
	default:
		event = l.logger.Info().Str("pgx_log_level", level.String())
	}

	for k, v := range data {
		if k == "sql" || k == "args" {
			continue
		}
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

func touchesSensitive(sql string) bool {
	lower := strings.ToLower(sql)
	for _, t := range sensitiveTables {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
