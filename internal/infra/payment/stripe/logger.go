package stripe

import (
	"context"
	"fmt"
	"log/slog"
)

// slogLeveledLogger forwards stripe-go client logs to slog. Request-level chatter is kept at debug.
type slogLeveledLogger struct {
	logger *slog.Logger
}

func (l *slogLeveledLogger) Debugf(format string, v ...any) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *slogLeveledLogger) Infof(format string, v ...any) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *slogLeveledLogger) Warnf(format string, v ...any) {
	l.log(slog.LevelWarn, format, v...)
}

func (l *slogLeveledLogger) Errorf(format string, v ...any) {
	l.log(slog.LevelError, format, v...)
}

func (l *slogLeveledLogger) log(level slog.Level, format string, v ...any) {
	if l.logger == nil {
		return
	}

	l.logger.Log(context.Background(), level, fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}
