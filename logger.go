package magicenv

import (
	"log/slog"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger receives policy messages when an action is ActionWarn.
type Logger func(args ...string)

// DefaultLogger writes messages at warning level through slog.Default.
func DefaultLogger(args ...string) {
	slog.Default().Warn(strings.Join(args, " "))
}

// SlogLogger returns a Logger writing to l at warning level.
// A nil l falls back to slog.Default at call time.
func SlogLogger(l *slog.Logger) Logger {
	return func(args ...string) {
		log := l
		if log == nil {
			log = slog.Default()
		}
		log.Warn(strings.Join(args, " "), slog.String("component", "magicenv"))
	}
}

// LogrusLogger returns a Logger writing to l at warning level.
func LogrusLogger(l logrus.FieldLogger) Logger {
	return func(args ...string) {
		l.WithField("component", "magicenv").Warn(strings.Join(args, " "))
	}
}
