package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/version"
)

// New returns the notifier's zerolog.Logger. Development gets a human-friendly console
// writer at debug level; every other environment logs JSON at info level.
func New(appEnv string) zerolog.Logger {
	return newWithWriter(appEnv, os.Stdout)
}

func newWithWriter(appEnv string, out io.Writer) zerolog.Logger {
	env := strings.ToLower(strings.TrimSpace(appEnv))
	isDev := env == "development" || env == "dev"
	base := zerolog.New(out).Level(zerolog.InfoLevel)
	if isDev {
		cw := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = out
			w.TimeFormat = "2006-01-02 15:04:05"
		})
		base = zerolog.New(cw).Level(zerolog.DebugLevel)
	}
	return base.With().
		Timestamp().
		Str("service", "notifier").
		Str("version", version.String()).
		Logger()
}

// Nop returns a disabled logger, useful for tests.
func Nop() zerolog.Logger {
	return zerolog.New(io.Discard)
}
