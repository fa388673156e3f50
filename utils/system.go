package utils

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/lmittmann/tint"
)

// Logger returns a tint-formatted slog logger writing to stderr and to every
// file in logPaths. Colors are disabled when logging to files.
func Logger(level slog.Level, logPaths ...string) *slog.Logger {
	writers := []io.Writer{os.Stderr}
	for _, log := range logPaths {
		w, err := os.OpenFile(log, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			panic(err)
		}
		writers = append(writers, w)
	}

	return slog.New(tint.NewHandler(io.MultiWriter(writers...), &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    len(logPaths) > 0,
	}))
}

// WithLogger installs a Logger as the actor system logger.
func WithLogger(level slog.Level, logPaths ...string) actor.ConfigOption {
	logger := Logger(level, logPaths...)
	return actor.WithLoggerFactory(func(system *actor.ActorSystem) *slog.Logger {
		return logger.With("system", system.ID)
	})
}
