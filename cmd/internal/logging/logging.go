package logging

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logging installs the default slog handler and registers the -log-level
// flag. The returned exit func terminates the process, non-zero when any
// error record was logged.
func Logging() (exit func()) {
	var logLevel slog.LevelVar
	flag.TextVar(&logLevel, "log-level", &logLevel, "Set the logging level")

	h := &errorTrackingHandler{
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &logLevel}),
	}

	slog.SetDefault(slog.New(h))
	slog.SetLogLoggerLevel(slog.LevelError)

	return func() {
		if h.sawError.Load() {
			os.Exit(1)
		}
		os.Exit(0)
	}
}

type errorTrackingHandler struct {
	slog.Handler
	sawError atomic.Bool
}

func (h *errorTrackingHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level == slog.LevelError {
		h.sawError.Store(true)
	}
	return h.Handler.Handle(ctx, r)
}
