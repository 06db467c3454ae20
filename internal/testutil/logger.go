// Package testutil holds small helpers shared by tests.
package testutil

import (
	"io"
	"log/slog"

	"github.com/VistorGiese/accounts-service/internal/logger"
)

// NoopLogger returns a logger that discards everything.
func NoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}
