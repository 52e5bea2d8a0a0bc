package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output, for handing to
// services and controllers under test.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
