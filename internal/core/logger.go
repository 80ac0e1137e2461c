package core

import "context"

// Logger is the slice of *slog.Logger the ledger needs.
type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// NopLogger discards everything. Handy in tests.
type NopLogger struct{}

func (NopLogger) InfoContext(context.Context, string, ...any)  {}
func (NopLogger) ErrorContext(context.Context, string, ...any) {}
