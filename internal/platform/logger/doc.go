// Package logger configures the process-wide slog logger and provides the
// context plumbing used to carry a request-scoped logger through handlers
// and stores.
package logger
