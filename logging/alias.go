package logging

import (
	"log/slog"
)

// Constants for log levels (aliases from slog).
const (
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
	LevelDebug = slog.LevelDebug
)

// Type aliases for slog types.
type (
	Logger         = slog.Logger
	Attr           = slog.Attr
	Level          = slog.Level
	Handler        = slog.Handler
	HandlerOptions = slog.HandlerOptions
)

// Handler constructors and attribute helpers (aliases from slog).
var (
	NewTextHandler = slog.NewTextHandler
	NewJSONHandler = slog.NewJSONHandler
	New            = slog.New
	SetDefault     = slog.SetDefault

	StringAttr = slog.String
	IntAttr    = slog.Int
)

// ErrAttr creates an error attribute. Handles nil errors.
func ErrAttr(err error) Attr {
	if err == nil {
		return slog.String("error", "error is nil")
	}
	return slog.String("error", err.Error())
}
