package bitumen

import (
	"context"
	"log/slog"
)

// discardHandler mirrors slog.DiscardHandler, which requires Go 1.24; it
// discards all log output.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

// ArchiveOption configures Archive and Append.
type ArchiveOption func(*archiveConfig)

type archiveConfig struct {
	logger *slog.Logger
}

// log returns the logger, falling back to a discard logger if nil.
func (c *archiveConfig) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(discardHandler{})
	}
	return c.logger
}

// ArchiveWithLogger enables structured logging of encode progress.
// Per-entry events are logged at Debug level.
func ArchiveWithLogger(logger *slog.Logger) ArchiveOption {
	return func(c *archiveConfig) {
		c.logger = logger
	}
}

// ScanOption configures a Scanner.
type ScanOption func(*scanConfig)

type scanConfig struct {
	logger *slog.Logger
	verify bool
}

// log returns the logger, falling back to a discard logger if nil.
func (c *scanConfig) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(discardHandler{})
	}
	return c.logger
}

// ScanWithLogger enables structured logging of scan progress. Decoded
// entries are logged at Debug level, the stopping anomaly at Error level.
func ScanWithLogger(logger *slog.Logger) ScanOption {
	return func(c *scanConfig) {
		c.logger = logger
	}
}

// ScanWithChecksumVerification controls whether record checksums are
// recomputed and compared during decoding. Verification is on by default;
// disabling it restores magic-only validation for reading streams written
// by encoders that sealed records incorrectly.
func ScanWithChecksumVerification(enabled bool) ScanOption {
	return func(c *scanConfig) {
		c.verify = enabled
	}
}
