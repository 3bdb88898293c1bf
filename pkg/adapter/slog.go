package adapter

import (
	"context"
	"fmt"
	"log/slog"
)

// Printer is the logging interface older subsystems in this catalog's world
// were written against: one Printf-style method, no levels, no structure.
type Printer interface {
	Printf(format string, args ...any)
}

// SlogPrinter adapts a structured *slog.Logger onto the legacy Printer
// interface, so old call sites keep compiling while their output lands in
// the structured log stream.
type SlogPrinter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogPrinter creates a Printer backed by the given logger at the given
// level. A nil logger falls back to slog.Default().
func NewSlogPrinter(logger *slog.Logger, level slog.Level) *SlogPrinter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogPrinter{logger: logger, level: level}
}

func (p *SlogPrinter) Printf(format string, args ...any) {
	p.logger.Log(context.Background(), p.level, fmt.Sprintf(format, args...))
}
