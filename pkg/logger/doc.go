// Package logger builds *slog.Logger values for the validate command and
// library.
//
// New takes functional options for the output format (text or JSON), the
// minimum level, the destination, static attributes, and values pulled from
// context.Context on every *Context logging call:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(logger.Component("cli")),
//	)
//	log.Warn("pattern ignored", logger.Pattern(p), logger.Error(err))
//
// ParseFormat and ParseLevel turn configuration strings into option values.
// Discard returns a logger that drops everything; it is the default of every
// component that accepts a logger.
package logger
