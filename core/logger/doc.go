// Package logger provides structured logging attribute helpers built on Go's
// standard slog package. The helpers produce consistent attribute keys across
// the library and follow the empty-Attr pattern: passing a nil error or an
// empty string yields an attribute slog silently discards, so call sites need
// no guards.
//
// # Usage
//
//	import (
//		"log/slog"
//
//		"github.com/dmitrymomot/lingo/core/logger"
//	)
//
//	log := slog.Default()
//	log.Warn("translation missing",
//		logger.Component("i18n"),
//		logger.Language("ko"),
//		logger.TranslationKey("common.close"),
//	)
//
//	// Nil-safe: logs nothing for the error attribute when err is nil.
//	log.Info("catalog loaded", logger.Error(err), logger.Count("namespaces", 3))
//
// All helpers return plain slog.Attr values and compose with any slog handler.
package logger
