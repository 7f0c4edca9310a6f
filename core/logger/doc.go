// Package logger provides structured logging utilities built on Go's
// standard slog package: a small factory for text and JSON loggers and a
// set of pre-built attributes for common logging scenarios.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/corekit/core/logger"
//
//	log := logger.New(os.Stderr, logger.WithLevel(slog.LevelDebug))
//
//	log.Info("article loaded",
//		logger.Component("frontmatter"),
//		logger.Count("documents", len(docs)),
//	)
//
// # Attribute Helpers
//
// Attribute helpers use the empty Attr pattern for nil safety, so calls
// like log.Error("failed", logger.Error(err)) need no explicit nil
// checks:
//
//	log.Error("parse failed", logger.Error(err))
//	log.Info("done", logger.Elapsed(start))
package logger
