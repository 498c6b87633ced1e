// Package logger builds *slog.Logger values from functional options and
// provides attribute constructors that keep key names consistent across the
// module.
//
// New selects a JSON or text handler, applies the minimum level and static
// attributes and, when ContextExtractor callbacks are registered, wraps the
// handler so that values stored in a context.Context are added to every
// record logged with that context.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithAttr(logger.Component("docmodel")),
//	)
//	log.Debug("validation finished",
//	    logger.Model("post"),
//	    logger.Failures(report.Len()),
//	)
//
// Level and format strings coming from configuration are converted with
// ParseLevel and ParseFormat. Discard returns a logger for components that
// were not given one.
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors:
//
//	log.Info("operation finished", logger.Error(err))
package logger
