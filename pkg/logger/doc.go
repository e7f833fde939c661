// Package logger is a thin factory around log/slog with attribute helpers
// that keep key names consistent across the throttle packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithComponent("crawler"),
//	)
//	logger.SetAsDefault(log)
//
//	log.Info("task dispatched",
//	    logger.TaskID(id),
//	    logger.Queued(q.Len()),
//	)
//
// Helpers such as Error and TaskID return an empty slog.Attr for zero
// inputs, which slog omits, so callers need no nil checks.
package logger
