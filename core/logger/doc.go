// Package logger builds slog loggers from functional options: environment
// presets, formatter and level overrides, fixed attributes, and automatic
// extraction of request-scoped values from contexts. It also ships a set of
// attribute helpers with consistent keys and nil-safe zero handling.
//
// # Building a Logger
//
// New returns a ready *slog.Logger. Without options it writes text at info
// level to stdout. The environment presets bundle the usual choices:
//
//	log := logger.New(logger.WithDevelopment("myapp")) // text, debug level
//	log := logger.New(logger.WithProduction("myapp"))  // JSON, info level
//
// Presets attach app and env attributes to every record, so downstream
// aggregation can tell deployments apart. Individual options refine or
// override a preset; later options win:
//
//	log := logger.New(
//		logger.WithProduction("myapp"),
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithOutput(logFile),
//		logger.WithAttr(slog.String("region", "eu-west-1")),
//	)
//
// # Context Attributes
//
// WithContextValue teaches the logger to pull a context value onto every
// record logged with a *Context method. Requests stamped with an identifier
// then carry it through all their log lines without threading it manually:
//
//	log := logger.New(
//		logger.WithProduction("myapp"),
//		logger.WithContextValue("request_id", ridKey{}),
//	)
//
//	ctx := context.WithValue(r.Context(), ridKey{}, rid)
//	log.InfoContext(ctx, "order placed") // includes request_id=...
//
// WithContextExtractors accepts arbitrary extraction functions for values
// that need transformation before logging.
//
// # Attributes
//
// The helpers pin conventional keys so records stay greppable across
// packages. Helpers with meaningless zero inputs return the zero slog.Attr,
// which handlers drop:
//
//	log.Error("request failed",
//		logger.Error(err),         // skipped when err is nil
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.StatusCode(status),
//		logger.Latency(elapsed),
//		logger.RequestID(rid),     // skipped when rid is empty
//	)
//
// Group and Errors aggregate related values:
//
//	log.Error("batch partially failed",
//		logger.Errors(err1, err2, err3),
//		logger.Group("batch",
//			logger.ID("job_id", jobID),
//			logger.Component("importer"),
//		),
//	)
//
// Stack and Caller capture debugging context when handling panics or
// unexpected states.
package logger
