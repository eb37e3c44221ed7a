package middleware

import (
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/logger"
)

// loggingStartKey is used as a key for storing the request start time in context.
type loggingStartKey struct{}

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip suppresses logging for requests where it returns true.
	Skip func(ctx handler.Context) bool

	// Logger receives the records. Nil discards them.
	Logger *slog.Logger

	// LogLevel for completion records. Defaults to slog.LevelInfo.
	LogLevel slog.Level

	// SlowRequestThreshold raises completion records above it to warning
	// level. Defaults to 5s.
	SlowRequestThreshold time.Duration

	// Component, when set, is attached to every record as the component attr.
	Component string
}

// Logging creates a request logging before/after pair with default configuration.
// Register the first handler with Router.Before and the second with Router.After.
// Requests whose route never matches are not completion-logged because after-
// handlers only run for handled requests.
func Logging[C handler.Context]() (before, after handler.HandlerFunc[C]) {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger creates a logging pair that writes to the given logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) (before, after handler.HandlerFunc[C]) {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request logging before/after pair with custom
// configuration.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) (before, after handler.HandlerFunc[C]) {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component != "" {
		cfg.Logger = cfg.Logger.With(logger.Component(cfg.Component))
	}

	before = func(ctx C, res handler.Response) handler.Response {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return res
		}

		ctx.SetValue(loggingStartKey{}, time.Now())

		r := ctx.Request()
		cfg.Logger.LogAttrs(ctx, slog.LevelDebug, "request started",
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
		)
		return res
	}

	after = func(ctx C, res handler.Response) handler.Response {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return res
		}

		// Zero status means the emitter will default to 200 OK.
		status := res.StatusCode()
		if status == 0 {
			status = 200
		}

		r := ctx.Request()
		attrs := []slog.Attr{
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.StatusCode(status),
		}

		level := cfg.LogLevel
		if start, ok := ctx.Value(loggingStartKey{}).(time.Time); ok {
			elapsed := time.Since(start)
			attrs = append(attrs, logger.Latency(elapsed))
			if elapsed >= cfg.SlowRequestThreshold {
				level = slog.LevelWarn
			}
		}
		if id, ok := GetRequestID(ctx); ok {
			attrs = append(attrs, logger.RequestID(id))
		}
		if ip, ok := GetClientIP(ctx); ok {
			attrs = append(attrs, logger.ClientIP(ip))
		}

		cfg.Logger.LogAttrs(ctx, level, "request completed", attrs...)
		return res
	}

	return before, after
}
