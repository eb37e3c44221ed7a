package logger

import (
	"log/slog"
	"runtime"
	"strconv"
	"time"
)

// Helpers that would log garbage for their zero input (nil error, empty id)
// return the zero slog.Attr instead, which handlers drop silently. That keeps
// call sites free of conditionals: log.Error("failed", logger.Error(err)) is
// safe whether or not err is nil.

// Group nests attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records a single error under "error". Nil yields the zero Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors records several errors as a group under "errors", keyed by their
// position in the argument list. Nil entries are skipped; if nothing
// remains, the zero Attr is returned.
func Errors(errs ...error) slog.Attr {
	var as []slog.Attr
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Duration records a duration under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Latency records a duration under "latency", the conventional key for
// request handling time.
func Latency(d time.Duration) slog.Attr {
	return slog.Duration("latency", d)
}

// Elapsed records the time since start under "elapsed".
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// ID records an identifier under a caller-chosen key. Nil yields the zero Attr.
func ID(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

// RequestID records a request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// TraceID records a distributed-tracing identifier under "trace_id".
func TraceID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("trace_id", id)
}

// Method records an HTTP method.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path records a URL path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode records an HTTP status code.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// ClientIP records the originating client address.
func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

// UserAgent records the client's User-Agent string.
func UserAgent(ua string) slog.Attr {
	return slog.String("user_agent", ua)
}

// Component names the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names a discrete occurrence within a component.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Stack captures the current goroutine's stack trace under "stack".
func Stack() slog.Attr {
	buf := make([]byte, 64<<10)
	buf = buf[:runtime.Stack(buf, false)]
	return slog.String("stack", string(buf))
}

// Caller records the file:line of the calling function under "caller".
func Caller() slog.Attr {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return slog.Attr{}
	}
	return slog.String("caller", file+":"+strconv.Itoa(line))
}
