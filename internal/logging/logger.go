package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

const RequestIDKey = "request_id"

type Logger struct {
	*slog.Logger
}

type Options struct {
	Level string
	JSON  bool
}

func BuildLogger(opts Options) *Logger {
	return buildLogger(os.Stdout, opts)
}

func buildLogger(w io.Writer, opts Options) *Logger {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return &Logger{Logger: slog.New(handler)}
}

// FromCtx returns the request scoped logger stored by the server middleware, or base tagged with
// the request path when there is none.
func FromCtx(ctx *gin.Context, base *Logger) *Logger {
	if l, ok := ctx.Get(loggerCtxKey); ok {
		if logger, ok := l.(*Logger); ok {
			return logger
		}
	}
	return &Logger{Logger: base.With("path", ctx.Request.URL.Path)}
}

const loggerCtxKey = "artdisrupt.logger"

// BindToCtx stores a logger tagged with the request path and id in ctx.
func BindToCtx(ctx *gin.Context, base *Logger, requestID string) *Logger {
	logger := &Logger{Logger: base.With("path", ctx.Request.URL.Path, RequestIDKey, requestID)}
	ctx.Set(loggerCtxKey, logger)
	return logger
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
