package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

// CtxKeyRequestID marks the request id value carried through contexts.
var CtxKeyRequestID = ctxKey{}

var global = zap.Must(zap.NewProduction()).Sugar()

// Init replaces the global logger. level is a zap level name ("debug",
// "info", ...); unknown names fall back to info.
func Init(level string) {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	global = zap.Must(cfg.Build(zap.AddCallerSkip(1))).Sugar()
}

// WithRequestID returns a context carrying the request id picked up by every
// log call made with that context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxKeyRequestID, requestID)
}

func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if id, ok := ctx.Value(CtxKeyRequestID).(string); ok && id != "" {
			return global.With("request_id", id)
		}
	}
	return global
}

func Debugf(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Errorf(format, args...)
}

// Fatal logs err and exits. A nil err is ignored so it can wrap server
// shutdown returns directly.
func Fatal(ctx context.Context, err error) {
	if err == nil {
		return
	}
	fromCtx(ctx).Fatal(err.Error())
}

// Sync flushes buffered log entries. Safe to call on shutdown.
func Sync() {
	_ = global.Sync()
}
