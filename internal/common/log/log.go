// Package log is a thin context-aware facade over zap. Fields attached to a
// context via WithFields are emitted with every entry logged under that
// context, which keeps per-sync-run correlation ids out of call signatures.
package log

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

func String(key, value string) Field          { return zap.String(key, value) }
func Int(key string, value int) Field         { return zap.Int(key, value) }
func Bool(key string, value bool) Field       { return zap.Bool(key, value) }
func Any(key string, value interface{}) Field { return zap.Any(key, value) }
func Err(err error) Field                     { return zap.Error(err) }

type ctxKey struct{}

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

type Option func(*options)

type options struct {
	level   zapcore.Level
	console bool
}

func WithLevel(level string) Option {
	return func(o *options) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

// WithConsole switches to the human-readable encoder, used on local env.
func WithConsole() Option {
	return func(o *options) { o.console = true }
}

func Init(name string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(o)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if o.console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), o.level)

	mu.Lock()
	logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Named(name)
	mu.Unlock()
}

// WithFields returns a context carrying fields that will be appended to every
// log entry written with that context.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	return context.WithValue(ctx, ctxKey{}, append(fromContext(ctx), fields...))
}

func fromContext(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(ctxKey{}).([]Field)
	return fields
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	get().Debug(msg, append(fromContext(ctx), fields...)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	get().Info(msg, append(fromContext(ctx), fields...)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	get().Warn(msg, append(fromContext(ctx), fields...)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	get().Error(msg, append(fromContext(ctx), fields...)...)
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	get().Fatal(fmt.Sprintf(format, args...), fromContext(ctx)...)
}

func Sync() {
	_ = get().Sync()
}
