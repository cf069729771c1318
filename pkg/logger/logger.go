package logger

import (
	"context"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const loggerKey ctxKey = "logger"

var global = zap.NewNop().Sugar()

// Run builds the application logger with the given level and makes it the
// fallback for contexts that don't carry their own.
func Run(level string) *zap.SugaredLogger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		log.Printf("logger: unknown log level `%s`, using `info`", level)
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	zl, err := cfg.Build()
	if err != nil {
		log.Fatalf("logger: can't build zap logger: %v", err)
	}

	global = zl.Sugar()
	return global
}

func NewContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Log returns the request-scoped logger, or the application logger if the
// context doesn't carry one.
func Log(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(loggerKey).(*zap.SugaredLogger); ok {
		return l
	}
	return global
}
