package logging

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType string

const loggerKey = loggerKeyType("logger")

var rootLogger = zap.NewNop()

// Setup installs the root logger. In debug mode a console encoder writes
// everything from debug level up; otherwise JSON lines from info level up.
func Setup(debug bool) *zap.Logger {
	var (
		encoder zapcore.Encoder
		level   zapcore.Level
	)
	if debug {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		level = zapcore.InfoLevel
	}
	filter := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= level
	})
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), filter)
	rootLogger = zap.New(core)
	rootLogger.Debug("Logging initialized", zap.Bool("debug", debug))
	return rootLogger
}

// Root returns the process-wide logger installed by Setup.
func Root() *zap.Logger {
	return rootLogger
}

// From returns the logger of the current context, if no logger is available, returns the root logger
func From(ctx context.Context) *zap.Logger {
	l := ctx.Value(loggerKey)
	if l == nil {
		return rootLogger
	}
	return l.(*zap.Logger)
}

func SubFrom(ctx context.Context, name string) (*zap.Logger, context.Context) {
	logger := From(ctx).Named(name)
	return logger, Context(ctx, logger)
}

func Context(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = rootLogger
	}
	return context.WithValue(ctx, loggerKey, logger)
}

func FromWithFields(ctx context.Context, fields ...zapcore.Field) (*zap.Logger, context.Context) {
	logger := From(ctx).With(fields...)
	ctx = Context(ctx, logger)
	return logger, ctx
}
