package core

import "context"

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger_options"
)

// Options configures composition constructors.
type Options struct {
	// Logger receives diagnostic tracing. Nil means Discard.
	Logger Logger
}

func (o Options) Log() Logger {
	if o.Logger == nil {
		return Discard()
	}
	return o.Logger
}

func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

// LoggerFrom returns the logger stored by WithLogger, or Discard.
func LoggerFrom(ctx context.Context) Logger {
	if ctx == nil {
		return Discard()
	}
	logger, ok := ctx.Value(LoggerOptionKey).(Logger)
	if ok && logger != nil {
		return logger
	}
	return Discard()
}
