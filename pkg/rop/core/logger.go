package core

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger is the leveled sink the rop packages write diagnostics to.
type Logger interface {
	Debug(msg string, fields ...slog.Attr)
	Info(msg string, fields ...slog.Attr)
	Warn(msg string, fields ...slog.Attr)
	Error(msg string, fields ...slog.Attr)
}

const (
	LevelDebug slog.Level = slog.LevelDebug
	LevelInfo  slog.Level = slog.LevelInfo
	LevelWarn  slog.Level = slog.LevelWarn
	LevelError slog.Level = slog.LevelError
)

var (
	Int      = slog.Int
	Any      = slog.Any
	String   = slog.String
	Duration = slog.Duration
)

func Err(e error) slog.Attr {
	return slog.Any("error", e)
}

func Code(code string) slog.Attr {
	return slog.String("code", code)
}

func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

func Delay(d time.Duration) slog.Attr {
	return slog.Duration("delay", d)
}

// SlogLogger adapts a *slog.Logger to Logger.
type SlogLogger struct {
	s *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

func NewText(level slog.Level) *SlogLogger {
	return NewTextTo(os.Stdout, level)
}

func NewTextTo(w io.Writer, level slog.Level) *SlogLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &SlogLogger{s: slog.New(handler)}
}

func NewJSON(level slog.Level) *SlogLogger {
	return NewJSONTo(os.Stdout, level)
}

func NewJSONTo(w io.Writer, level slog.Level) *SlogLogger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &SlogLogger{s: slog.New(handler)}
}

func FromSlog(s *slog.Logger) *SlogLogger {
	return &SlogLogger{s: s}
}

var discard = &SlogLogger{s: slog.New(slog.DiscardHandler)}

// Discard drops everything.
func Discard() Logger {
	return discard
}

func (l *SlogLogger) With(args ...any) *SlogLogger {
	return &SlogLogger{s: l.s.With(args...)}
}

func (l *SlogLogger) Debug(msg string, fields ...slog.Attr) {
	l.s.LogAttrs(context.Background(), slog.LevelDebug, msg, fields...)
}

func (l *SlogLogger) Info(msg string, fields ...slog.Attr) {
	l.s.LogAttrs(context.Background(), slog.LevelInfo, msg, fields...)
}

func (l *SlogLogger) Warn(msg string, fields ...slog.Attr) {
	l.s.LogAttrs(context.Background(), slog.LevelWarn, msg, fields...)
}

func (l *SlogLogger) Error(msg string, fields ...slog.Attr) {
	l.s.LogAttrs(context.Background(), slog.LevelError, msg, fields...)
}
