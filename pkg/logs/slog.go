package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	defaultLogger *Logger
	mu            sync.RWMutex
)

// LogLevel defines the log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a LOG_LEVEL value to a LogLevel, falling back to info.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger wraps slog functionality
type Logger struct {
	slogger *slog.Logger
}

// LogOption configures a Logger built by New.
type LogOption func(*logConfig)

type logConfig struct {
	level      LogLevel
	output     io.Writer
	addSource  bool
	jsonFormat bool
	service    string
}

func WithLevel(level LogLevel) LogOption {
	return func(c *logConfig) {
		c.level = level
	}
}

func WithOutput(w io.Writer) LogOption {
	return func(c *logConfig) {
		c.output = w
	}
}

func WithSource() LogOption {
	return func(c *logConfig) {
		c.addSource = true
	}
}

func WithJSONFormat(enabled bool) LogOption {
	return func(c *logConfig) {
		c.jsonFormat = enabled
	}
}

// WithService stamps every record with a "service" attribute.
func WithService(name string) LogOption {
	return func(c *logConfig) {
		c.service = name
	}
}

// New creates a new configured logger. JSON to stdout at info level unless overridden.
func New(opts ...LogOption) *Logger {
	config := &logConfig{
		level:      LevelInfo,
		output:     os.Stdout,
		jsonFormat: true,
	}

	for _, opt := range opts {
		opt(config)
	}

	handlerOptions := &slog.HandlerOptions{
		Level:     config.level.slogLevel(),
		AddSource: config.addSource,
	}

	var handler slog.Handler
	if config.jsonFormat {
		handler = slog.NewJSONHandler(config.output, handlerOptions)
	} else {
		handler = slog.NewTextHandler(config.output, handlerOptions)
	}

	logger := slog.New(handler)
	if config.service != "" {
		logger = logger.With("service", config.service)
	}

	return &Logger{slogger: logger}
}

// Default returns the process logger, creating it on first use.
func Default() *Logger {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New()
	}
	return defaultLogger
}

// SetDefault replaces the process logger.
func SetDefault(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}

func (l *Logger) Debug(msg string, args ...any) {
	l.slogger.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.slogger.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.slogger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.slogger.Error(msg, args...)
}

// Enabled reports whether records at level would be emitted.
func (l *Logger) Enabled(ctx context.Context, level LogLevel) bool {
	return l.slogger.Enabled(ctx, level.slogLevel())
}

// With returns a logger with the given attributes
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slogger: l.slogger.With(args...)}
}

// Slog exposes the underlying *slog.Logger for libraries that accept one.
func (l *Logger) Slog() *slog.Logger {
	return l.slogger
}

// Package-level shortcuts that use the default logger

func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Default().Error(msg, args...)
}

func With(args ...any) *Logger {
	return Default().With(args...)
}
