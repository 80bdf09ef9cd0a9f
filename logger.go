package lotto

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogger implements Logger on top of logrus
type DefaultLogger struct {
	entry *logrus.Entry
}

// NewDefaultLogger creates a logrus backed logger writing to stderr at level
func NewDefaultLogger(level string) *DefaultLogger {
	return NewDefaultLoggerWithOutput(os.Stderr, level)
}

// NewDefaultLoggerWithOutput creates a logrus backed logger writing to w
func NewDefaultLoggerWithOutput(w io.Writer, level string) *DefaultLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return &DefaultLogger{entry: logrus.NewEntry(l).WithField("component", "lotto")}
}

// Info logs an info message
func (l *DefaultLogger) Info(msg string, args ...any) { l.entry.Infof(msg, args...) }

// Error logs an error message
func (l *DefaultLogger) Error(msg string, args ...any) { l.entry.Errorf(msg, args...) }

// Debug logs a debug message
func (l *DefaultLogger) Debug(msg string, args ...any) { l.entry.Debugf(msg, args...) }

// ZapLogger adapts a zap SugaredLogger to Logger
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps an existing zap logger
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: logger.Sugar().With("component", "lotto")}
}

// NewZapProductionLogger builds a JSON zap logger at level
func NewZapProductionLogger(level string) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return NewZapLogger(logger), nil
}

// Info logs an info message
func (l *ZapLogger) Info(msg string, args ...any) { l.sugar.Infof(msg, args...) }

// Error logs an error message
func (l *ZapLogger) Error(msg string, args ...any) { l.sugar.Errorf(msg, args...) }

// Debug logs a debug message
func (l *ZapLogger) Debug(msg string, args ...any) { l.sugar.Debugf(msg, args...) }

// Sync flushes buffered entries
func (l *ZapLogger) Sync() error { return l.sugar.Sync() }

// NewLoggerFromConfig picks the backend named in cfg
func NewLoggerFromConfig(cfg *LoggingConfig) (Logger, error) {
	if cfg == nil {
		cfg = DefaultLoggingConfig()
	}

	switch strings.ToLower(cfg.Backend) {
	case "", "logrus":
		return NewDefaultLogger(cfg.Level), nil
	case "zap":
		return NewZapProductionLogger(cfg.Level)
	case "silent":
		return NewSilentLogger(), nil
	default:
		return nil, ErrConfigInvalid.WithDetails("unknown logging backend " + cfg.Backend)
	}
}

// SilentLogger implements Logger interface but does not output any logs
// This is useful for testing environments where log output is not desired
type SilentLogger struct{}

// NewSilentLogger creates a new silent logger instance
func NewSilentLogger() *SilentLogger {
	return &SilentLogger{}
}

// Info does nothing (silent)
func (l *SilentLogger) Info(msg string, args ...any) {}

// Error does nothing (silent)
func (l *SilentLogger) Error(msg string, args ...any) {}

// Debug does nothing (silent)
func (l *SilentLogger) Debug(msg string, args ...any) {}
