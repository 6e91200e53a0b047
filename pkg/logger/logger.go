// Package logger provides logging functionality for the model analyzer.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

//go:generate mockgen -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
	// Warnf logs a formatted message about a recoverable failure.
	Warnf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Warnf does nothing for noop logger.
func (n *noopLogger) Warnf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes plain lines.
type defaultLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewDefaultLogger creates a new default logger writing to stdout.
func NewDefaultLogger() Logger {
	return newDefaultLogger(os.Stdout)
}

func newDefaultLogger(w io.Writer) *defaultLogger {
	return &defaultLogger{w: w}
}

// Logf writes a formatted message with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, format+"\n", args...)
}

// Warnf writes a formatted message prefixed as a warning.
func (d *defaultLogger) Warnf(format string, args ...interface{}) {
	d.Logf("WARNING: "+format, args...)
}

// verboseLogger writes leveled, timestamped lines to stderr.
type verboseLogger struct {
	l *log.Logger
}

// NewVerboseLogger creates a logger used with --verbose.
func NewVerboseLogger() Logger {
	return newVerboseLogger(os.Stderr)
}

func newVerboseLogger(w io.Writer) *verboseLogger {
	return &verboseLogger{
		l: log.NewWithOptions(w, log.Options{
			Prefix:          "ma",
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			Level:           log.DebugLevel,
		}),
	}
}

// Logf logs at info level.
func (v *verboseLogger) Logf(format string, args ...interface{}) {
	v.l.Infof(format, args...)
}

// Warnf logs at warn level.
func (v *verboseLogger) Warnf(format string, args ...interface{}) {
	v.l.Warnf(format, args...)
}
