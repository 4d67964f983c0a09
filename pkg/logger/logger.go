// Package logger provides progress logging for the Controller Cleaner application.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes to a writer (stdout by default).
type defaultLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewDefaultLogger creates a new default logger writing to stdout.
func NewDefaultLogger() Logger {
	return &defaultLogger{w: os.Stdout}
}

// NewWriterLogger creates a logger writing to the given writer.
func NewWriterLogger(w io.Writer) Logger {
	return &defaultLogger{w: w}
}

// Logf writes a formatted message with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, format+"\n", args...)
}

// prefixLogger prepends a fixed prefix to every message, used to tag
// pass-scoped progress output.
type prefixLogger struct {
	prefix string
	inner  Logger
}

// NewPrefixLogger wraps a logger so every message is prefixed.
func NewPrefixLogger(prefix string, inner Logger) Logger {
	return &prefixLogger{prefix: prefix, inner: inner}
}

// Logf logs a formatted message with the configured prefix.
func (p *prefixLogger) Logf(format string, args ...interface{}) {
	p.inner.Logf(p.prefix+format, args...)
}
