// Package logger provides verbose logging for the cardscan CLI.
// When verbose mode is enabled via the --verbose flag or DEBUG, debug
// messages are printed to stderr to help users see which documents and
// tabs a scan visits.
//
// A Logger is created once at process start and passed explicitly to the
// components that log; there is no package-level logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger writes verbose-gated messages to an output writer.
// The zero value is not usable; use New or Nop.
type Logger struct {
	mu      sync.RWMutex
	verbose bool
	output  io.Writer
}

// New creates a logger writing to w. A nil writer defaults to os.Stderr.
func New(w io.Writer, verbose bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{output: w, verbose: verbose}
}

// Nop returns a logger that never writes.
func Nop() *Logger {
	return New(io.Discard, false)
}

// SetVerbose enables or disables verbose logging.
func (l *Logger) SetVerbose(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func (l *Logger) IsVerbose() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.verbose
}

// SetOutput sets the output writer for verbose logs.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// Debug prints a message if verbose mode is enabled.
func (l *Logger) Debug(format string, args ...any) {
	l.printf("[DEBUG] "+format+"\n", args...)
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	l.printf("\n=== %s ===\n", name)
}

// Info prints an informational message if verbose mode is enabled.
func (l *Logger) Info(format string, args ...any) {
	l.printf("[INFO] "+format+"\n", args...)
}

// Warn prints a warning message if verbose mode is enabled.
func (l *Logger) Warn(format string, args ...any) {
	l.printf("[WARN] "+format+"\n", args...)
}

func (l *Logger) printf(format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.verbose {
		fmt.Fprintf(l.output, format, args...)
	}
}
