// Package logger provides verbose logging for the editable CLI.
// Debug, Info and Warn are gated by the --verbose flag; Error always
// reaches the output so that swallowed editor failures stay visible.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level prefixes written before each message.
const (
	levelDebug = "[DEBUG] "
	levelInfo  = "[INFO] "
	levelWarn  = "[WARN] "
	levelError = "[ERROR] "
)

var (
	mu      sync.Mutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. The TUI redirects it while the alternate
// screen is active.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Output returns the current log writer.
func Output() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return output
}

func write(always bool, prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if always || verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write(false, levelDebug, format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write(false, levelInfo, format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write(false, levelWarn, format, args...)
}

// Error prints a message regardless of verbose mode.
func Error(format string, args ...any) {
	write(true, levelError, format, args...)
}
