package logger

import (
	"os"
	"sync/atomic"

	charm "github.com/charmbracelet/log"
)

// defaultLogger holds the process-wide logger. Swapped atomically so callers
// never need a lock to log.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(NewMoleculeLogger(charm.Default()))
}

// Default returns the process-wide logger.
func Default() *MoleculeLogger {
	return defaultLogger.Load().(*MoleculeLogger)
}

// SetDefault replaces the process-wide logger. Nil is ignored.
func SetDefault(logger *MoleculeLogger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// New returns a logger writing to stderr.
func New() *MoleculeLogger {
	return NewMoleculeLogger(charm.New(os.Stderr))
}

// SetLevel adjusts the verbosity of the process-wide logger.
func SetLevel(level charm.Level) {
	Default().SetLevel(level)
}

// Trace logs through the process-wide logger at trace level.
func Trace(msg any, keyvals ...any) {
	Default().Trace(msg, keyvals...)
}

// Debug logs through the process-wide logger at debug level.
func Debug(msg any, keyvals ...any) {
	Default().Debug(msg, keyvals...)
}

// Info logs through the process-wide logger at info level.
func Info(msg any, keyvals ...any) {
	Default().Info(msg, keyvals...)
}

// Warn logs through the process-wide logger at warn level.
func Warn(msg any, keyvals ...any) {
	Default().Warn(msg, keyvals...)
}

// Error logs through the process-wide logger at error level.
func Error(msg any, keyvals ...any) {
	Default().Error(msg, keyvals...)
}
