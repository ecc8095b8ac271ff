package logger

import (
	charm "github.com/charmbracelet/log"
)

// TraceLevel is one step more verbose than charm's DebugLevel.
const TraceLevel = charm.DebugLevel - 1

// MoleculeLogger wraps a charmbracelet logger and adds a Trace level.
type MoleculeLogger struct {
	*charm.Logger
}

// NewMoleculeLogger wraps the provided charm logger.
func NewMoleculeLogger(l *charm.Logger) *MoleculeLogger {
	return &MoleculeLogger{Logger: l}
}

// Trace logs a message at trace level.
func (l *MoleculeLogger) Trace(msg any, keyvals ...any) {
	l.Logger.Log(TraceLevel, msg, keyvals...)
}
