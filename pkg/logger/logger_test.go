package logger

import (
	"bytes"
	"testing"

	charm "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestTraceLevelIsBelowDebug(t *testing.T) {
	assert.Less(t, int(TraceLevel), int(charm.DebugLevel))
}

func TestTraceRespectsLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewMoleculeLogger(charm.New(&buf))

	l.SetLevel(charm.InfoLevel)
	l.Trace("hidden")
	assert.Empty(t, buf.String())

	l.SetLevel(TraceLevel)
	l.Trace("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestSetDefaultReplacesGlobalLogger(t *testing.T) {
	original := Default()
	t.Cleanup(func() { SetDefault(original) })

	replacement := New()
	SetDefault(replacement)
	assert.Same(t, replacement, Default())

	SetDefault(nil)
	assert.Same(t, replacement, Default())
}
