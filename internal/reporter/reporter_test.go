package reporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MuhammadZohaib07/lox-interpreter/internal/interp"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/lexer"
)

func TestReporterTracksStaticVsRuntimeErrors(t *testing.T) {
	var buf bytes.Buffer
	r := NewSimpleReporter(&buf, true)

	r.Report(&lexer.Error{Line: 1, Message: "Unexpected character."})
	assert.True(t, r.HadError())
	assert.False(t, r.HadRuntimeError())

	r.Reset()
	r.Report(&interp.RuntimeError{Line: 2, Message: "Undefined variable 'x'."})
	assert.False(t, r.HadError())
	assert.True(t, r.HadRuntimeError())
	assert.Contains(t, buf.String(), "Undefined variable 'x'.")
}

func TestReporterResetClearsFlags(t *testing.T) {
	var buf bytes.Buffer
	r := NewSimpleReporter(&buf, true)
	r.Report(&lexer.Error{Line: 1, Message: "boom"})
	r.Reset()
	assert.False(t, r.HadError())
	assert.False(t, r.HadRuntimeError())
}
