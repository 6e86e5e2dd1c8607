// Package reporter separates diagnostic production (lexer/parser/resolver
// errors, runtime errors) from how those diagnostics are displayed, so the
// CLI and REPL can swap in different renderers without touching the
// pipeline that produces the errors.
package reporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/MuhammadZohaib07/lox-interpreter/internal/interp"
)

// Reporter receives errors as the pipeline produces them and tracks whether
// a static error or a runtime error has been seen, so the caller can choose
// the right process exit code (65 for static, 70 for runtime).
type Reporter interface {
	Report(err error)
	Reset()
	HadError() bool
	HadRuntimeError() bool
}

// SimpleReporter writes each error on its own line to an io.Writer,
// colorizing runtime errors apart from static ones when color is enabled.
type SimpleReporter struct {
	out           io.Writer
	noColor       bool
	hadErr        bool
	hadRuntimeErr bool
}

// NewSimpleReporter returns a Reporter that writes to out. When noColor is
// true, output is plain text regardless of whether out is a terminal.
func NewSimpleReporter(out io.Writer, noColor bool) *SimpleReporter {
	return &SimpleReporter{out: out, noColor: noColor}
}

func (r *SimpleReporter) Report(err error) {
	if _, ok := err.(*interp.RuntimeError); ok {
		r.hadRuntimeErr = true
		r.printf(color.FgRed, "%s", err.Error())
		return
	}
	r.hadErr = true
	r.printf(color.FgYellow, "%s", err.Error())
}

func (r *SimpleReporter) printf(attr color.Attribute, format string, args ...any) {
	if r.noColor {
		fmt.Fprintf(r.out, format+"\n", args...)
		return
	}
	c := color.New(attr)
	c.Fprintf(r.out, format+"\n", args...)
}

func (r *SimpleReporter) Reset() {
	r.hadErr = false
	r.hadRuntimeErr = false
}

func (r *SimpleReporter) HadError() bool        { return r.hadErr }
func (r *SimpleReporter) HadRuntimeError() bool { return r.hadRuntimeErr }
