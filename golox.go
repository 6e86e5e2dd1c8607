// Package golox is the host-facing embedding surface for the Language's
// lexer/parser/resolver/evaluator pipeline: Run compiles and executes a
// program exactly once, reporting every diagnostic it produces to a
// Reporter rather than writing to a fixed stream or calling os.Exit, so the
// pipeline can be embedded in something other than a CLI.
package golox

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MuhammadZohaib07/lox-interpreter/internal/interp"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/lexer"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/parser"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/reporter"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/resolver"
)

// ErrStaticFailure is returned by Run when lexing, parsing, or resolving
// reported at least one error; the Reporter already received the details.
var ErrStaticFailure = errors.New("golox: static errors, see reporter")

type config struct {
	reporter  reporter.Reporter
	stdout    io.Writer
	stdin     io.Reader
	checkOnly bool
	trace     io.Writer
}

// Option configures a Run invocation.
type Option func(*config)

// WithReporter overrides the default stderr reporter, useful for a host
// that wants diagnostics as data instead of printed text.
func WithReporter(r reporter.Reporter) Option {
	return func(c *config) { c.reporter = r }
}

// WithStdout redirects `print` and the `input` native's prompt text.
func WithStdout(w io.Writer) Option {
	return func(c *config) { c.stdout = w }
}

// WithStdin redirects the `input` native's source of lines.
func WithStdin(r io.Reader) Option {
	return func(c *config) { c.stdin = r }
}

// WithCheckOnly stops Run after resolution, skipping evaluation. Used by
// `golox check`.
func WithCheckOnly(v bool) Option {
	return func(c *config) { c.checkOnly = v }
}

// WithTrace makes Run print each top-level statement's AST to w immediately
// before executing it. Used by `golox run --trace`.
func WithTrace(w io.Writer) Option {
	return func(c *config) { c.trace = w }
}

// Run lexes, parses, resolves, and (unless WithCheckOnly) evaluates source.
// Every diagnostic encountered along the way is sent to the configured
// Reporter. Run returns nil when nothing was reported, ErrStaticFailure after
// a lexical, parse or static error, and the runtime error itself (after
// reporting it) when evaluation fails.
func Run(source string, opts ...Option) error {
	cfg := &config{
		reporter: reporter.NewSimpleReporter(os.Stderr, false),
		stdout:   os.Stdout,
		stdin:    os.Stdin,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	tokens, lexErrs := lexer.New(source).ScanTokens()
	for _, e := range lexErrs {
		cfg.reporter.Report(e)
	}

	stmts, parseErrs := parser.New(tokens).Parse()
	for _, e := range parseErrs {
		cfg.reporter.Report(e)
	}

	if cfg.reporter.HadError() {
		return ErrStaticFailure
	}

	locals, resErrs := resolver.Resolve(stmts)
	for _, e := range resErrs {
		cfg.reporter.Report(e)
	}
	if cfg.reporter.HadError() {
		return ErrStaticFailure
	}

	if cfg.checkOnly {
		return nil
	}

	in := bufio.NewScanner(cfg.stdin)
	it := interp.New(cfg.stdout, func(prompt string) (string, error) {
		fmt.Fprint(cfg.stdout, prompt)
		if !in.Scan() {
			return "", in.Err()
		}
		return in.Text(), nil
	})
	if cfg.trace != nil {
		it.SetTrace(cfg.trace)
	}

	if err := it.Run(stmts, locals); err != nil {
		cfg.reporter.Report(err)
		return err
	}
	return nil
}
