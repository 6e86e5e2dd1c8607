package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MuhammadZohaib07/lox-interpreter/internal/interp"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/lexer"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/parser"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/reporter"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/resolver"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive line-oriented session",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runRepl mirrors the reference interpreter's run_prompt: one Interpreter
// persists across lines so that a `var` or `fun` declared on one line is
// visible on the next, and a failing line never kills the session.
func runRepl(_ *cobra.Command, _ []string) error {
	prompt := color.New(color.FgCyan).Sprint("golox> ")
	rep := reporter.NewSimpleReporter(os.Stderr, noColor)

	in := bufio.NewScanner(os.Stdin)
	it := interp.New(os.Stdout, func(p string) (string, error) {
		fmt.Fprint(os.Stdout, p)
		if !in.Scan() {
			return "", in.Err()
		}
		return in.Text(), nil
	})

	for {
		fmt.Print(prompt)
		if !in.Scan() {
			break
		}
		line := in.Text()
		if line == "" {
			continue
		}

		rep.Reset()
		evalLine(line, it, rep)
	}
	return in.Err()
}

func evalLine(line string, it *interp.Interpreter, rep reporter.Reporter) {
	tokens, lexErrs := lexer.New(line).ScanTokens()
	for _, e := range lexErrs {
		rep.Report(e)
	}
	if rep.HadError() {
		return
	}

	stmts, parseErrs := parser.New(tokens).Parse()
	for _, e := range parseErrs {
		rep.Report(e)
	}
	if rep.HadError() {
		return
	}

	locals, resErrs := resolver.Resolve(stmts)
	for _, e := range resErrs {
		rep.Report(e)
	}
	if rep.HadError() {
		return
	}

	if err := it.Run(stmts, locals); err != nil {
		rep.Report(err)
	}
}
