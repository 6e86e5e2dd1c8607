package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	golox "github.com/MuhammadZohaib07/lox-interpreter"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/reporter"
)

var (
	evalExpr string
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Lex, parse, resolve and evaluate a program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print each top-level statement's AST before executing it")
}

func runRun(_ *cobra.Command, args []string) error {
	source, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	rep := reporter.NewSimpleReporter(os.Stderr, noColor)
	opts := []golox.Option{
		golox.WithReporter(rep),
		golox.WithStdout(os.Stdout),
		golox.WithStdin(os.Stdin),
	}
	if trace {
		opts = append(opts, golox.WithTrace(os.Stdout))
	}

	if err := golox.Run(source, opts...); err != nil {
		switch {
		case rep.HadRuntimeError():
			os.Exit(70)
		case rep.HadError():
			os.Exit(65)
		}
		return err
	}
	return nil
}

func readSource(eval string, args []string) (string, error) {
	if eval != "" {
		return eval, nil
	}
	if len(args) != 1 {
		return "", fmt.Errorf("expected exactly one file argument, or -e/--eval")
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(content), nil
}
