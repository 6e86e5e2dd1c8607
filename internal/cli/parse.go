package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MuhammadZohaib07/lox-interpreter/internal/ast"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/lexer"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the parenthesized AST for a program without evaluating it",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	tokens, lexErrs := lexer.New(string(content)).ScanTokens()
	for _, e := range lexErrs {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	if len(lexErrs) > 0 {
		os.Exit(65)
	}

	stmts, parseErrs := parser.New(tokens).Parse()
	for _, e := range parseErrs {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	if len(parseErrs) > 0 {
		os.Exit(65)
	}

	for _, s := range stmts {
		fmt.Println(ast.PrintStmt(s))
	}
	return nil
}
