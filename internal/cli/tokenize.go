package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MuhammadZohaib07/lox-interpreter/internal/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Print the token stream for a program, one token per line",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	tokens, errs := lexer.New(string(content)).ScanTokens()
	for _, tok := range tokens {
		fmt.Println(tok.String())
	}
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(65)
	}
	return nil
}
