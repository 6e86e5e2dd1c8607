package cli

import (
	"os"

	"github.com/spf13/cobra"

	golox "github.com/MuhammadZohaib07/lox-interpreter"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/reporter"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Resolve a program and report static errors, without evaluating it",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	rep := reporter.NewSimpleReporter(os.Stderr, noColor)
	if err := golox.Run(string(content), golox.WithReporter(rep), golox.WithCheckOnly(true)); err != nil {
		os.Exit(65)
		return err
	}
	return nil
}
