// Package cli wires the Language's pipeline into a github.com/spf13/cobra
// command tree: run, tokenize, parse, check, repl, version.
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information, overridden at build time via -ldflags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "golox",
	Short: "An interpreter for the Language, a small Lox-family scripting language",
	Long: `golox lexes, parses, resolves and evaluates programs written in the
Language: a small dynamically-typed, class-based scripting language with
closures, single inheritance, and no bytecode compiler.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
	})
}
