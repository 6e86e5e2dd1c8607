// Command golox is the Language's command-line interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/MuhammadZohaib07/lox-interpreter/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
