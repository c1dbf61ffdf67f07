// Command sexpr is the entry point for the reader CLI.
package main

import (
	"os"

	"github.com/venturno/sexpr/cmd"
	"github.com/venturno/sexpr/internal/logging"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logging.Default().Error("command failed", logging.FieldError, err)
		os.Exit(1)
	}
}
