package cmd

import (
	"github.com/spf13/cobra"

	"github.com/venturno/sexpr/internal/logging"
)

var logLevel string

// rootCmd is the base command; subcommands register themselves onto it
// from their own init functions, following the teacher's cmd/run.go
// pattern.
var rootCmd = &cobra.Command{
	Use:   "sexpr",
	Short: "Read and inspect s-expression source files",
	Long:  `sexpr lexes and parses Lisp-family source text and reports the resulting tree or diagnostics.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetLevel(logLevel)
	},
}

// Execute runs the root command. It is the sole entry point main calls.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}
