// Package cmd implements the sqlfront CLI demo: parse a .sql file and
// re-emit it as canonical SQL, optionally against a named dialect.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "sqlfront",
	Short:        "sqlfront",
	SilenceUsage: true,
	Long:         `Parses SQL files and re-emits canonical SQL. Demo driver over the sqlfront library.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
