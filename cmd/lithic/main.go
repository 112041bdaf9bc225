// Package main provides the entry point for the lithic CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harborgrid-justin/lithic/cmd/lithic/commands"
	"github.com/harborgrid-justin/lithic/pkg/version"
)

func main() {
	rootCmd := commands.NewRootCommand()

	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		// No-change and missing-argument outcomes exit 1 without an
		// error line; the report or usage was already printed.
		if errors.Is(err, commands.ErrNoChange) || errors.Is(err, commands.ErrNoFileArgument) {
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "lithic %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
