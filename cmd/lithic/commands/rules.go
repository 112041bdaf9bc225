package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/harborgrid-justin/lithic/internal/hooks"
)

// NewRulesCommand creates the rules command, listing the live rule set.
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the import patch rules",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()

			ruleSet := hooks.ImportRules()

			fmt.Fprintf(out, "Guard symbol: %s (no rule runs when present)\n", ruleSet.Guard)

			tw := table.NewWriter()
			tw.SetOutputMirror(out)
			tw.AppendHeader(table.Row{"Name", "Pattern", "Replacement"})

			for _, rule := range ruleSet.Rules {
				tw.AppendRow(table.Row{rule.Name, rule.Pattern.String(), rule.Replacement})
			}

			tw.Render()
		},
	}
}
