package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/conneroisu/devutils/internal/percentage"
)

func newPercentageCmd(a *App) *cobra.Command {
	flags := &PercentageFlags{}

	cmd := &cobra.Command{
		Use:     "percentage <action>",
		Aliases: []string{"pct"},
		Short:   "Percentage arithmetic",
		Long: `Work out percentages from flag operands.

  to      --to as a percentage of --from
  of      --percentage percent of --of
  change  the change from --from to --to as a percentage

Operands come from flags only. Standard input is not read and --editor is
rejected.

` + actionHelp(percentage.Actions) + `

Examples:
  devutils percentage to --from 150 --to 50 --precision 2
  devutils pct of --percentage 25 --of 200`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := percentage.Options{Precision: flags.Precision}
			if !cmd.Flags().Changed("precision") {
				opts.Precision = a.Config.Percentage.Precision
			}
			set := func(name string, v *float64) *float64 {
				if cmd.Flags().Changed(name) {
					return v
				}
				return nil
			}
			opts.From = set("from", &flags.From)
			opts.To = set("to", &flags.To)
			opts.Percentage = set("percentage", &flags.Percentage)
			opts.Of = set("of", &flags.Of)

			return runFlags(a, cmd, args, percentage.Actions,
				func(ctx context.Context, act percentage.Action, content string) (string, error) {
					return percentage.Apply(ctx, act, content, opts)
				})
		},
	}

	addPercentageFlags(cmd, flags)
	return cmd
}
