package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/conneroisu/devutils/internal/pattern"
)

func newRegexCmd(a *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "regex <action> [format]",
		Short: "Print validating regular expressions",
		Long: `Print a regular expression for a common value, or compile one from a date
or time format.

Date formats combine YYYY, MM and dd (or dd, mmm and yyyy) with a -, / or .
separator, or none. Time formats are hh:mm or hh:mm:ss followed by 12, 24 or
am/pm.

The format comes from --format or the argument after the action. Standard
input is not read and --editor is rejected.

` + actionHelp(pattern.Actions) + `

Examples:
  devutils regex ipv4
  devutils regex date --format dd/MM/YYYY
  devutils regex time "hh:mm am/pm"`,
		Args: contentArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") && len(args) > 1 {
				format = args[1]
			}

			return runFlags(a, cmd, args, pattern.Actions,
				func(ctx context.Context, act pattern.Action, _ string) (string, error) {
					return pattern.Apply(ctx, act, format)
				})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "date or time format to compile")

	return cmd
}
