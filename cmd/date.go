package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conneroisu/devutils/internal/date"
)

func newDateCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "date <action> [content]",
		Short: "Shift today's date",
		Long: `Print today's date (UTC) shifted by a delta of days (d), months (m) or
years (y). Month steps stop at the end of a shorter month.

` + actionHelp(date.Actions) + `

Examples:
  devutils date delta 10d
  devutils date delta -- -1m`,
		Args: contentArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContent(a, cmd, args, date.Actions, date.Apply)
		},
	}
}
