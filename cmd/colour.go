package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conneroisu/devutils/internal/colour"
)

func newColourCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "colour <action> [content]",
		Aliases: []string{"color"},
		Short:   "Convert CSS colours",
		Long: `Convert colours between hex, rgb() and hsl() notation.

` + actionHelp(colour.Actions) + `

Examples:
  devutils colour hex2rgb "#1EA54C"
  devutils color hsl2hex "hsl(140,69%,38%)"`,
		Args: contentArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContent(a, cmd, args, colour.Actions, colour.Apply)
		},
	}
}
