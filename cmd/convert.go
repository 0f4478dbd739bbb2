package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conneroisu/devutils/internal/convert"
)

func newConvertCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <action> [content]",
		Short: "Convert documents, text, units and numerals",
		Long: `Convert between document formats, text encodings, units and numeral
systems.

` + actionHelp(convert.Actions) + `

Examples:
  devutils convert c2f 0
  devutils convert json2yaml '{"a": 1}'
  devutils convert arabic2roman 1994`,
		Args: contentArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContent(a, cmd, args, convert.Actions, convert.Apply)
		},
	}
}
