package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conneroisu/devutils/internal/urlcodec"
)

func newURLCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "url <action> [content]",
		Short: "Percent-encode, decode or inspect URLs",
		Long: `Percent-encode, percent-decode or break down a URL into its parts.

` + actionHelp(urlcodec.Actions) + `

Examples:
  devutils url encode "https://a.com/"
  devutils url parse "https://user:pw@example.com:8080/p?q=1#top"`,
		Args: contentArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContent(a, cmd, args, urlcodec.Actions, urlcodec.Apply)
		},
	}
}
