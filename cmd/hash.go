package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conneroisu/devutils/internal/hash"
)

func newHashCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <action> [content]",
		Short: "Hash content",
		Long: `Print the lowercase hex digest of the content.

` + actionHelp(hash.Actions) + `

Examples:
  devutils hash md5 foo
  cat notes.txt | devutils hash sha256`,
		Args: contentArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContent(a, cmd, args, hash.Actions, hash.Apply)
		},
	}
}
