package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conneroisu/devutils/internal/base64codec"
)

func newBase64Cmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "base64 <action> [content]",
		Aliases: []string{"b64"},
		Short:   "Base64 encode or decode",
		Long: `Encode content with the standard base64 alphabet without padding, or
decode padded or unpadded base64.

` + actionHelp(base64codec.Actions),
		Args: contentArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContent(a, cmd, args, base64codec.Actions, base64codec.Apply)
		},
	}
}
