package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/conneroisu/devutils/internal/generate"
)

func newGenerateCmd(a *App) *cobra.Command {
	flags := &TokenFlags{}

	cmd := &cobra.Command{
		Use:   "generate <action>",
		Short: "Generate tokens, UUIDs and ULIDs",
		Long: `Generate random tokens and unique identifiers from crypto/rand.

Operands come from flags only. Standard input is not read and --editor is
rejected.

` + actionHelp(generate.Actions) + `

Examples:
  devutils generate token --length 16 --no-symbols
  devutils generate uuid --uuid-version 5 --namespace url --name https://example.com
  devutils generate uuid --uuid-version 1 --node-id 01:23:45:67:89:ab
  devutils generate ulid --count 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := generate.DefaultOptions()
			opts.Length = flags.Length
			if !cmd.Flags().Changed("length") {
				opts.Length = a.Config.Generate.TokenLength
			}
			opts.NoUppercase = flags.NoUppercase
			opts.NoLowercase = flags.NoLowercase
			opts.NoNumbers = flags.NoNumbers
			opts.NoSymbols = flags.NoSymbols
			opts.UUIDVersion = flags.UUIDVersion
			opts.Namespace = flags.Namespace
			opts.Name = flags.Name
			opts.NodeID = flags.NodeID
			opts.Count = flags.Count

			return runFlags(a, cmd, args, generate.Actions,
				func(ctx context.Context, act generate.Action, content string) (string, error) {
					return generate.Apply(ctx, act, content, opts)
				})
		},
	}

	addTokenFlags(cmd, flags)
	return cmd
}
