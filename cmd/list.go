package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/conneroisu/devutils/internal/list"
)

func newListCmd(a *App) *cobra.Command {
	flags := &ListFlags{}

	cmd := &cobra.Command{
		Use:   "list <action> [content]",
		Short: "Sort, filter and reshape delimited lists",
		Long: `Split the content on a separator, apply the action to the tokens and
join them back with the same separator.

` + actionHelp(list.Actions) + `

Examples:
  devutils list sort "one two three" --separator " "
  devutils list slice a,b,c,d --index 1 --length 2
  printf 'x\ny\nx' | devutils list dedup -s $'\n'`,
		Args: contentArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := list.Options{
				Separator: flags.Separator,
				Index:     flags.Index,
				Length:    flags.Length,
			}
			if !cmd.Flags().Changed("separator") {
				opts.Separator = a.Config.List.Separator
			}
			if opts.Length < 0 {
				opts.Length = list.Unbounded
			}

			return runContent(a, cmd, args, list.Actions,
				func(ctx context.Context, act list.Action, content string) (string, error) {
					return list.Apply(ctx, act, content, opts)
				})
		},
	}

	addListFlags(cmd, flags)
	return cmd
}
