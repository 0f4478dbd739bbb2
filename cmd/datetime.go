package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/conneroisu/devutils/internal/datetime"
)

func newDatetimeCmd(a *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "datetime <action> [content]",
		Short: "Convert timestamps between formats",
		Long: `Read a timestamp in one format and print it in another, in UTC.

` + actionHelp(datetime.Actions) + `
Formats: ` + datetime.Formats.Usage() + `

Examples:
  devutils datetime convert --from epoch --to iso8601 1
  devutils datetime convert --from rfc3339 --to rfc2822 2024-03-01T12:00:00Z`,
		Args: contentArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContent(a, cmd, args, datetime.Actions,
				func(ctx context.Context, act datetime.Action, content string) (string, error) {
					var opts datetime.Options
					var err error
					if opts.From, err = datetime.Formats.Resolve(from); err != nil {
						return "", err
					}
					if opts.To, err = datetime.Formats.Resolve(to); err != nil {
						return "", err
					}
					return datetime.Apply(ctx, act, content, opts)
				})
		},
	}

	cmd.Flags().StringVar(&from, "from", "epoch", "format of the input")
	cmd.Flags().StringVar(&to, "to", "iso8601", "format of the output")

	return cmd
}
