package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/devutils/internal/errors"
)

func newConfigCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect devutils configuration",
		Long: `Inspect the configuration devutils resolves from flags, DEVUTILS_
environment variables and the optional --config file.

Examples:
  devutils config show                 # Show resolved configuration as YAML
  devutils config show --format json   # Show it as JSON
  devutils config validate --config ~/.config/devutils.yml`,
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case "yaml":
				out, err := yaml.Marshal(a.Config)
				if err != nil {
					return a.fail(cmd, errors.NewInternalError("cannot encode configuration", err))
				}
				if _, err := fmt.Fprint(a.Stdout, string(out)); err != nil {
					return a.fail(cmd, errors.Wrap(err, errors.KindInternal, errors.ErrCodeInternal, "cannot write configuration"))
				}
				return nil
			case "json":
				encoder := json.NewEncoder(a.Stdout)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(a.Config); err != nil {
					return a.fail(cmd, errors.Wrap(err, errors.KindInternal, errors.ErrCodeInternal, "cannot write configuration"))
				}
				return nil
			default:
				return a.fail(cmd, errors.NewInvalidNameError("config", "format", format, []string{"json", "yaml"}))
			}
		},
	}
	show.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml, json)")

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		Long: `Load and validate the configuration. Invalid settings fail before any
command runs, so reaching this command means the configuration is valid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source := viper.ConfigFileUsed()
			if source == "" {
				source = "defaults and environment"
			}
			_, err := fmt.Fprintf(a.Stdout, "configuration is valid (%s)\n", source)
			return err
		},
	}

	cmd.AddCommand(show, validate)
	return cmd
}
