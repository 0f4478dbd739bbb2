package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/devutils/internal/errors"
	"github.com/conneroisu/devutils/internal/version"
)

func newVersionCmd(a *App) *cobra.Command {
	var (
		format string
		short  bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display version information for devutils including:

- Semantic version number
- Git commit hash
- Build timestamp
- Go version used for compilation
- Target platform (OS/architecture)

Examples:
  devutils version                # Show version and build details
  devutils version --short        # Show short version
  devutils version --format json  # Output as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case "json":
				return a.outputVersionJSON()
			case "text":
				if short {
					_, err := fmt.Fprintln(a.Stdout, version.GetShortVersion())
					return err
				}
				return a.outputVersionDetailed()
			default:
				return a.fail(cmd, errors.NewInvalidNameError("version", "format", format, []string{"json", "text"}))
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json)")
	cmd.Flags().BoolVar(&short, "short", false, "Show short version only")

	return cmd
}

func (a *App) outputVersionDetailed() error {
	if _, err := fmt.Fprintln(a.Stdout, version.GetDetailedVersion()); err != nil {
		return err
	}

	buildType := "development"
	if version.IsRelease() {
		buildType = "release"
	}
	_, err := fmt.Fprintf(a.Stdout, "build type: %s\n", buildType)
	return err
}

func (a *App) outputVersionJSON() error {
	info := version.GetBuildInfo()

	jsonInfo := map[string]interface{}{
		"version":    info.Version,
		"git_commit": info.GitCommit,
		"build_time": info.BuildTime,
		"go_version": info.GoVersion,
		"platform":   info.Platform,
		"is_release": version.IsRelease(),
		"is_dirty":   info.Dirty,
	}

	encoder := json.NewEncoder(a.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonInfo)
}
