// Package cmd provides the command-line interface for devutils.
//
// Every domain is a subcommand taking an action name as its first argument:
//
//	devutils hash sha256 "some text"
//	echo "some text" | devutils hash sha256
//	devutils --editor convert json2yaml
//
// Configuration Sources (highest priority first):
//
//	1. Command-line flags (--log-level, --separator, ...)
//	2. DEVUTILS_<SECTION>_<OPTION> environment variables
//	3. The file named by --config or DEVUTILS_CONFIG_FILE
//	4. Built-in defaults
//
// No configuration file is searched for implicitly.
package cmd

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/signal"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/devutils/internal/config"
	"github.com/conneroisu/devutils/internal/content"
	"github.com/conneroisu/devutils/internal/dispatch"
	"github.com/conneroisu/devutils/internal/errors"
	"github.com/conneroisu/devutils/internal/logging"
)

// App is the state shared by every command of one invocation.
type App struct {
	Stdin  content.Source
	Stdout io.Writer
	Stderr io.Writer

	Config *config.Config
	Logger logging.Logger

	cfgFile string
	editor  bool
}

// NewApp wires the process's standard streams.
func NewApp() *App {
	return &App{
		Stdin:  content.NewStdin(os.Stdin),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: config.Default(),
		Logger: logging.Discard(),
	}
}

// Execute runs the command line and returns an *errors.ExitError once the
// failure has been reported on stderr.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := NewApp()
	return app.Execute(ctx, os.Args[1:])
}

// Execute runs args against a fresh command tree.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := NewRootCmd(a)
	root.SetArgs(args)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var exitErr *errors.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr
	}

	// Cobra usage errors and configuration failures never reach a runner.
	a.runner().PrintError(err)
	return &errors.ExitError{Code: errors.ExitCode(err), Err: err}
}

// NewRootCmd builds the command tree bound to a.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "devutils",
		Short: "Small text transformations for the command line",
		Long: `devutils bundles small, deterministic text transformations: hashing,
encoding, unit and format conversion, list manipulation, colour conversion,
identifier generation and regular expression synthesis.

Content comes from the argument after the action, from standard input, or
from your editor with --editor.

Examples:
  devutils hash md5 foo
  echo "one two three" | devutils list sort --separator " "
  devutils datetime convert --from epoch --to iso8601 1
  devutils generate uuid --uuid-version 5 --name example.com
  devutils regex date --format dd/MM/YYYY`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.editor, "editor", "e", false, "edit the content in $VISUAL/$EDITOR before transforming it")
	flags.StringVar(&a.cfgFile, "config", "", "config file (can also use DEVUTILS_CONFIG_FILE env var)")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", config.DefaultLogFormat, "log format (text, json)")
	AddFlagValidation(root.PersistentFlags(), "log-level", ValidateLogLevel)
	AddFlagValidation(root.PersistentFlags(), "log-format", ValidateLogFormat)

	root.AddCommand(
		newHashCmd(a),
		newURLCmd(a),
		newBase64Cmd(a),
		newConvertCmd(a),
		newDatetimeCmd(a),
		newDateCmd(a),
		newListCmd(a),
		newColourCmd(a),
		newGenerateCmd(a),
		newPercentageCmd(a),
		newRegexCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)

	return root
}

// initConfig loads configuration in priority order and builds the logger.
//
//	export DEVUTILS_CONFIG_FILE=~/.config/devutils.yml
//	devutils list sort --config ./other.yml  # --config wins
func (a *App) initConfig(cmd *cobra.Command) error {
	if err := config.SetupEnv(); err != nil {
		return err
	}

	persistent := cmd.Root().PersistentFlags()
	for _, name := range []string{"log-level", "log-format"} {
		if flag := persistent.Lookup(name); flag != nil && flag.Changed {
			if err := viper.BindPFlag(name, flag); err != nil {
				return errors.NewConfigError("cannot bind --"+name, err)
			}
		}
	}

	file := a.cfgFile
	if file == "" {
		file = os.Getenv(config.EnvPrefix + "_CONFIG_FILE")
	}
	if file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return errors.NewConfigError("cannot read config file "+file, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.Config = cfg

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.NewConfigError("invalid log level", err)
	}
	a.Logger = logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    cfg.Log.Format,
		Output:    a.Stderr,
		Component: "devutils",
	})
	a.Logger.Debug(cmd.Context(), "configuration loaded", "config_file", viper.ConfigFileUsed(), "command", cmd.Name())

	return nil
}

func (a *App) runner() *dispatch.Runner {
	return &dispatch.Runner{
		Stdout:  a.Stdout,
		Stderr:  a.Stderr,
		Logger:  a.Logger,
		NoColor: !colorable(a.Stderr),
	}
}

// colorable reports whether w is a terminal that can show ANSI colours.
func colorable(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice == 0 {
		return false
	}
	return color.SupportColor()
}
