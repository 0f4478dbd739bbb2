package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/devutils/internal/action"
	"github.com/conneroisu/devutils/internal/content"
	"github.com/conneroisu/devutils/internal/dispatch"
)

// acquirer reads the operand from the argument after the action, then from
// piped stdin, and optionally round-trips it through the editor.
func (a *App) acquirer(args []string) *content.Acquirer {
	return &content.Acquirer{
		Sources: []content.Source{
			content.ArgumentAt(args, 1),
			a.Stdin,
		},
		Editor:      content.NewExternalEditor(a.Config.Editor),
		Interactive: a.editor,
		Logger:      a.Logger.WithComponent("content"),
	}
}

// runContent dispatches a domain whose operand is content.
func runContent[A comparable](a *App, cmd *cobra.Command, args []string, registry *action.Registry[A], fn dispatch.Transform[A]) error {
	return dispatch.Run(cmd.Context(), a.runner(), dispatch.Command[A]{
		Registry:  registry,
		RawAction: args[0],
		Content:   a.acquirer(args),
		Transform: fn,
	})
}

// runFlags dispatches a domain whose operands all come from flags. Such a
// domain has no content to edit, so --editor is a usage error.
func runFlags[A comparable](a *App, cmd *cobra.Command, args []string, registry *action.Registry[A], fn dispatch.Transform[A]) error {
	if a.editor {
		return a.fail(cmd, fmt.Errorf("%s takes no content and cannot be used with --editor", cmd.CommandPath()))
	}
	return dispatch.Run(cmd.Context(), a.runner(), dispatch.Command[A]{
		Registry:  registry,
		RawAction: args[0],
		Transform: fn,
	})
}

// contentArgs accepts the action and an optional operand.
var contentArgs = cobra.RangeArgs(1, 2)

// actionHelp renders the valid actions for a command's help text.
func actionHelp[A comparable](registry *action.Registry[A]) string {
	return "Actions: " + registry.Usage()
}

// fail reports err the way a failed dispatch would.
func (a *App) fail(cmd *cobra.Command, err error) error {
	return a.runner().Report(cmd.Context(), &dispatch.Outcome{State: dispatch.Failed, Err: err})
}
