// Package dispatch runs one invocation of a command domain: resolve the
// action, acquire the operand, transform it and report the outcome.
//
// Every invocation walks the same states:
//
//	Start → ActionResolved → ContentAcquired → Transformed → Emitted
//
// and drops into Failed from any state after Start. Nothing is retried.
package dispatch

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/conneroisu/devutils/internal/action"
	"github.com/conneroisu/devutils/internal/errors"
	"github.com/conneroisu/devutils/internal/logging"
)

// State is a step of an invocation.
type State int

const (
	Start State = iota
	ActionResolved
	ContentAcquired
	Transformed
	Emitted
	Failed
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case ActionResolved:
		return "action_resolved"
	case ContentAcquired:
		return "content_acquired"
	case Transformed:
		return "transformed"
	case Emitted:
		return "emitted"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ContentSource supplies the operand. *content.Acquirer implements it.
type ContentSource interface {
	Acquire(ctx context.Context) (string, error)
}

// Transform is the pure part of a command.
type Transform[A comparable] func(ctx context.Context, act A, content string) (string, error)

// Command binds a domain's registry to its transformation.
type Command[A comparable] struct {
	Registry  *action.Registry[A]
	RawAction string
	// Content is nil for domains that take their operands from flags.
	Content   ContentSource
	Transform Transform[A]
}

// Runner owns the output streams of an invocation.
type Runner struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  logging.Logger
	NoColor bool
}

// Outcome is what an invocation ended with.
type Outcome struct {
	State   State
	Output  string
	Err     error
	History []State
}

type invocation struct {
	ctx     context.Context
	logger  logging.Logger
	state   State
	history []State
}

func (inv *invocation) advance(next State) {
	inv.logger.Debug(inv.ctx, "state transition", "from", inv.state.String(), "to", next.String())
	inv.state = next
	inv.history = append(inv.history, next)
}

// Evaluate runs the command without writing anything.
func Evaluate[A comparable](ctx context.Context, logger logging.Logger, cmd Command[A]) Outcome {
	if logger == nil {
		logger = logging.Discard()
	}
	domain := ""
	if cmd.Registry != nil {
		domain = cmd.Registry.Domain()
	}
	inv := &invocation{
		ctx:     ctx,
		logger:  logger.WithComponent("dispatch").With("domain", domain),
		state:   Start,
		history: []State{Start},
	}

	fail := func(err error) Outcome {
		inv.advance(Failed)
		return Outcome{State: Failed, Err: err, History: inv.history}
	}

	if cmd.Registry == nil || cmd.Transform == nil {
		return fail(errors.NewInternalError("command is not wired to a registry and transform", nil))
	}

	act, err := cmd.Registry.Resolve(cmd.RawAction)
	if err != nil {
		return fail(err)
	}
	inv.advance(ActionResolved)

	operand := ""
	if cmd.Content != nil {
		operand, err = cmd.Content.Acquire(ctx)
		if err != nil {
			return fail(err)
		}
	}
	inv.advance(ContentAcquired)

	perf := logging.StartOperation(inv.logger, domain+"."+cmd.Registry.Name(act))
	output, err := safeTransform(ctx, cmd.Transform, act, operand)
	if err != nil {
		perf.EndWithError(ctx, err)
		var te *errors.ToolError
		if stderrors.As(err, &te) && te.Domain == "" {
			te.WithDomain(domain)
		}
		return fail(err)
	}
	perf.End(ctx)
	inv.advance(Transformed)

	return Outcome{State: Transformed, Output: output, History: inv.history}
}

// safeTransform turns a panic inside a transformation into an internal error
// so that no input can abort the process.
func safeTransform[A comparable](ctx context.Context, fn Transform[A], act A, operand string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewInternalError("transformation panicked", fmt.Errorf("%v", r))
		}
	}()
	return fn(ctx, act, operand)
}

// Run evaluates the command and reports the outcome: the result and a
// newline on stdout, or a diagnostic on stderr. A failure is returned as an
// *errors.ExitError carrying the exit status.
func Run[A comparable](ctx context.Context, r *Runner, cmd Command[A]) error {
	outcome := Evaluate(ctx, r.Logger, cmd)
	return r.Report(ctx, &outcome)
}

// Report moves a Transformed outcome to Emitted, or prints a Failed one.
func (r *Runner) Report(ctx context.Context, outcome *Outcome) error {
	if outcome.State == Transformed {
		if _, err := fmt.Fprintln(r.Stdout, outcome.Output); err != nil {
			outcome.State = Failed
			outcome.History = append(outcome.History, Failed)
			return r.fail(ctx, errors.NewInternalError("cannot write result", err))
		}
		outcome.State = Emitted
		outcome.History = append(outcome.History, Emitted)
		return nil
	}

	err := outcome.Err
	if err == nil {
		err = errors.NewInternalError(fmt.Sprintf("invocation stopped in state %s", outcome.State), nil)
	}
	return r.fail(ctx, err)
}

func (r *Runner) fail(ctx context.Context, err error) error {
	if r.Logger != nil {
		logging.LogToolError(ctx, r.Logger, err)
	}
	r.PrintError(err)
	return &errors.ExitError{Code: errors.ExitCode(err), Err: err}
}

// PrintError writes the diagnostic for err to stderr.
func (r *Runner) PrintError(err error) {
	msg := err.Error()
	var te *errors.ToolError
	if stderrors.As(err, &te) {
		msg = te.UserMessage()
	}

	prefix := "Error:"
	if !r.NoColor {
		prefix = color.Red.Sprint(prefix)
	}
	_, _ = fmt.Fprintf(r.Stderr, "%s %s\n", prefix, msg)
}
