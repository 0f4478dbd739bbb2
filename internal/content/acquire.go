package content

import (
	"context"
	"strings"

	"github.com/conneroisu/devutils/internal/errors"
	"github.com/conneroisu/devutils/internal/logging"
)

// Acquirer walks its sources and optionally hands the result to an editor.
type Acquirer struct {
	Sources     []Source
	Editor      Editor
	Interactive bool
	Logger      logging.Logger
}

// Acquire returns the operand.
//
// Without interactive editing, content from a source is returned untouched
// and no content at all is a NoContent error. With it, the editor result is
// trimmed of surrounding whitespace.
func (a *Acquirer) Acquire(ctx context.Context) (string, error) {
	logger := a.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	buffer, found := "", false
	for _, source := range a.Sources {
		text, ok, err := source.Read(ctx)
		if err != nil {
			return "", errors.NewInternalError("cannot read "+source.Name(), err)
		}
		if ok {
			logger.Debug(ctx, "content acquired", "source", source.Name(), "bytes", len(text))
			buffer, found = text, true
			break
		}
	}

	if !a.Interactive {
		if !found {
			return "", errors.NewNoContentError("no content provided; pass it as an argument, pipe it on stdin or use --editor")
		}
		return buffer, nil
	}

	if a.Editor == nil {
		return "", errors.NewInteractiveError("interactive editing is not available", nil)
	}

	logger.Debug(ctx, "opening editor", "seeded", found)
	edited, err := a.Editor.Edit(ctx, buffer)
	if err != nil {
		return "", errors.NewInteractiveError("editor session failed", err)
	}

	return strings.TrimSpace(edited), nil
}

// Acquire is the two-source form: an optional explicit argument and an
// optional editor round-trip.
func Acquire(ctx context.Context, explicit *string, allowInteractive bool, editor Editor) (string, error) {
	a := &Acquirer{Editor: editor, Interactive: allowInteractive}
	if explicit != nil {
		a.Sources = []Source{Argument{Value: *explicit, Present: true}}
	}
	return a.Acquire(ctx)
}
