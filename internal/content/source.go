// Package content acquires the operand of a command.
//
// Sources are consulted in order and the first one holding content wins:
// the positional argument, then piped standard input. When interactive
// editing is requested the winning content (or an empty buffer) seeds an
// editor session and the trimmed result becomes the operand.
package content

import (
	"context"
	"io"
	"os"
	"strings"
)

// Source is one place an operand can come from.
type Source interface {
	Name() string
	// Read reports ok=false when the source holds nothing.
	Read(ctx context.Context) (content string, ok bool, err error)
}

// Argument is content given on the command line. It is used verbatim.
type Argument struct {
	Value   string
	Present bool
}

// ArgumentAt returns the positional argument at index, if there is one.
func ArgumentAt(args []string, index int) Argument {
	if index < 0 || index >= len(args) {
		return Argument{}
	}
	return Argument{Value: args[index], Present: true}
}

func (a Argument) Name() string { return "argument" }

func (a Argument) Read(context.Context) (string, bool, error) {
	return a.Value, a.Present, nil
}

// Stdin is content piped into the process. A terminal on standard input is
// never read, so an interactive shell does not block waiting for EOF.
type Stdin struct {
	Reader io.Reader
	Piped  func() bool
}

// NewStdin reads from f when f is not a character device.
func NewStdin(f *os.File) Stdin {
	return Stdin{
		Reader: f,
		Piped: func() bool {
			stat, err := f.Stat()
			return err == nil && stat.Mode()&os.ModeCharDevice == 0
		},
	}
}

func (s Stdin) Name() string { return "stdin" }

// Read returns everything piped in, minus the single line terminator that
// shells append.
func (s Stdin) Read(context.Context) (string, bool, error) {
	if s.Reader == nil || s.Piped == nil || !s.Piped() {
		return "", false, nil
	}

	data, err := io.ReadAll(s.Reader)
	if err != nil {
		return "", false, err
	}

	text := string(data)
	if strings.HasSuffix(text, "\r\n") {
		text = text[:len(text)-2]
	} else {
		text = strings.TrimSuffix(text, "\n")
	}

	return text, true, nil
}
