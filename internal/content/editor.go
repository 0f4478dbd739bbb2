package content

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Editor runs an interactive edit session seeded with initial and returns
// what the user saved.
type Editor interface {
	Edit(ctx context.Context, initial string) (string, error)
}

// fallbackEditors are tried in order when neither the configuration nor the
// environment names one.
var fallbackEditors = []string{"vi", "nano"}

// ExternalEditor edits a temporary file with an external program.
type ExternalEditor struct {
	// Command overrides $VISUAL and $EDITOR, e.g. "code --wait".
	Command string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	TempDir string
	Getenv  func(string) string
}

// NewExternalEditor returns an editor attached to the process's terminal.
func NewExternalEditor(command string) *ExternalEditor {
	return &ExternalEditor{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
	}
}

// Resolve returns the editor command line: the configured command, then
// $VISUAL, then $EDITOR, then the first fallback found on PATH.
func (e *ExternalEditor) Resolve() ([]string, error) {
	getenv := e.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	candidates := []string{e.Command, getenv("VISUAL"), getenv("EDITOR")}
	for _, candidate := range candidates {
		if argv := strings.Fields(candidate); len(argv) > 0 {
			return argv, nil
		}
	}

	for _, name := range fallbackEditors {
		if path, err := exec.LookPath(name); err == nil {
			return []string{path}, nil
		}
	}

	return nil, fmt.Errorf("no editor found; set $VISUAL or $EDITOR")
}

// Edit writes initial to a temporary file, waits for the editor to exit and
// reads the file back.
func (e *ExternalEditor) Edit(ctx context.Context, initial string) (string, error) {
	argv, err := e.Resolve()
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(e.TempDir, "devutils-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create edit buffer: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.WriteString(initial); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to seed edit buffer: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to seed edit buffer: %w", err)
	}

	args := append(append([]string{}, argv[1:]...), tmpName)
	cmd := exec.CommandContext(ctx, argv[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor %s failed: %w", argv[0], err)
	}

	data, err := os.ReadFile(tmpName)
	if err != nil {
		return "", fmt.Errorf("failed to read edit buffer: %w", err)
	}

	return string(data), nil
}
