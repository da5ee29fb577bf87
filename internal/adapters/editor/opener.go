package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"autogensummary/internal/ports"
)

// fallbackEditors are tried in order when no editor is configured
var fallbackEditors = []string{"nvim", "vim", "vi", "nano", "code"}

// Opener implements ports.EditorOpener
type Opener struct {
	lookPath func(string) (string, error)
	getenv   func(string) string
}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookPath: exec.LookPath, getenv: os.Getenv}
}

// OpenFile opens a file in the user's preferred editor
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor.
// Editor values with arguments ("code --wait") are split on whitespace.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	fields := strings.Fields(editor)
	args := append(fields[1:], path)

	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use: $AUTOGEN_SUMMARY_EDITOR, $EDITOR,
// $VISUAL, then the first fallback found on PATH
func (o *Opener) findEditor() string {
	for _, env := range []string{"AUTOGEN_SUMMARY_EDITOR", "EDITOR", "VISUAL"} {
		if editor := strings.TrimSpace(o.getenv(env)); editor != "" {
			return editor
		}
	}

	for _, editor := range fallbackEditors {
		if path, err := o.lookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
