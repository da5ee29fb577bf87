package ports

import "os/exec"

// EditorOpener opens a generated summary in the user's editor
type EditorOpener interface {
	// OpenFile runs the editor on path and waits for it to exit
	OpenFile(path string) error

	// Command builds the editor process without starting it, so the
	// preview can hand the terminal over with tea.ExecProcess
	Command(path string) (*exec.Cmd, error)
}
