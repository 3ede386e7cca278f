package ports

import "os/exec"

// EditorOpener builds the command that opens a draft in the user's editor
type EditorOpener interface {
	Command(path string) (*exec.Cmd, error)
}
