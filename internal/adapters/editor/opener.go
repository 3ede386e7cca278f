package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// fallbacks are tried in order when neither $VISUAL nor $EDITOR is set
var fallbacks = []string{"nvim", "vim", "vi", "nano"}

// Opener implements ports.EditorOpener
type Opener struct {
	editor []string
}

// NewOpener resolves the user's editor once.
// $VISUAL wins over $EDITOR; both may carry arguments, e.g. "code --wait".
func NewOpener() *Opener {
	return &Opener{editor: findEditor(os.Getenv, exec.LookPath)}
}

// Available reports whether an editor was found
func (o *Opener) Available() bool {
	return len(o.editor) > 0
}

// Command returns an exec.Cmd for opening a draft.
// The TUI hands it to tea.ExecProcess.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	if !o.Available() {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	args := append(o.editor[1:len(o.editor):len(o.editor)], path)
	cmd := exec.Command(o.editor[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

func findEditor(getenv func(string) string, lookPath func(string) (string, error)) []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(getenv(env)); len(fields) > 0 {
			return fields
		}
	}

	for _, name := range fallbacks {
		if path, err := lookPath(name); err == nil {
			return []string{path}
		}
	}

	return nil
}
