package djsh

import (
	"os"

	"github.com/rcarmo/go-djsh/pkg/core"
)

// beginRedirect routes the shell's standard output to name for the
// span of one dispatch, builtins included. It returns a restore
// function that swaps the original writer back and closes the file.
// If the file cannot be opened the failure is reported and nil is
// returned; the command still runs against the normal output.
func beginRedirect(stdio *core.Stdio, name string) func() {
	file, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		shellError(stdio)
		return nil
	}
	saved := stdio.Out
	stdio.Out = file
	return func() {
		stdio.Out = saved
		file.Close()
	}
}
