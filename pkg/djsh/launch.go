package djsh

import (
	"errors"
	"os/exec"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/rcarmo/go-djsh/pkg/core"
)

// Mode selects how a child's argument vector is shaped. Both modes run
// the same resolved executable and are externally equivalent.
type Mode int

const (
	// ModeNameOnly passes the unqualified command name as the child's
	// argv[0] and at most MaxArgs argument slots, execlp style. The
	// argument cap is baked into this call shape.
	ModeNameOnly Mode = iota
	// ModeFullArgv passes the argument vector exactly as typed,
	// execvp style.
	ModeFullArgv
)

// launch resolves argv[0] along the search path and runs it as a child
// process, blocking until it terminates. The child inherits the
// shell's current streams, so an engaged redirection applies to it.
// fatal is true only for fork-level resource exhaustion, which takes
// the whole shell down.
func launch(stdio *core.Stdio, argv []string, state *State) (fatal bool) {
	path, ok := resolve(argv[0], state.searchPath)
	if !ok {
		shellError(stdio)
		return false
	}

	child := exec.Cmd{
		Path:   path,
		Args:   childArgs(argv, state.mode),
		Stdin:  stdio.In,
		Stdout: stdio.Out,
		Stderr: stdio.Err,
	}
	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The child ran and failed on its own terms.
			return false
		}
		shellError(stdio)
		// Could not spawn at all: out of processes or memory is fatal,
		// a failed image replacement kills only this command.
		return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.ENOMEM)
	}
	return false
}

func childArgs(argv []string, mode Mode) []string {
	if mode == ModeFullArgv {
		return argv
	}
	args := make([]string, 0, MaxArgs+1)
	args = append(args, filepath.Base(argv[0]))
	for _, arg := range argv[1:] {
		if len(args) == MaxArgs+1 {
			break
		}
		args = append(args, arg)
	}
	return args
}
