// Package djsh implements a small line-oriented command interpreter
// with four builtins (exit, cd, path, history), a configurable search
// path for external commands and single-file stdout redirection.
package djsh

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/rcarmo/go-djsh/pkg/core"
)

const prompt = "djsh> "

const (
	bannerDefault = "**By default, execlp() will be used**\n"
	bannerExeclp  = "**Based on your choice, execlp() will be used**\n"
	bannerExecvp  = "**Based on your choice, execvp() will be used**\n"
)

// State is the process-wide shell state, mutated only between loop
// iterations by the builtins.
type State struct {
	searchPath []string
	history    History
	mode       Mode
}

// shellError reports the shell's one and only error message.
func shellError(stdio *core.Stdio) {
	stdio.Errorf("An error has occurred (from DJ)\n")
}

// Run drives the interpreter until `exit`, end of input, or a fatal
// launch failure. Startup args select the invocation mode: -execlp
// (the default) or -execvp; anything else is reported and ignored.
func Run(stdio *core.Stdio, args []string) int {
	state := &State{mode: parseMode(stdio, args)}
	interactive := isTerminal(stdio.In)
	reader := bufio.NewReader(stdio.In)

	for {
		stdio.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) && !interactive {
				// The original re-prompts forever on a failed read,
				// which only makes sense against a terminal that can
				// still produce input. A drained reader ends the
				// session instead.
				return core.ExitSuccess
			}
			// bufio latches the error; a terminal can produce more
			// input after EOF, so start over with a clean reader.
			reader = bufio.NewReader(stdio.In)
			continue
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			state.history.Append(" ")
		} else {
			state.history.Append(line)
		}

		cmd := splitLine(line)
		if len(cmd.argv) == 0 {
			shellError(stdio)
			continue
		}

		var restore func()
		if cmd.hasRedirect {
			restore = beginRedirect(stdio, cmd.redirect)
		}
		handled, exit := dispatchBuiltin(stdio, cmd.argv, state)
		var fatal bool
		if !handled {
			fatal = launch(stdio, cmd.argv, state)
		}
		if restore != nil {
			restore()
		}
		if exit {
			return core.ExitSuccess
		}
		if fatal {
			return core.ExitFailure
		}
	}
}

func isTerminal(in io.Reader) bool {
	file, ok := in.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func parseMode(stdio *core.Stdio, args []string) Mode {
	if len(args) == 0 {
		stdio.Print(bannerDefault)
		return ModeNameOnly
	}
	switch args[0] {
	case "-execlp":
		stdio.Print(bannerExeclp)
		return ModeNameOnly
	case "-execvp":
		stdio.Print(bannerExecvp)
		return ModeFullArgv
	default:
		shellError(stdio)
		stdio.Print(bannerDefault)
		return ModeNameOnly
	}
}
