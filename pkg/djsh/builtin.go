package djsh

import (
	"os"
	"strconv"
	"strings"

	"github.com/rcarmo/go-djsh/pkg/core"
)

// dispatchBuiltin recognizes and runs the builtin named by argv[0].
// handled reports whether argv[0] was a builtin at all; exit is true
// only for a well-formed `exit`.
func dispatchBuiltin(stdio *core.Stdio, argv []string, state *State) (handled, exit bool) {
	switch argv[0] {
	case "exit":
		// exit takes no arguments
		if len(argv) > 1 {
			shellError(stdio)
			return true, false
		}
		return true, true
	case "cd":
		if len(argv) != 2 {
			shellError(stdio)
			return true, false
		}
		if err := os.Chdir(argv[1]); err != nil {
			shellError(stdio)
		}
		return true, false
	case "path":
		if len(argv) == 1 {
			if len(state.searchPath) > 0 {
				stdio.Printf("%s\n", strings.Join(state.searchPath, ":"))
			} else {
				stdio.Print("\n")
			}
			return true, false
		}
		// Replace the search path wholesale. Listed directories are not
		// validated here; a bad entry simply never resolves anything.
		state.searchPath = strings.Split(argv[1], ":")
		return true, false
	case "history":
		entries := state.history.All()
		if len(argv) > 1 {
			n, err := strconv.Atoi(argv[1])
			if err != nil || n < 0 || n > HistoryCap {
				shellError(stdio)
				return true, false
			}
			entries = state.history.Last(n)
		}
		for _, entry := range entries {
			stdio.Println(entry)
		}
		return true, false
	}
	return false, false
}
