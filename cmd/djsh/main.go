// Command djsh is the entry point for the djsh interpreter.
package main

import (
	"os"

	"golang.org/x/term"

	"github.com/rcarmo/go-djsh/pkg/core"
	"github.com/rcarmo/go-djsh/pkg/djsh"
)

func main() {
	stdio := core.DefaultStdio()
	// djsh is an interactive shell; it still runs against a pipe, but
	// flag that the session is not what it expects.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		stdio.Errorf("djsh: warning: standard input is not a terminal\n")
	}
	os.Exit(djsh.Run(stdio, os.Args[1:]))
}
