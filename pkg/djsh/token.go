package djsh

import "strings"

// MaxArgs is the maximum number of arguments passed to a command, not
// counting the command name itself. The cap is part of the shell's
// contract: extra tokens are dropped, never an error.
const MaxArgs = 4

// command is the result of tokenizing one input line. It lives for a
// single loop iteration.
type command struct {
	argv        []string // command name plus at most MaxArgs arguments
	redirect    string   // target filename, meaningful only if hasRedirect
	hasRedirect bool     // a bare ">" token was seen
}

// splitLine tokenizes one input line, already stripped of its line
// terminator. Tokens are separated by spaces and tabs; there is no
// quoting or escaping. A ">" token is consumed together with the token
// after it, which becomes the redirection target; neither lands in argv.
func splitLine(line string) command {
	var cmd command
	tokens := splitFields(line)
	for i := 0; i < len(tokens); i++ {
		if tokens[i] == ">" {
			cmd.hasRedirect = true
			if i+1 < len(tokens) {
				cmd.redirect = tokens[i+1]
				i++
			}
			continue
		}
		if len(cmd.argv) < MaxArgs+1 {
			cmd.argv = append(cmd.argv, tokens[i])
		}
	}
	return cmd
}

func splitFields(line string) []string {
	var tokens []string
	var buf strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == ' ' || c == '\t' {
			if buf.Len() > 0 {
				tokens = append(tokens, buf.String())
				buf.Reset()
			}
			continue
		}
		buf.WriteByte(c)
	}
	if buf.Len() > 0 {
		tokens = append(tokens, buf.String())
	}
	return tokens
}
