package djsh

import (
	"strings"

	"golang.org/x/sys/unix"
)

// resolve looks up name along searchPath, first match wins. A candidate
// matches when the directory entry joined with name is executable by
// the current user. Entries are joined with "/" only when they do not
// already end in one; empty entries are skipped.
func resolve(name string, searchPath []string) (string, bool) {
	for _, dir := range searchPath {
		if dir == "" {
			continue
		}
		candidate := dir
		if !strings.HasSuffix(candidate, "/") {
			candidate += "/"
		}
		candidate += name
		if isExecutable(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isExecutable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
