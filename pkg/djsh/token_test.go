package djsh

import (
	"reflect"
	"testing"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantArgv     []string
		wantRedirect string
		wantHas      bool
	}{
		{
			name:     "single_command",
			line:     "ls",
			wantArgv: []string{"ls"},
		},
		{
			name:     "command_with_arguments",
			line:     "ls -l /tmp",
			wantArgv: []string{"ls", "-l", "/tmp"},
		},
		{
			name:     "tabs_and_runs_of_spaces",
			line:     "ls\t-l   /tmp",
			wantArgv: []string{"ls", "-l", "/tmp"},
		},
		{
			name:     "empty_line",
			line:     "",
			wantArgv: nil,
		},
		{
			name:     "whitespace_only",
			line:     " \t ",
			wantArgv: nil,
		},
		{
			name:     "arguments_capped",
			line:     "cmd a b c d e f",
			wantArgv: []string{"cmd", "a", "b", "c", "d"},
		},
		{
			name:         "redirect",
			line:         "echo hi > out.txt",
			wantArgv:     []string{"echo", "hi"},
			wantRedirect: "out.txt",
			wantHas:      true,
		},
		{
			name:         "redirect_target_not_an_argument",
			line:         "wc -l > counts",
			wantArgv:     []string{"wc", "-l"},
			wantRedirect: "counts",
			wantHas:      true,
		},
		{
			name:     "redirect_without_target",
			line:     "echo hi >",
			wantArgv: []string{"echo", "hi"},
			wantHas:  true,
		},
		{
			name:         "redirect_before_cap_overflow",
			line:         "cmd a b c d e > out",
			wantArgv:     []string{"cmd", "a", "b", "c", "d"},
			wantRedirect: "out",
			wantHas:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLine(tt.line)
			if !reflect.DeepEqual(got.argv, tt.wantArgv) {
				t.Errorf("argv = %v, want %v", got.argv, tt.wantArgv)
			}
			if got.redirect != tt.wantRedirect {
				t.Errorf("redirect = %q, want %q", got.redirect, tt.wantRedirect)
			}
			if got.hasRedirect != tt.wantHas {
				t.Errorf("hasRedirect = %v, want %v", got.hasRedirect, tt.wantHas)
			}
		})
	}
}
