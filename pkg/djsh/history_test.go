package djsh

import (
	"strconv"
	"testing"
)

func TestHistoryAppendAndOrder(t *testing.T) {
	var h History
	h.Append("first")
	h.Append("second")
	h.Append("third")

	got := h.All()
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("Len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	var h History
	for i := 1; i <= HistoryCap+5; i++ {
		h.Append("cmd" + strconv.Itoa(i))
	}
	if h.Len() != HistoryCap {
		t.Fatalf("Len = %d, want %d", h.Len(), HistoryCap)
	}
	entries := h.All()
	if entries[0] != "cmd6" {
		t.Errorf("oldest = %q, want %q", entries[0], "cmd6")
	}
	if entries[len(entries)-1] != "cmd55" {
		t.Errorf("newest = %q, want %q", entries[len(entries)-1], "cmd55")
	}
}

func TestHistoryLast(t *testing.T) {
	var h History
	h.Append("a")
	h.Append("b")
	h.Append("c")

	last := h.Last(2)
	if len(last) != 2 || last[0] != "b" || last[1] != "c" {
		t.Errorf("Last(2) = %v, want [b c]", last)
	}
	if len(h.Last(0)) != 0 {
		t.Errorf("Last(0) = %v, want empty", h.Last(0))
	}
	// Asking for more than recorded returns everything, oldest first.
	all := h.Last(10)
	if len(all) != 3 || all[0] != "a" {
		t.Errorf("Last(10) = %v, want [a b c]", all)
	}
}
