package djsh

// HistoryCap bounds the number of remembered input lines. Once full,
// appending evicts the oldest entry.
const HistoryCap = 50

// History is a bounded FIFO log of input lines, oldest first.
type History struct {
	entries []string
}

// Append records one input line, evicting the oldest entry when the
// log is already at capacity.
func (h *History) Append(line string) {
	if len(h.entries) == HistoryCap {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:HistoryCap-1]
	}
	h.entries = append(h.entries, line)
}

// Len returns the number of recorded lines.
func (h *History) Len() int {
	return len(h.entries)
}

// All returns every recorded line, oldest first.
func (h *History) All() []string {
	return h.entries
}

// Last returns the most recent n lines, still oldest first. n larger
// than the log just returns everything.
func (h *History) Last(n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(h.entries) {
		n = len(h.entries)
	}
	return h.entries[len(h.entries)-n:]
}
