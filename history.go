package bloodos

// HistorySize is the capacity of the command history ring.
const HistorySize = 10

// History keeps the most recently submitted command lines in submission
// order. Once full, pushing evicts the oldest entry. Duplicates are kept and
// entries are never mutated after insertion.
type History struct {
	entries [HistorySize]string
	count   int
}

// Push appends a line, shifting out the oldest entry when the ring is full.
func (h *History) Push(line string) {
	if h.count < HistorySize {
		h.entries[h.count] = line
		h.count++
		return
	}
	copy(h.entries[:], h.entries[1:])
	h.entries[HistorySize-1] = line
}

// Len returns the number of stored lines.
func (h *History) Len() int {
	return h.count
}

// At returns the stored line at index i, oldest first.
// Returns "" out of range.
func (h *History) At(i int) string {
	if i < 0 || i >= h.count {
		return ""
	}
	return h.entries[i]
}

// Last returns the most recently pushed line, or "" when empty.
func (h *History) Last() string {
	return h.At(h.count - 1)
}

// Lines returns a copy of the stored lines, oldest first.
func (h *History) Lines() []string {
	out := make([]string, h.count)
	copy(out, h.entries[:h.count])
	return out
}
