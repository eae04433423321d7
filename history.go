package calculator

// History is the append-only record of completed evaluations in a session.
type History struct {
	lines []string
}

// Record appends a completed evaluation.
func (h *History) Record(expr, result string) {
	h.lines = append(h.lines, expr+" = "+result)
}

// Lines returns a copy of the completed records, oldest first.
func (h *History) Lines() []string {
	return append([]string(nil), h.lines...)
}

// Len is the number of completed records.
func (h *History) Len() int {
	return len(h.lines)
}

// Reset discards every record.
func (h *History) Reset() {
	h.lines = nil
}
