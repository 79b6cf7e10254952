package agent

const (
	// historyCap is the hard ceiling on retained entries.
	historyCap = 50
	// historyKeep is how many entries survive a trim. Trimming drops the
	// oldest entries in one pass rather than one at a time.
	historyKeep = 40
)

type HistoryRole string

const (
	HistoryRequester HistoryRole = "requester"
	HistoryResponder HistoryRole = "responder"
)

type HistoryEntry struct {
	Role    HistoryRole
	Content string
}

// History is a bounded, strictly chronological log of prior exchanges.
// After any append its length is at most historyCap.
type History struct {
	entries []HistoryEntry
}

func (h *History) Append(role HistoryRole, content string) {
	h.entries = append(h.entries, HistoryEntry{Role: role, Content: content})
	if len(h.entries) > historyCap {
		trimmed := make([]HistoryEntry, historyKeep)
		copy(trimmed, h.entries[len(h.entries)-historyKeep:])
		h.entries = trimmed
	}
}

func (h *History) Len() int {
	return len(h.entries)
}

// Recent returns up to n most recent entries, oldest first.
func (h *History) Recent(n int) []HistoryEntry {
	if n <= 0 || len(h.entries) == 0 {
		return nil
	}
	if n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]HistoryEntry, n)
	copy(out, h.entries[len(h.entries)-n:])
	return out
}
