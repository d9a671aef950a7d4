// Package history keeps the submitted-line log and its Up/Down cursor.
// Entries are newest-last; consecutive identical submissions collapse to
// one entry. The cursor's "new line" position is one past the newest
// entry, matching how terminal line editors behave.
package history

// DefaultCapacity bounds the history when a session does not configure
// one.
const DefaultCapacity = 20

// Navigator is the ordered submitted-line log with cursor navigation.
type Navigator struct {
	entries  []string
	cursor   int
	capacity int
}

// NewNavigator creates an empty navigator bounded to capacity entries.
// capacity <= 0 selects DefaultCapacity.
func NewNavigator(capacity int) *Navigator {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Navigator{capacity: capacity}
}

// Submit records a line and resets the cursor to the new-line position.
// A line identical to the immediately preceding entry is not duplicated;
// the oldest entry is evicted once the capacity bound is reached.
func (n *Navigator) Submit(line string) {
	defer func() { n.cursor = len(n.entries) }()

	if len(n.entries) > 0 && n.entries[len(n.entries)-1] == line {
		return
	}
	n.entries = append(n.entries, line)
	if len(n.entries) > n.capacity {
		n.entries = n.entries[1:]
	}
}

// Previous moves the cursor one entry older and returns it. At the
// oldest entry the cursor stays put and the oldest entry is returned
// again; with no history at all it reports ok=false.
func (n *Navigator) Previous() (string, bool) {
	if len(n.entries) == 0 {
		return "", false
	}
	if n.cursor > 0 {
		n.cursor--
	}
	return n.entries[n.cursor], true
}

// Next moves the cursor one entry newer. Past the newest entry it
// returns to the new-line state: empty string, ok=false.
func (n *Navigator) Next() (string, bool) {
	if n.cursor >= len(n.entries) {
		return "", false
	}
	n.cursor++
	if n.cursor == len(n.entries) {
		return "", false
	}
	return n.entries[n.cursor], true
}

// Reset returns the cursor to the new-line position without touching the
// entries.
func (n *Navigator) Reset() {
	n.cursor = len(n.entries)
}

// Entries returns the submitted lines oldest-first. The slice is a copy.
func (n *Navigator) Entries() []string {
	out := make([]string, len(n.entries))
	copy(out, n.entries)
	return out
}

// Len returns the number of stored entries.
func (n *Navigator) Len() int {
	return len(n.entries)
}
