// Package scrollback holds the console's bounded output log. The buffer
// is append-only up to its capacity, then evicts oldest-first, so memory
// stays bounded however long the session runs.
package scrollback

import (
	"devconsole/internal/styledtext"
	"devconsole/pkg/contypes"
)

// DefaultCapacity is the line bound used when a session does not
// configure one.
const DefaultCapacity = 1000

// Buffer is a FIFO ring of scroll lines.
type Buffer struct {
	lines    []contypes.ScrollLine
	start    int
	count    int
	capacity int
	appended int
}

// NewBuffer creates a buffer bounded to capacity lines. capacity <= 0
// selects DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		lines:    make([]contypes.ScrollLine, capacity),
		capacity: capacity,
	}
}

// Append adds one line, evicting the oldest line when full.
func (b *Buffer) Append(line contypes.ScrollLine) {
	b.appended++
	if b.count < b.capacity {
		b.lines[(b.start+b.count)%b.capacity] = line
		b.count++
		return
	}
	b.lines[b.start] = line
	b.start = (b.start + 1) % b.capacity
}

// AppendText decodes raw (possibly ANSI-styled) text into a line and
// appends it.
func (b *Buffer) AppendText(raw string) {
	b.Append(styledtext.DecodeLine(raw))
}

// Lines returns the buffered lines oldest-first. The slice is a copy;
// renderers may hold it across frames.
func (b *Buffer) Lines() []contypes.ScrollLine {
	out := make([]contypes.ScrollLine, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = b.lines[(b.start+i)%b.capacity]
	}
	return out
}

// Len returns the number of buffered lines.
func (b *Buffer) Len() int {
	return b.count
}

// Capacity returns the configured line bound.
func (b *Buffer) Capacity() int {
	return b.capacity
}

// Appended returns the total number of lines ever appended. Unlike Len
// it is monotonic: evictions and Clear never decrease it, so renderers
// can diff it across frames to find how many lines are new.
func (b *Buffer) Appended() int {
	return b.appended
}

// Clear removes all lines without changing capacity.
func (b *Buffer) Clear() {
	for i := range b.lines {
		b.lines[i] = contypes.ScrollLine{}
	}
	b.start = 0
	b.count = 0
}
