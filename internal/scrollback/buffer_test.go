package scrollback

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconsole/pkg/contypes"
)

func plains(b *Buffer) []string {
	lines := b.Lines()
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.Plain()
	}
	return out
}

func TestBuffer_AppendAndLines(t *testing.T) {
	b := NewBuffer(10)
	b.Append(contypes.PlainLine("first"))
	b.Append(contypes.PlainLine("second"))

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []string{"first", "second"}, plains(b))
}

func TestBuffer_EvictsOldestFirst(t *testing.T) {
	b := NewBuffer(3)
	for i := 1; i <= 5; i++ {
		b.Append(contypes.PlainLine(fmt.Sprintf("line%d", i)))
	}

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []string{"line3", "line4", "line5"}, plains(b))
}

func TestBuffer_NeverExceedsCapacity(t *testing.T) {
	b := NewBuffer(4)
	for i := 0; i < 100; i++ {
		b.Append(contypes.PlainLine(fmt.Sprintf("%d", i)))
		assert.LessOrEqual(t, b.Len(), b.Capacity())
	}
	assert.Equal(t, []string{"96", "97", "98", "99"}, plains(b))
}

func TestBuffer_AppendText_DecodesStyles(t *testing.T) {
	b := NewBuffer(10)
	b.AppendText("\x1b[31merror:\x1b[0m boom")

	lines := b.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "error: boom", lines[0].Plain())
	require.GreaterOrEqual(t, len(lines[0].Runs), 2)
	assert.Equal(t, contypes.ColorRed, lines[0].Runs[0].Style.Foreground)
}

func TestBuffer_Clear(t *testing.T) {
	b := NewBuffer(5)
	b.Append(contypes.PlainLine("x"))
	b.Append(contypes.PlainLine("y"))

	b.Clear()

	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Lines())
	assert.Equal(t, 5, b.Capacity())

	// The buffer keeps working after a clear.
	b.Append(contypes.PlainLine("z"))
	assert.Equal(t, []string{"z"}, plains(b))
}

func TestBuffer_AppendedIsMonotonic(t *testing.T) {
	b := NewBuffer(2)
	for i := 0; i < 5; i++ {
		b.Append(contypes.PlainLine(fmt.Sprintf("%d", i)))
	}

	// Eviction caps Len but never rewinds the append counter.
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 5, b.Appended())

	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 5, b.Appended())

	b.Append(contypes.PlainLine("after"))
	assert.Equal(t, 6, b.Appended())
}

func TestBuffer_DefaultCapacity(t *testing.T) {
	b := NewBuffer(0)
	assert.Equal(t, DefaultCapacity, b.Capacity())
}
