package autocomplete

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_InsertAndQuery(t *testing.T) {
	ix := NewIndex(10)
	for _, name := range []string{"set_volume", "set_var", "spawn", "quit", "help"} {
		ix.Insert(name)
	}

	tests := []struct {
		prefix string
		want   []string
	}{
		{"set_", []string{"set_var", "set_volume"}},
		{"set_vol", []string{"set_volume"}},
		{"s", []string{"set_var", "set_volume", "spawn"}},
		{"q", []string{"quit"}},
		{"zz", nil},
		{"set_volume", []string{"set_volume"}},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, ix.Query(tt.prefix))
		})
	}
}

func TestIndex_EmptyPrefixReturnsAllBounded(t *testing.T) {
	ix := NewIndex(3)
	for i := 0; i < 10; i++ {
		ix.Insert(fmt.Sprintf("cmd%02d", i))
	}

	got := ix.Query("")
	require.Len(t, got, 3)
	assert.Equal(t, []string{"cmd00", "cmd01", "cmd02"}, got)
}

func TestIndex_DuplicateInsertIsNoOp(t *testing.T) {
	ix := NewIndex(0)
	ix.Insert("help")
	ix.Insert("help")

	assert.Equal(t, 1, ix.Len())
	assert.Equal(t, []string{"help"}, ix.Query("h"))
}

func TestIndex_Remove(t *testing.T) {
	ix := NewIndex(10)
	ix.Insert("help")
	ix.Insert("helm")

	ix.Remove("help")

	assert.False(t, ix.Contains("help"))
	assert.True(t, ix.Contains("helm"))
	assert.Equal(t, []string{"helm"}, ix.Query("hel"))
	assert.Equal(t, 1, ix.Len())
}

func TestIndex_RemovePrefixEntryKeepsLonger(t *testing.T) {
	ix := NewIndex(10)
	ix.Insert("set")
	ix.Insert("set_volume")

	ix.Remove("set")

	assert.False(t, ix.Contains("set"))
	assert.True(t, ix.Contains("set_volume"))
	assert.Equal(t, []string{"set_volume"}, ix.Query("set"))
}

func TestIndex_RemoveAbsentIsNoOp(t *testing.T) {
	ix := NewIndex(10)
	ix.Insert("help")

	ix.Remove("quit")
	ix.Remove("hel")

	assert.Equal(t, 1, ix.Len())
	assert.True(t, ix.Contains("help"))
}

func TestIndex_All(t *testing.T) {
	ix := NewIndex(2)
	for _, name := range []string{"clear", "quit", "help"} {
		ix.Insert(name)
	}

	// All ignores the suggestion bound and sorts lexicographically.
	assert.Equal(t, []string{"clear", "help", "quit"}, ix.All())
}

func TestNearest(t *testing.T) {
	candidates := []string{"help", "quit", "set_volume"}

	got, ok := Nearest("hlp", candidates)
	require.True(t, ok)
	assert.Equal(t, "help", got)

	_, ok = Nearest("xyzzy", candidates)
	assert.False(t, ok)

	_, ok = Nearest("", candidates)
	assert.False(t, ok)
}
