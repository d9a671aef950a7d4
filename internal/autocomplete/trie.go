// Package autocomplete maintains the prefix index over registered command
// names. The index is queried on every keystroke while the console is
// open, so lookups walk a rune-keyed trie instead of scanning the
// registry: cost is proportional to the prefix length plus the number of
// results, independent of how many commands are registered.
package autocomplete

import "sort"

// DefaultMaxSuggestions bounds Query results so the suggestion popup
// stays a fixed size regardless of how many names share a prefix.
const DefaultMaxSuggestions = 4

type node struct {
	children map[rune]*node
	// terminal marks the end of a complete entry; the entry text is the
	// path from the root.
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Index is a prefix tree over console completion entries: command names
// plus any configured argument-completion phrases. It is mutated only
// from the registry's single-threaded context.
type Index struct {
	root *node
	size int
	max  int
}

// NewIndex creates an empty index bounding queries to max suggestions.
// max <= 0 selects DefaultMaxSuggestions.
func NewIndex(max int) *Index {
	if max <= 0 {
		max = DefaultMaxSuggestions
	}
	return &Index{root: newNode(), max: max}
}

// Insert adds entry to the index. Inserting a present entry is a no-op.
func (ix *Index) Insert(entry string) {
	if entry == "" {
		return
	}
	n := ix.root
	for _, r := range entry {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}
	if !n.terminal {
		n.terminal = true
		ix.size++
	}
}

// Remove deletes entry from the index, pruning nodes that no longer lead
// to any terminal. Removing an absent entry is a no-op.
func (ix *Index) Remove(entry string) {
	if entry == "" {
		return
	}
	// Record the path so empty branches can be pruned bottom-up.
	path := make([]*node, 0, len(entry)+1)
	runes := []rune(entry)
	n := ix.root
	path = append(path, n)
	for _, r := range runes {
		child, ok := n.children[r]
		if !ok {
			return
		}
		n = child
		path = append(path, n)
	}
	if !n.terminal {
		return
	}
	n.terminal = false
	ix.size--

	for i := len(path) - 1; i > 0; i-- {
		child := path[i]
		if child.terminal || len(child.children) > 0 {
			break
		}
		delete(path[i-1].children, runes[i-1])
	}
}

// Contains reports whether entry is a complete entry in the index.
func (ix *Index) Contains(entry string) bool {
	n := ix.descend(entry)
	return n != nil && n.terminal
}

// Len returns the number of complete entries.
func (ix *Index) Len() int {
	return ix.size
}

// Query returns the entries starting with prefix in lexicographic order,
// capped at the configured suggestion bound. An empty prefix matches
// every entry (still capped).
func (ix *Index) Query(prefix string) []string {
	n := ix.descend(prefix)
	if n == nil {
		return nil
	}
	var out []string
	collect(n, prefix, ix.max, &out)
	return out
}

// All returns every entry in lexicographic order, uncapped. The registry
// consistency tests use it; renderers should prefer Query.
func (ix *Index) All() []string {
	var out []string
	collect(ix.root, "", -1, &out)
	return out
}

func (ix *Index) descend(prefix string) *node {
	n := ix.root
	for _, r := range prefix {
		child, ok := n.children[r]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// collect walks the subtree in lexicographic rune order, appending
// complete entries until limit is reached. limit < 0 means unbounded.
func collect(n *node, acc string, limit int, out *[]string) {
	if limit >= 0 && len(*out) >= limit {
		return
	}
	if n.terminal {
		*out = append(*out, acc)
	}
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, r := range keys {
		collect(n.children[r], acc+string(r), limit, out)
	}
}
