package autocomplete

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Nearest returns the registered entry most similar to name, for
// "unknown command: foo, did you mean bar?" output. It returns false when
// nothing matches fuzzily at all.
func Nearest(name string, candidates []string) (string, bool) {
	if name == "" || len(candidates) == 0 {
		return "", false
	}
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}
