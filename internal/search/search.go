// Package search provides fuzzy name matching over an outline node store.
package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/idiampro/idp/internal/outline"
)

// Match is one node whose name fuzzy-matched the search term. Lower rank
// means a closer match.
type Match struct {
	Node *outline.Node
	Rank int
}

// Nodes returns all nodes in the store whose name fuzzy-matches term
// (case-insensitive), best matches first. Ties are broken by prefix so
// results follow document order. An empty term matches nothing.
func Nodes(nodes outline.NodeMap, term string) []Match {
	if strings.TrimSpace(term) == "" {
		return nil
	}

	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var matches []Match
	for _, id := range ids {
		n := nodes[id]
		if n.Type == outline.TypeRoot {
			continue
		}
		if rank := fuzzy.RankMatchFold(term, n.Name); rank >= 0 {
			matches = append(matches, Match{Node: n, Rank: rank})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Rank != matches[j].Rank {
			return matches[i].Rank < matches[j].Rank
		}
		return prefixLess(matches[i].Node.Prefix, matches[j].Node.Prefix)
	})
	return matches
}

// prefixLess orders dotted prefixes numerically segment by segment, so
// "1.10" sorts after "1.2".
func prefixLess(a, b string) bool {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			if len(as[i]) != len(bs[i]) {
				return len(as[i]) < len(bs[i])
			}
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}
