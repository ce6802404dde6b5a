package dag

import (
	"fmt"
	"sort"
)

// TypeKey returns the category or part-of-speech key that selects a node's
// plain type: the category when present, otherwise the part of speech.
// Conjunction nodes take the majority key of their children, recursing
// through nested conjunctions.
func (g *Graph) TypeKey(n NodeID) (string, error) {
	a := g.Attrs(n)
	if a.Cat == "conj" {
		return g.majorityKey(n)
	}
	if a.Cat != "" {
		return a.Cat, nil
	}
	return a.Pos, nil
}

// majorityKey picks the most frequent type key among a node's children,
// breaking ties by the lexicographically smallest key.
func (g *Graph) majorityKey(n NodeID) (string, error) {
	edges := g.Children(n)
	if len(edges) == 0 {
		return "", fmt.Errorf("node %d has no children to vote over: %w", g.Attrs(n).ID, ErrMalformedGraph)
	}
	counts := make(map[string]int)
	for _, e := range edges {
		k, err := g.TypeKey(e.Child)
		if err != nil {
			return "", err
		}
		counts[k]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	best := keys[0]
	for _, k := range keys[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return best, nil
}
