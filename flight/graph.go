package flight

import "sort"

// Graph is the immutable adjacency structure the search walks: each origin
// node maps to the ordered collection of its outgoing legs.
//
// A Graph is built once by NewGraph (or the codec) and offers no mutation
// API, so it may be shared freely across concurrent searches.
type Graph struct {
	outgoing map[string][]Leg // origin → outgoing legs, input order preserved
	legCount int              // total legs stored
}

// NewGraph builds a Graph from legs, grouping them by Leg.Origin and
// preserving input order within each origin. Edge order carries no semantic
// meaning, but a fixed input must reproduce a fixed enumeration order.
// Complexity: O(L).
func NewGraph(legs []Leg, opts ...GraphOption) *Graph {
	// 1. Apply construction options.
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Group by origin, skipping price-capped legs.
	g := &Graph{outgoing: make(map[string][]Leg)}
	for _, leg := range legs {
		if cfg.capped && leg.Cost > cfg.maxCost {
			continue
		}
		g.outgoing[leg.Origin] = append(g.outgoing[leg.Origin], leg)
		g.legCount++
	}

	return g
}

// Outgoing returns the ordered outgoing legs of node, or nil if the node is
// unknown. The returned slice is the graph's own storage: callers must treat
// it as read-only.
func (g *Graph) Outgoing(node string) []Leg {
	return g.outgoing[node]
}

// Nodes returns every origin node that has at least one outgoing leg,
// sorted lexicographically for reproducible iteration.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.outgoing))
	for id := range g.outgoing {
		nodes = append(nodes, id)
	}
	sort.Strings(nodes)

	return nodes
}

// LegCount reports the total number of legs stored in the graph.
func (g *Graph) LegCount() int {
	return g.legCount
}
