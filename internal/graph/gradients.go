package graph

import (
	"maps"
	"slices"
)

// Gradients maps an original node to the node computing its gradient.
// Only ancestors of the differentiated outputs have an entry.
type Gradients struct {
	nodes map[Idx]Idx
}

// Of returns the gradient node for idx. It panics with ErrMissingGradient when
// idx has no differentiable path to any output.
func (g *Gradients) Of(idx Idx) Idx {
	d, ok := g.nodes[idx]
	if !ok {
		fault(ErrMissingGradient, "node %d", idx)
	}
	return d
}

// Lookup returns the gradient node for idx and whether one exists.
func (g *Gradients) Lookup(idx Idx) (Idx, bool) {
	d, ok := g.nodes[idx]
	return d, ok
}

// Len returns the number of entries.
func (g *Gradients) Len() int {
	return len(g.nodes)
}

// Nodes returns the original identifiers that have a gradient, ascending.
func (g *Gradients) Nodes() []Idx {
	return slices.Sorted(maps.Keys(g.nodes))
}
