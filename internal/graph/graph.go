package graph

import (
	"context"
	"log/slog"
	"maps"
	"slices"
)

// Graph is the topologically ordered ancestor closure of a set of outputs.
//
// Every input of a node in the closure appears earlier in it. A Graph holds
// identifiers into the Session it was constructed from and must not be used
// with any other session.
type Graph struct {
	nodes   []Idx
	outputs []Idx
}

// Construct builds the closure of outputs by a post-order depth-first walk
// over declared inputs, then sorts it ascending. Inputs always precede their
// consumers in identifier order, so the sorted closure is a topological order.
//
// outputs may contain duplicates; Evaluate resolves each occurrence.
func Construct(outputs []Idx, s *Session) *Graph {
	visited := make(map[Idx]struct{})
	order := make([]Idx, 0, len(outputs))
	var stack []Idx

	for _, out := range outputs {
		s.Node(out)
		stack = append(stack[:0], out)
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if _, ok := visited[top]; ok {
				stack = stack[:len(stack)-1]
				continue
			}
			pending := false
			for _, in := range s.Node(top).Inputs() {
				if _, ok := visited[in]; !ok {
					stack = append(stack, in)
					pending = true
				}
			}
			if pending {
				continue
			}
			visited[top] = struct{}{}
			order = append(order, top)
			stack = stack[:len(stack)-1]
		}
	}

	slices.Sort(order)
	return &Graph{
		nodes:   order,
		outputs: slices.Clone(outputs),
	}
}

// Nodes returns a copy of the ordered closure.
func (g *Graph) Nodes() []Idx {
	return slices.Clone(g.nodes)
}

// Outputs returns a copy of the declared outputs.
func (g *Graph) Outputs() []Idx {
	return slices.Clone(g.outputs)
}

// Len returns the number of nodes in the closure.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Evaluate computes every node of g that is not already present in values,
// in topological order, and stores the results in values. It returns the
// outputs in declared order.
//
// Presence in values is the only memoization test: fed placeholders and any
// other pre-seeded entries win over computation, and stale entries are reused.
// A placeholder without a fed value panics with ErrPlaceholderEval.
func (g *Graph) Evaluate(values map[Idx]float32, s *Session) []float32 {
	trace := s.logger.Enabled(context.Background(), slog.LevelDebug)
	for _, idx := range g.nodes {
		if _, ok := values[idx]; ok {
			continue
		}
		op := s.Node(idx).Op()
		if op.Kind == KindPlaceholder {
			fault(ErrPlaceholderEval, "node %d", idx)
		}
		v := op.Forward(values)
		values[idx] = v
		if trace {
			s.logger.Debug("evaluated node", "idx", idx, "op", op.String(), "value", v)
		}
	}

	out := make([]float32, len(g.outputs))
	for i, idx := range g.outputs {
		v, ok := values[idx]
		if !ok {
			fault(ErrMissingValue, "output %d", idx)
		}
		out[i] = v
	}
	return out
}

// Derive builds the reverse-mode derivative graph of g.
//
// Each output is seeded with a Constant(1); an output listed k times receives
// k seeds, so the result is the gradient of the sum of the output vector. The
// closure is then walked in descending identifier order. For every node with a
// gradient, each (input, local derivative) pair produces a Multiply node that
// is summed into the input's gradient. All consumers of a node have larger
// identifiers, so its gradient is complete by the time it is visited.
//
// The returned Graph outputs every gradient node, ordered by ascending
// original identifier, so one evaluation resolves them all. New nodes are
// appended to s.
func (g *Graph) Derive(s *Session) (*Graph, *Gradients) {
	grads := make(map[Idx]Idx, len(g.nodes))
	accumulate := func(target, contribution Idx) {
		if prev, ok := grads[target]; ok {
			grads[target] = s.Sum(contribution, prev)
			return
		}
		grads[target] = contribution
	}

	for _, out := range g.outputs {
		accumulate(out, s.One())
	}

	for i := len(g.nodes) - 1; i >= 0; i-- {
		idx := g.nodes[i]
		upstream, ok := grads[idx]
		if !ok {
			continue
		}
		for _, p := range s.Node(idx).Op().PartialDerivs(s) {
			accumulate(p.Input, s.Multiply(upstream, p.Deriv))
		}
	}

	keys := slices.Sorted(maps.Keys(grads))
	outputs := make([]Idx, len(keys))
	for i, k := range keys {
		outputs[i] = grads[k]
	}
	return Construct(outputs, s), &Gradients{nodes: grads}
}
