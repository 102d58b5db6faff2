package nn

import (
	"github.com/born-ml/autograd/internal/graph"
)

// Parameter represents a trainable scalar.
//
// The value lives outside the session; the graph only sees a placeholder
// node that is fed with the current value on every evaluation.
//
// Example:
//
//	w := nn.NewParameter(s, "w", 3)
//	y := s.Multiply(x, w.Node())
//
//	s.EvalGraph(g, nn.Feed(w))
type Parameter struct {
	name  string
	node  graph.Idx
	value float32
}

// NewParameter adds a placeholder to s and pairs it with an initial value.
func NewParameter(s *graph.Session, name string, value float32) *Parameter {
	return &Parameter{
		name:  name,
		node:  s.Placeholder(),
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Node returns the placeholder node standing for the parameter.
func (p *Parameter) Node() graph.Idx {
	return p.node
}

// Value returns the current value.
func (p *Parameter) Value() float32 {
	return p.value
}

// SetValue replaces the current value. This is typically called by an optimizer.
func (p *Parameter) SetValue(v float32) {
	p.value = v
}

// Feed returns the placeholder feed for params.
func Feed(params ...*Parameter) map[graph.Idx]float32 {
	feed := make(map[graph.Idx]float32, len(params))
	for _, p := range params {
		feed[p.node] = p.value
	}
	return feed
}
