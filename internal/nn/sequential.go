package nn

import (
	"github.com/born-ml/autograd/internal/graph"
)

// Sequential chains layers: each layer's outputs are the next layer's inputs.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(s, "fc1", 2, 4, rng),
//	    nn.NewTanh(),
//	    nn.NewLinear(s, "fc2", 4, 1, rng),
//	)
//
//	out := model.Forward(s, inputs)
type Sequential struct {
	layers []Layer
}

// NewSequential creates a Sequential container.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{layers: layers}
}

// Add appends a layer.
func (q *Sequential) Add(layer Layer) {
	q.layers = append(q.layers, layer)
}

// Len returns the number of layers.
func (q *Sequential) Len() int {
	return len(q.layers)
}

// Forward applies all layers in order.
func (q *Sequential) Forward(s *graph.Session, inputs []graph.Idx) []graph.Idx {
	out := inputs
	for _, layer := range q.layers {
		out = layer.Forward(s, out)
	}
	return out
}

// Parameters collects the parameters of every layer in order.
func (q *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range q.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}
