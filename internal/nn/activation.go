package nn

import (
	"github.com/born-ml/autograd/internal/graph"
)

// Activation applies a scalar function to every input node.
// Activations have no parameters.
type Activation struct {
	name string
	fn   func(s *graph.Session, x graph.Idx) graph.Idx
}

// NewSigmoid returns the logistic activation 1 / (1 + e^-x).
func NewSigmoid() *Activation {
	return &Activation{name: "Sigmoid", fn: Sigmoid}
}

// NewTanh returns the hyperbolic tangent activation.
func NewTanh() *Activation {
	return &Activation{name: "Tanh", fn: Tanh}
}

// NewIdentity returns an activation that passes inputs through unchanged.
func NewIdentity() *Activation {
	return &Activation{name: "Identity", fn: func(_ *graph.Session, x graph.Idx) graph.Idx { return x }}
}

// Name returns the activation name.
func (a *Activation) Name() string {
	return a.name
}

// Forward applies the activation to each input.
func (a *Activation) Forward(s *graph.Session, inputs []graph.Idx) []graph.Idx {
	outputs := make([]graph.Idx, len(inputs))
	for i, x := range inputs {
		outputs[i] = a.fn(s, x)
	}
	return outputs
}

// Parameters returns nil.
func (a *Activation) Parameters() []*Parameter {
	return nil
}

// Sigmoid adds 1 / (1 + e^-x) to s.
func Sigmoid(s *graph.Session, x graph.Idx) graph.Idx {
	one := s.One()
	return s.Divide(one, s.Sum(one, s.Exp(s.Negative(x))))
}

// Tanh adds (e^2x - 1) / (e^2x + 1) to s.
func Tanh(s *graph.Session, x graph.Idx) graph.Idx {
	two := s.Constant(2)
	e2x := s.Exp(s.Multiply(two, x))
	one := s.One()
	return s.Divide(s.Subtract(e2x, one), s.Sum(e2x, one))
}
