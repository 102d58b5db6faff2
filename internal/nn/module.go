// Package nn builds scalar neural network layers on top of the graph engine.
//
// Layers only call the graph builders, so every layer is differentiated by
// the same primitive rules as any hand-written expression:
//   - Parameter: a placeholder node paired with its externally held value
//   - Linear: fully connected layer of weighted sums
//   - Activations: Sigmoid, Tanh, Identity, composed from exp and division
//   - Loss functions: MSE
//   - Sequential: container for stacking layers
//
// A network is wired once; training feeds updated parameter values into the
// placeholders on every evaluation.
package nn

import (
	"github.com/born-ml/autograd/internal/graph"
)

// Module is anything that owns trainable parameters.
type Module interface {
	// Parameters returns all trainable parameters, including those of nested
	// modules. Modules without parameters return nil.
	Parameters() []*Parameter
}

// Layer is a Module that maps input nodes to output nodes.
//
// Layers can be composed to build multilayer networks:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(s, "hidden", 2, 4, rng),
//	    nn.NewTanh(),
//	    nn.NewLinear(s, "out", 4, 1, rng),
//	    nn.NewSigmoid(),
//	)
type Layer interface {
	Module

	// Forward appends the layer's computation to s and returns its outputs.
	Forward(s *graph.Session, inputs []graph.Idx) []graph.Idx
}
