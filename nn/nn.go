// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/autograd/internal/graph"
	"github.com/born-ml/autograd/internal/nn"
)

// Module is anything that owns trainable parameters.
type Module = nn.Module

// Layer maps input nodes to output nodes.
type Layer = nn.Layer

// Parameter is a trainable scalar backed by a placeholder node.
type Parameter = nn.Parameter

// NewParameter adds a placeholder to s and pairs it with an initial value.
func NewParameter(s *graph.Session, name string, value float32) *Parameter {
	return nn.NewParameter(s, name, value)
}

// Feed returns the placeholder feed for params.
func Feed(params ...*Parameter) map[graph.Idx]float32 {
	return nn.Feed(params...)
}

// Layers

// Linear is a fully connected layer.
type Linear = nn.Linear

// NewLinear creates a Linear layer with Xavier-initialized weights.
//
// Example:
//
//	layer := nn.NewLinear(s, "fc1", 2, 4, rand.New(rand.NewSource(1)))
func NewLinear(s *graph.Session, name string, inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	return nn.NewLinear(s, name, inFeatures, outFeatures, rng)
}

// Sequential chains layers.
type Sequential = nn.Sequential

// NewSequential creates a Sequential container.
func NewSequential(layers ...Layer) *Sequential {
	return nn.NewSequential(layers...)
}

// Activations

// Activation applies a scalar function to every input.
type Activation = nn.Activation

// NewSigmoid returns the logistic activation.
func NewSigmoid() *Activation { return nn.NewSigmoid() }

// NewTanh returns the hyperbolic tangent activation.
func NewTanh() *Activation { return nn.NewTanh() }

// NewIdentity returns the identity activation.
func NewIdentity() *Activation { return nn.NewIdentity() }

// Loss functions

// MSE adds the mean squared error between predictions and targets to s.
func MSE(s *graph.Session, predictions, targets []graph.Idx) graph.Idx {
	return nn.MSE(s, predictions, targets)
}

// Initialization

// Xavier draws a weight from the Xavier/Glorot uniform distribution.
func Xavier(fanIn, fanOut int, rng *rand.Rand) float32 {
	return nn.Xavier(fanIn, fanOut, rng)
}
