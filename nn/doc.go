// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides scalar neural network layers built on package graph.
//
// # Overview
//
// This package contains:
//   - Layers: Linear
//   - Activations: Sigmoid, Tanh, Identity
//   - Loss functions: MSE
//   - Utilities: Sequential, Module and Layer interfaces, Parameter
//   - Initialization: Xavier
//
// Every layer is composed from the graph primitives, so gradients for any
// network come from a single Derive call.
//
// # Basic Usage
//
//	s := graph.NewSession()
//	rng := rand.New(rand.NewSource(1))
//
//	model := nn.NewSequential(
//	    nn.NewLinear(s, "hidden", 2, 4, rng),
//	    nn.NewTanh(),
//	    nn.NewLinear(s, "out", 4, 1, rng),
//	)
//
//	out := model.Forward(s, []graph.Idx{x0, x1})
//	loss := nn.MSE(s, out, []graph.Idx{target})
//
//	g := graph.Construct([]graph.Idx{loss}, s)
//	s.EvalGraph(g, nn.Feed(model.Parameters()...))
package nn
