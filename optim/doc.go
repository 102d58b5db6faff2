// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers for scalar parameters.
//
// Available optimizers:
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//
// # Usage
//
//	g := graph.Construct([]graph.Idx{loss}, s)
//	dg, grads := g.Derive(s)
//	opt := optim.NewSGD(params, optim.SGDConfig{LR: 0.01})
//
//	for range 100 {
//	    s.EvalGraph(g, nn.Feed(params...))
//	    s.EvalGraph(dg, nil)
//	    opt.Step(s, grads)
//	    s.Reset()
//	}
package optim
