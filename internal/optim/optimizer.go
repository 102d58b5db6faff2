// Package optim implements optimization algorithms for scalar parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read gradient values from the session cache, so the derivative
// graph must be evaluated before Step is called.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for range iterations {
//	    s.EvalGraph(forward, nn.Feed(params...))
//	    s.EvalGraph(backward, nil)
//	    optimizer.Step(s, grads)
//	    s.Reset()
//	}
package optim

import (
	"github.com/born-ml/autograd/internal/graph"
	"github.com/born-ml/autograd/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to all parameters.
	//
	// grads maps parameter placeholders to gradient nodes; their values must
	// already be in the session cache. Parameters without a gradient entry
	// did not take part in the differentiated outputs and are skipped.
	Step(s *graph.Session, grads *graph.Gradients)

	// GetLR returns the current learning rate.
	GetLR() float32

	// SetLR updates the learning rate, e.g. for scheduling.
	SetLR(lr float32)
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float32 // Learning rate
}

// gradient returns the evaluated gradient of param, if it has one.
func gradient(s *graph.Session, grads *graph.Gradients, param *nn.Parameter) (float32, bool) {
	if param == nil {
		return 0, false
	}
	d, ok := grads.Lookup(param.Node())
	if !ok {
		return 0, false
	}
	return s.Value(d), true
}
