package optim

import (
	"github.com/born-ml/autograd/internal/graph"
	"github.com/born-ml/autograd/internal/nn"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*nn.Parameter
	lr         float32
	momentum   float32
	velocities map[*nn.Parameter]float32
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]float32),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step(sess *graph.Session, grads *graph.Gradients) {
	for _, param := range s.params {
		grad, ok := gradient(sess, grads, param)
		if !ok {
			continue
		}

		if s.momentum == 0 {
			param.SetValue(param.Value() - s.lr*grad)
			continue
		}

		v := s.momentum*s.velocities[param] + grad
		s.velocities[param] = v
		param.SetValue(param.Value() - s.lr*v)
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float32) {
	s.lr = lr
}

// GetMomentum returns the momentum factor.
func (s *SGD) GetMomentum() float32 {
	return s.momentum
}
