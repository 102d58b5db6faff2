package nn

import (
	"fmt"

	"github.com/born-ml/autograd/internal/graph"
)

// MSE adds the mean squared error between predictions and targets to s.
//
// Loss = mean((predictions - targets)^2)
//
// It panics if the slices are empty or of different lengths.
func MSE(s *graph.Session, predictions, targets []graph.Idx) graph.Idx {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("MSE: %d predictions for %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("MSE: no predictions")
	}

	total := s.Square(s.Subtract(predictions[0], targets[0]))
	for i := 1; i < len(predictions); i++ {
		total = s.Sum(total, s.Square(s.Subtract(predictions[i], targets[i])))
	}
	if len(predictions) == 1 {
		return total
	}
	return s.Multiply(total, s.Constant(1/float32(len(predictions))))
}
