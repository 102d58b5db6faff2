package train

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/born-ml/autograd/internal/graph"
	"github.com/born-ml/autograd/internal/logging"
	"github.com/born-ml/autograd/internal/nn"
)

// BuildDemo wires error = (x*w - y)^2 with constant x and y and a trainable w.
func BuildDemo(c Config, opts ...graph.Option) Model {
	s := graph.NewSession(opts...)
	x := s.Constant(c.X)
	w := nn.NewParameter(s, "w", c.InitialW)
	y := s.Constant(c.Y)
	a := s.Multiply(x, w.Node())
	loss := s.Square(s.Subtract(a, y))

	return Model{
		Session: s,
		Loss:    loss,
		Params:  []*nn.Parameter{w},
	}
}

// DemoReporter prints "Error: <loss>, W_val: <w>".
func DemoReporter(w io.Writer, _ int, loss float32, params []*nn.Parameter) {
	fmt.Fprintf(w, "Error: %v, W_val: %v\n", loss, params[0].Value())
}

// RunDemo validates c, trains the demo model and writes one line per
// iteration to out. It returns the per-iteration losses.
func RunDemo(c Config, out io.Writer, logger *slog.Logger) ([]float32, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	m := BuildDemo(c, graph.WithLogger(logger))
	opt, err := NewOptimizer(c, m.Params)
	if err != nil {
		return nil, err
	}

	logger.Debug("demo model built", "nodes", m.Session.Len(), "optimizer", c.Optimizer)
	t := NewTrainer(m, opt,
		WithOutput(out),
		WithReporter(DemoReporter),
		WithLogger(logger),
	)
	return t.Run(c.Iterations), nil
}
