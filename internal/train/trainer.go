// Package train drives gradient-descent training loops over the graph engine.
package train

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/born-ml/autograd/internal/graph"
	"github.com/born-ml/autograd/internal/logging"
	"github.com/born-ml/autograd/internal/nn"
	"github.com/born-ml/autograd/internal/optim"
)

// Model is a wired computation ready for training: a scalar loss node and
// the parameters it depends on, all living in Session.
type Model struct {
	Session *graph.Session
	Loss    graph.Idx
	Params  []*nn.Parameter
}

// Reporter writes the progress line for one iteration. loss is the value
// before the update; params already hold the updated values.
type Reporter func(w io.Writer, iter int, loss float32, params []*nn.Parameter)

// ParamsReporter prints "iter=<n> loss=<v> <name>=<v>...".
func ParamsReporter(w io.Writer, iter int, loss float32, params []*nn.Parameter) {
	var b strings.Builder
	fmt.Fprintf(&b, "iter=%d loss=%v", iter, loss)
	for _, p := range params {
		fmt.Fprintf(&b, " %s=%v", p.Name(), p.Value())
	}
	fmt.Fprintln(w, b.String())
}

// Trainer runs feed, forward, backward, update and reset once per step.
//
// Both graphs are built once in NewTrainer. The session cache is reset after
// every step so the next feed is not shadowed by stale values.
type Trainer struct {
	model    Model
	opt      optim.Optimizer
	forward  *graph.Graph
	backward *graph.Graph
	grads    *graph.Gradients
	out      io.Writer
	report   Reporter
	logger   *slog.Logger
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithOutput sets where progress lines are written. Default: io.Discard.
func WithOutput(w io.Writer) Option {
	return func(t *Trainer) {
		if w != nil {
			t.out = w
		}
	}
}

// WithReporter sets the progress line format. Default: ParamsReporter.
func WithReporter(r Reporter) Option {
	return func(t *Trainer) { t.report = r }
}

// WithLogger sets the logger. Default: a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Trainer) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTrainer builds the forward and derivative graphs for m.
func NewTrainer(m Model, opt optim.Optimizer, opts ...Option) *Trainer {
	forward := graph.Construct([]graph.Idx{m.Loss}, m.Session)
	backward, grads := forward.Derive(m.Session)

	t := &Trainer{
		model:    m,
		opt:      opt,
		forward:  forward,
		backward: backward,
		grads:    grads,
		out:      io.Discard,
		report:   ParamsReporter,
		logger:   logging.NewNop(),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Gradients returns the derivative map of the loss.
func (t *Trainer) Gradients() *graph.Gradients {
	return t.grads
}

// Step runs one iteration and returns the loss before the update.
func (t *Trainer) Step(iter int) float32 {
	s := t.model.Session
	loss := s.EvalGraph(t.forward, nn.Feed(t.model.Params...))[0]
	s.EvalGraph(t.backward, nil)
	t.opt.Step(s, t.grads)
	s.Reset()

	t.report(t.out, iter, loss, t.model.Params)
	return loss
}

// Run performs iterations steps and returns the loss of each.
func (t *Trainer) Run(iterations int) []float32 {
	t.logger.Info("training started",
		"iterations", iterations,
		"params", len(t.model.Params),
		"forward_nodes", t.forward.Len(),
		"backward_nodes", t.backward.Len(),
		"lr", t.opt.GetLR(),
	)

	losses := make([]float32, 0, iterations)
	for i := range iterations {
		losses = append(losses, t.Step(i))
	}

	if n := len(losses); n > 0 {
		t.logger.Info("training finished", "first_loss", losses[0], "final_loss", losses[n-1])
	}
	return losses
}
