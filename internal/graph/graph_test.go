package graph_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/autograd/internal/graph"
)

// buildLoss builds error = (x*w - y)^2 with x=2, y=8 and w a placeholder.
func buildLoss(s *graph.Session) (w, loss graph.Idx) {
	x := s.Constant(2)
	w = s.Placeholder()
	y := s.Constant(8)
	a := s.Multiply(x, w)
	loss = s.Square(s.Subtract(a, y))
	return w, loss
}

// requireClosed checks that every input of every node appears earlier in g.
func requireClosed(t *testing.T, g *graph.Graph, s *graph.Session) {
	t.Helper()
	pos := make(map[graph.Idx]int, g.Len())
	for i, idx := range g.Nodes() {
		for _, in := range s.Node(idx).Inputs() {
			p, ok := pos[in]
			require.Truef(t, ok, "input %d of node %d missing or out of order", in, idx)
			require.Less(t, p, i)
		}
		pos[idx] = i
	}
}

func TestConstruct_Closure(t *testing.T) {
	s := graph.NewSession()
	a := s.Constant(1)
	b := s.Placeholder()
	unused := s.Constant(5)
	c := s.Multiply(a, b)
	d := s.Exp(c)
	e := s.Sum(d, a)

	g := graph.Construct([]graph.Idx{e}, s)
	if diff := cmp.Diff([]graph.Idx{a, b, c, d, e}, g.Nodes()); diff != "" {
		t.Errorf("Nodes() mismatch (-want +got):\n%s", diff)
	}
	assert.NotContains(t, g.Nodes(), unused)
	assert.Equal(t, 5, g.Len())
	requireClosed(t, g, s)
}

func TestConstruct_MultipleOutputs(t *testing.T) {
	s := graph.NewSession()
	a := s.Constant(3)
	b := s.Constant(4)
	sum := s.Sum(a, b)
	prod := s.Multiply(a, b)

	g := graph.Construct([]graph.Idx{prod, sum, prod}, s)
	if diff := cmp.Diff([]graph.Idx{a, b, sum, prod}, g.Nodes()); diff != "" {
		t.Errorf("Nodes() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []graph.Idx{prod, sum, prod}, g.Outputs())
	assert.Equal(t, []float32{12, 7, 12}, s.EvalGraph(g, nil))
}

func TestConstruct_UnknownOutput(t *testing.T) {
	s := graph.NewSession()
	assert.Panics(t, func() { graph.Construct([]graph.Idx{0}, s) })
}

func TestGraph_Derive_IsClosed(t *testing.T) {
	s := graph.NewSession()
	_, loss := buildLoss(s)
	g := graph.Construct([]graph.Idx{loss}, s)
	requireClosed(t, g, s)

	dg, _ := g.Derive(s)
	requireClosed(t, dg, s)
}

func TestGraph_Derive_LossScenario(t *testing.T) {
	s := graph.NewSession()
	w, loss := buildLoss(s)
	g := graph.Construct([]graph.Idx{loss}, s)

	out := s.EvalGraph(g, map[graph.Idx]float32{w: 3})
	assert.Equal(t, []float32{4}, out)

	dg, grads := g.Derive(s)
	s.EvalGraph(dg, nil)
	// 2 * (x*w - y) * x = 2 * (6 - 8) * 2
	assert.Equal(t, float32(-8), s.Value(grads.Of(w)))
	assert.Equal(t, float32(1), s.Value(grads.Of(loss)))
}

// A node consumed twice must receive the sum of both contributions.
func TestGraph_Derive_AccumulatesConsumers(t *testing.T) {
	s := graph.NewSession()
	x := s.Placeholder()
	sq := s.Square(x)
	three := s.Constant(3)
	lin := s.Multiply(three, x)
	y := s.Sum(sq, lin) // x^2 + 3x

	g := graph.Construct([]graph.Idx{y}, s)
	s.EvalGraph(g, map[graph.Idx]float32{x: 5})

	dg, grads := g.Derive(s)
	s.EvalGraph(dg, nil)
	assert.Equal(t, float32(2*5+3), s.Value(grads.Of(x)))
}

func TestGraph_Derive_RepeatedOutputAccumulatesSeeds(t *testing.T) {
	s := graph.NewSession()
	a := s.Constant(2)
	b := s.Constant(3)
	c := s.Multiply(a, b)

	g := graph.Construct([]graph.Idx{c, c}, s)
	s.EvalGraph(g, nil)

	dg, grads := g.Derive(s)
	s.EvalGraph(dg, nil)
	assert.Equal(t, float32(2), s.Value(grads.Of(c)))
	assert.Equal(t, float32(6), s.Value(grads.Of(a)))
	assert.Equal(t, float32(4), s.Value(grads.Of(b)))
}

func TestGraph_Derive_MultipleOutputsSum(t *testing.T) {
	s := graph.NewSession()
	x := s.Constant(4)
	sq := s.Square(x)
	neg := s.Negative(x)

	g := graph.Construct([]graph.Idx{sq, neg}, s)
	s.EvalGraph(g, nil)

	dg, grads := g.Derive(s)
	s.EvalGraph(dg, nil)
	assert.Equal(t, float32(2*4-1), s.Value(grads.Of(x)))
}

func TestGraph_Derive_OutputsCoverEveryGradient(t *testing.T) {
	s := graph.NewSession()
	w, loss := buildLoss(s)
	g := graph.Construct([]graph.Idx{loss}, s)

	dg, grads := g.Derive(s)
	require.Equal(t, g.Len(), grads.Len(), "every ancestor receives a gradient")
	assert.Equal(t, g.Nodes(), grads.Nodes())

	outs := dg.Outputs()
	require.Len(t, outs, grads.Len())
	for i, idx := range grads.Nodes() {
		assert.Equal(t, grads.Of(idx), outs[i])
	}

	s.EvalGraph(g, map[graph.Idx]float32{w: 1})
	values := s.EvalGraph(dg, nil)
	assert.Len(t, values, grads.Len())
}

func TestGraph_Derive_MissingGradient(t *testing.T) {
	s := graph.NewSession()
	used := s.Placeholder()
	unused := s.Placeholder()
	y := s.Negative(used)

	g := graph.Construct([]graph.Idx{y}, s)
	_, grads := g.Derive(s)

	_, ok := grads.Lookup(unused)
	assert.False(t, ok)
	assert.PanicsWithError(t, "graph: missing gradient: node 1", func() {
		grads.Of(unused)
	})
}

// After Reset, new feed values must flow through forward and derivative graphs.
func TestGraph_ResetInvalidatesDependents(t *testing.T) {
	s := graph.NewSession()
	w, loss := buildLoss(s)
	g := graph.Construct([]graph.Idx{loss}, s)
	dg, grads := g.Derive(s)

	s.EvalGraph(g, map[graph.Idx]float32{w: 3})
	s.EvalGraph(dg, nil)
	require.Equal(t, float32(-8), s.Value(grads.Of(w)))

	s.Reset()
	out := s.EvalGraph(g, map[graph.Idx]float32{w: 5})
	s.EvalGraph(dg, nil)
	assert.Equal(t, []float32{4}, out)
	assert.Equal(t, float32(8), s.Value(grads.Of(w)))
}

// Second derivatives fall out of differentiating the derivative graph.
func TestGraph_Derive_SecondOrder(t *testing.T) {
	s := graph.NewSession()
	x := s.Placeholder()
	cube := s.Multiply(s.Square(x), x)

	g := graph.Construct([]graph.Idx{cube}, s)
	_, grads := g.Derive(s)
	dx := grads.Of(x)

	g2 := graph.Construct([]graph.Idx{dx}, s)
	dg2, grads2 := g2.Derive(s)

	s.EvalGraph(g2, map[graph.Idx]float32{x: 2})
	s.EvalGraph(dg2, nil)
	assert.Equal(t, float32(12), s.Value(dx))
	assert.InDelta(t, 12, s.Value(grads2.Of(x)), tol)
}

// numericalGradient approximates df/dx with central differences.
func numericalGradient(f func(float64) float64, x, eps float64) float64 {
	return (f(x+eps) - f(x-eps)) / (2 * eps)
}

func TestGraph_Derive_MatchesFiniteDifferences(t *testing.T) {
	// f(x) = exp(x) * ln(x) + x / (x + 1) - x^0.5
	f := func(x float64) float64 {
		return math.Exp(x)*math.Log(x) + x/(x+1) - math.Pow(x, 0.5)
	}

	for _, point := range []float32{0.5, 1.5, 3} {
		s := graph.NewSession()
		x := s.Placeholder()
		one := s.One()
		half := s.Constant(0.5)
		left := s.Multiply(s.Exp(x), s.Ln(x))
		right := s.Divide(x, s.Sum(x, one))
		y := s.Subtract(s.Sum(left, right), s.Pow(x, half))

		g := graph.Construct([]graph.Idx{y}, s)
		out := s.EvalGraph(g, map[graph.Idx]float32{x: point})
		assert.InDelta(t, f(float64(point)), out[0], 1e-4)

		dg, grads := g.Derive(s)
		s.EvalGraph(dg, nil)
		want := numericalGradient(f, float64(point), 1e-6)
		assert.InDelta(t, want, s.Value(grads.Of(x)), 1e-3, "x=%v", point)
	}
}
