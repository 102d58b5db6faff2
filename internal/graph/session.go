package graph

import (
	"io"
	"log/slog"
)

// Node pairs an identifier with its operation. Nodes are immutable.
type Node struct {
	idx Idx
	op  Op
}

// Idx returns the node's identifier.
func (n Node) Idx() Idx { return n.idx }

// Op returns the node's operation.
func (n Node) Op() Op { return n.op }

// Inputs returns the identifiers the node reads from.
func (n Node) Inputs() []Idx { return n.op.Inputs() }

// Session is the arena that owns every node and the shared value cache.
//
// Nodes are only ever appended. The value cache persists across evaluations
// and is looked up by presence alone, so callers that change fed values
// between evaluations must call Reset first.
//
// A Session is not safe for concurrent use.
type Session struct {
	nodes  []Node
	values map[Idx]float32
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for per-node evaluation traces.
// Traces are emitted at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCapacity pre-allocates room for n nodes.
func WithCapacity(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.nodes = make([]Node, 0, n)
		}
	}
}

// NewSession creates an empty session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		nodes:  make([]Node, 0, 64),
		values: make(map[Idx]float32),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddNode appends op and returns its identifier.
//
// Every input of op must already exist in the session; a forward reference
// panics with ErrUnknownNode, which keeps the arena acyclic.
func (s *Session) AddNode(op Op) Idx {
	idx := Idx(len(s.nodes))
	for _, in := range op.Inputs() {
		if in < 0 || in >= idx {
			fault(ErrUnknownNode, "input %d of new node %d", in, idx)
		}
	}
	s.nodes = append(s.nodes, Node{idx: idx, op: op})
	return idx
}

// Node returns the node for idx. It panics with ErrUnknownNode if idx was not
// issued by this session.
func (s *Session) Node(idx Idx) Node {
	n, ok := s.NodeOK(idx)
	if !ok {
		fault(ErrUnknownNode, "node %d (session has %d)", idx, len(s.nodes))
	}
	return n
}

// NodeOK is like Node but reports whether idx exists instead of panicking.
func (s *Session) NodeOK(idx Idx) (Node, bool) {
	if idx < 0 || int(idx) >= len(s.nodes) {
		return Node{}, false
	}
	return s.nodes[idx], true
}

// Len returns the number of nodes in the arena.
func (s *Session) Len() int {
	return len(s.nodes)
}

// Reset clears the value cache. Nodes are kept.
func (s *Session) Reset() {
	clear(s.values)
}

// Value returns the cached value of idx. It panics with ErrMissingValue if idx
// has not been evaluated or fed since the last Reset.
func (s *Session) Value(idx Idx) float32 {
	v, ok := s.values[idx]
	if !ok {
		fault(ErrMissingValue, "node %d has not been evaluated", idx)
	}
	return v
}

// Lookup returns the cached value of idx and whether it is present.
func (s *Session) Lookup(idx Idx) (float32, bool) {
	v, ok := s.values[idx]
	return v, ok
}

// Feed writes values into the cache. Fed values take precedence over
// computation: Evaluate skips every node already present in the cache.
func (s *Session) Feed(feed map[Idx]float32) {
	for idx, v := range feed {
		if _, ok := s.NodeOK(idx); !ok {
			fault(ErrUnknownNode, "fed node %d", idx)
		}
		s.values[idx] = v
	}
}

// EvalGraph feeds the given values, evaluates g against the session cache and
// returns the outputs in declared order. feed may be nil.
func (s *Session) EvalGraph(g *Graph, feed map[Idx]float32) []float32 {
	s.Feed(feed)
	return g.Evaluate(s.values, s)
}
