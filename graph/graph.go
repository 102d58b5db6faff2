// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides scalar reverse-mode automatic differentiation.
//
// Computations are built node by node in a Session, collected into a Graph
// over the outputs of interest, evaluated, and differentiated symbolically:
// Derive returns a second Graph whose evaluation yields every gradient.
//
// Example:
//
//	import "github.com/born-ml/autograd/graph"
//
//	func main() {
//	    s := graph.NewSession()
//	    x := s.Constant(2)
//	    w := s.Placeholder()
//	    y := s.Constant(8)
//	    loss := s.Square(s.Subtract(s.Multiply(x, w), y))
//
//	    g := graph.Construct([]graph.Idx{loss}, s)
//	    dg, grads := g.Derive(s)
//
//	    s.EvalGraph(g, map[graph.Idx]float32{w: 3})
//	    s.EvalGraph(dg, nil)
//	    fmt.Println(s.Value(grads.Of(w))) // -8
//	    s.Reset()
//	}
package graph

import (
	"log/slog"

	"github.com/born-ml/autograd/internal/graph"
)

// Idx identifies a node in a Session.
type Idx = graph.Idx

// Kind enumerates the primitive operations.
type Kind = graph.Kind

// Primitive operation kinds.
const (
	KindConstant    = graph.KindConstant
	KindPlaceholder = graph.KindPlaceholder
	KindSum         = graph.KindSum
	KindMultiply    = graph.KindMultiply
	KindNegative    = graph.KindNegative
	KindExponential = graph.KindExponential
	KindLn          = graph.KindLn
)

// Op is a primitive scalar operation.
type Op = graph.Op

// Node pairs an identifier with its operation.
type Node = graph.Node

// Partial pairs an input with the node computing the local derivative.
type Partial = graph.Partial

// Session owns all nodes and the shared value cache.
type Session = graph.Session

// Option configures a Session.
type Option = graph.Option

// Graph is the ordered ancestor closure of a set of outputs.
type Graph = graph.Graph

// Gradients maps original nodes to their gradient nodes.
type Gradients = graph.Gradients

// Errors carried by contract-violation panics.
var (
	ErrUnknownNode     = graph.ErrUnknownNode
	ErrMissingValue    = graph.ErrMissingValue
	ErrMissingGradient = graph.ErrMissingGradient
	ErrPlaceholderEval = graph.ErrPlaceholderEval
)

// NewSession creates an empty session.
//
// Example:
//
//	s := graph.NewSession(graph.WithLogger(logger))
func NewSession(opts ...Option) *Session {
	return graph.NewSession(opts...)
}

// WithLogger sets the logger used for debug-level evaluation traces.
func WithLogger(logger *slog.Logger) Option {
	return graph.WithLogger(logger)
}

// WithCapacity pre-allocates room for n nodes.
func WithCapacity(n int) Option {
	return graph.WithCapacity(n)
}

// Construct builds the sorted ancestor closure of outputs.
func Construct(outputs []Idx, s *Session) *Graph {
	return graph.Construct(outputs, s)
}
