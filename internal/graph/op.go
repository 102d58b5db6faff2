// Package graph implements a scalar reverse-mode automatic differentiation engine.
//
// Nodes live in a Session, an append-only arena that hands out monotonically
// increasing identifiers. A node may only reference identifiers that already
// exist, so ascending identifier order is always a valid evaluation order and
// cycles cannot be expressed.
//
// A Graph is the sorted ancestor closure of a set of outputs. It evaluates
// forward against the session's value cache, and Derive builds a second Graph,
// made of the same primitive operations, whose evaluation yields the partial
// derivative of the outputs with respect to every ancestor.
//
// Example:
//
//	s := graph.NewSession()
//	x := s.Constant(2)
//	w := s.Placeholder()
//	y := s.Constant(8)
//	loss := s.Square(s.Subtract(s.Multiply(x, w), y))
//
//	g := graph.Construct([]graph.Idx{loss}, s)
//	s.EvalGraph(g, map[graph.Idx]float32{w: 3}) // [4]
//
//	dg, grads := g.Derive(s)
//	s.EvalGraph(dg, nil)
//	s.Value(grads.Of(w)) // -8
package graph

import (
	"fmt"
	"math"
)

// Idx identifies a node in a Session.
//
// Identifiers are assigned in creation order and never reused. The inputs of a
// node always have strictly smaller identifiers than the node itself.
type Idx int

// Kind enumerates the primitive operations.
type Kind uint8

// Primitive operation kinds.
const (
	KindConstant Kind = iota
	KindPlaceholder
	KindSum
	KindMultiply
	KindNegative
	KindExponential
	KindLn
)

var kindNames = [...]string{
	KindConstant:    "Constant",
	KindPlaceholder: "Placeholder",
	KindSum:         "Sum",
	KindMultiply:    "Multiply",
	KindNegative:    "Negative",
	KindExponential: "Exponential",
	KindLn:          "Ln",
}

// String returns the operation name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Op is a primitive scalar operation.
//
// Which fields are meaningful depends on Kind:
//   - Constant: Value
//   - Placeholder: none
//   - Sum, Multiply: A and B
//   - Negative, Exponential, Ln: A
//
// Ops are built with the constructors below; composite operations such as
// subtraction or division do not exist as kinds and are composed by the
// Session builders instead.
type Op struct {
	Kind  Kind
	A, B  Idx
	Value float32
}

// Constant returns an op producing a fixed value.
func Constant(v float32) Op { return Op{Kind: KindConstant, Value: v} }

// Placeholder returns a leaf op whose value must be fed at evaluation time.
func Placeholder() Op { return Op{Kind: KindPlaceholder} }

// Sum returns a + b.
func Sum(a, b Idx) Op { return Op{Kind: KindSum, A: a, B: b} }

// Multiply returns a * b.
func Multiply(a, b Idx) Op { return Op{Kind: KindMultiply, A: a, B: b} }

// Negative returns -a.
func Negative(a Idx) Op { return Op{Kind: KindNegative, A: a} }

// Exponential returns e^a.
func Exponential(a Idx) Op { return Op{Kind: KindExponential, A: a} }

// Ln returns the natural logarithm of a.
func Ln(a Idx) Op { return Op{Kind: KindLn, A: a} }

// Inputs returns the declared inputs in order. Leaves return nil.
// Multiply(x, x) reports x twice.
func (op Op) Inputs() []Idx {
	switch op.Kind {
	case KindSum, KindMultiply:
		return []Idx{op.A, op.B}
	case KindNegative, KindExponential, KindLn:
		return []Idx{op.A}
	case KindConstant, KindPlaceholder:
		return nil
	default:
		panic(fmt.Sprintf("graph: unhandled op kind %v", op.Kind))
	}
}

// Forward computes the op's value from already-resolved input values.
//
// No domain checks are made: Ln of a non-positive value yields NaN or -Inf.
// Placeholders have no intrinsic value and panic with ErrPlaceholderEval.
func (op Op) Forward(values map[Idx]float32) float32 {
	switch op.Kind {
	case KindConstant:
		return op.Value
	case KindPlaceholder:
		panic(ErrPlaceholderEval)
	case KindSum:
		return input(values, op.A) + input(values, op.B)
	case KindMultiply:
		return input(values, op.A) * input(values, op.B)
	case KindNegative:
		return -input(values, op.A)
	case KindExponential:
		return float32(math.Exp(float64(input(values, op.A))))
	case KindLn:
		return float32(math.Log(float64(input(values, op.A))))
	default:
		panic(fmt.Sprintf("graph: unhandled op kind %v", op.Kind))
	}
}

func input(values map[Idx]float32, idx Idx) float32 {
	v, ok := values[idx]
	if !ok {
		fault(ErrMissingValue, "input %d not resolved", idx)
	}
	return v
}

// Partial pairs an input with the node computing d(op)/d(input).
type Partial struct {
	Input Idx
	Deriv Idx
}

// PartialDerivs appends to s the nodes computing the local derivative of op
// with respect to each of its inputs.
//
// Constants and placeholders are differentiation leaves and return nil.
// An input that appears twice, as in Multiply(x, x), yields two entries.
func (op Op) PartialDerivs(s *Session) []Partial {
	switch op.Kind {
	case KindSum:
		return []Partial{{op.A, s.One()}, {op.B, s.One()}}
	case KindMultiply:
		return []Partial{{op.A, op.B}, {op.B, op.A}}
	case KindNegative:
		return []Partial{{op.A, s.Constant(-1)}}
	case KindExponential:
		return []Partial{{op.A, s.Exp(op.A)}}
	case KindLn:
		one := s.One()
		return []Partial{{op.A, s.Divide(one, op.A)}}
	case KindConstant, KindPlaceholder:
		return nil
	default:
		panic(fmt.Sprintf("graph: unhandled op kind %v", op.Kind))
	}
}

// String formats the op for debug output, e.g. "Sum(3, 4)".
func (op Op) String() string {
	switch op.Kind {
	case KindConstant:
		return fmt.Sprintf("Constant(%v)", op.Value)
	case KindPlaceholder:
		return "Placeholder"
	case KindSum, KindMultiply:
		return fmt.Sprintf("%v(%d, %d)", op.Kind, op.A, op.B)
	default:
		return fmt.Sprintf("%v(%d)", op.Kind, op.A)
	}
}
