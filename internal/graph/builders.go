package graph

// One adds a Constant(1) node.
func (s *Session) One() Idx {
	return s.Constant(1)
}

// Constant adds a node with a fixed value.
func (s *Session) Constant(v float32) Idx {
	return s.AddNode(Constant(v))
}

// Placeholder adds a leaf whose value is fed at evaluation time.
func (s *Session) Placeholder() Idx {
	return s.AddNode(Placeholder())
}

// Sum adds a + b.
func (s *Session) Sum(a, b Idx) Idx {
	return s.AddNode(Sum(a, b))
}

// Multiply adds a * b.
func (s *Session) Multiply(a, b Idx) Idx {
	return s.AddNode(Multiply(a, b))
}

// Negative adds -a.
func (s *Session) Negative(a Idx) Idx {
	return s.AddNode(Negative(a))
}

// Exp adds e^a.
func (s *Session) Exp(a Idx) Idx {
	return s.AddNode(Exponential(a))
}

// Ln adds the natural logarithm of a.
func (s *Session) Ln(a Idx) Idx {
	return s.AddNode(Ln(a))
}

// The builders below compose primitives, so their derivatives come from the
// primitive rules and need no rule of their own.

// Subtract adds a - b as a + (-b).
func (s *Session) Subtract(a, b Idx) Idx {
	return s.Sum(a, s.Negative(b))
}

// Square adds a * a. Unlike Pow it is defined for negative a.
func (s *Session) Square(a Idx) Idx {
	return s.Multiply(a, a)
}

// Divide adds a / b as a * b^-1.
func (s *Session) Divide(a, b Idx) Idx {
	negOne := s.Constant(-1)
	return s.Multiply(a, s.Pow(b, negOne))
}

// Pow adds a^b as exp(ln(a) * b). The result is NaN for negative a.
func (s *Session) Pow(a, b Idx) Idx {
	return s.Exp(s.Multiply(s.Ln(a), b))
}
