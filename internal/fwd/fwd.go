// Package fwd implements forward-mode automatic differentiation with dual
// numbers.
//
// Unlike the reverse-mode engine, forward mode needs no tape: each Dual
// carries its value and the derivative of that value with respect to a
// single chosen direction, propagated eagerly through every operation. It is
// the natural tool for directional derivatives and for functions with few
// inputs and many outputs, and it composes with the reverse-mode engine for
// mixed-mode Jacobian work.
package fwd

import "math"

// Dual is a dual number: a value and its derivative along one direction.
type Dual struct {
	Val float64 // primal value
	Dot float64 // derivative of Val along the seeded direction
}

// Const returns a dual with zero derivative.
func Const(v float64) Dual { return Dual{Val: v} }

// Seed returns a dual seeded as the differentiation direction (Dot = 1).
func Seed(v float64) Dual { return Dual{Val: v, Dot: 1} }

// Add returns d + e.
func (d Dual) Add(e Dual) Dual { return Dual{d.Val + e.Val, d.Dot + e.Dot} }

// Sub returns d - e.
func (d Dual) Sub(e Dual) Dual { return Dual{d.Val - e.Val, d.Dot - e.Dot} }

// Mul returns d * e.
func (d Dual) Mul(e Dual) Dual {
	return Dual{d.Val * e.Val, d.Dot*e.Val + d.Val*e.Dot}
}

// Div returns d / e.
func (d Dual) Div(e Dual) Dual {
	q := d.Val / e.Val
	return Dual{q, (d.Dot - q*e.Dot) / e.Val}
}

// Neg returns -d.
func (d Dual) Neg() Dual { return Dual{-d.Val, -d.Dot} }

// Scale returns c * d.
func (d Dual) Scale(c float64) Dual { return Dual{c * d.Val, c * d.Dot} }

// Exp returns e**d.
func Exp(d Dual) Dual {
	v := math.Exp(d.Val)
	return Dual{v, v * d.Dot}
}

// Log returns the natural logarithm of d.
func Log(d Dual) Dual {
	return Dual{math.Log(d.Val), d.Dot / d.Val}
}

// Sqrt returns the square root of d.
func Sqrt(d Dual) Dual {
	v := math.Sqrt(d.Val)
	return Dual{v, 0.5 * d.Dot / v}
}

// Sin returns the sine of d.
func Sin(d Dual) Dual {
	s, c := math.Sincos(d.Val)
	return Dual{s, c * d.Dot}
}

// Cos returns the cosine of d.
func Cos(d Dual) Dual {
	s, c := math.Sincos(d.Val)
	return Dual{c, -s * d.Dot}
}

// Tanh returns the hyperbolic tangent of d.
func Tanh(d Dual) Dual {
	t := math.Tanh(d.Val)
	return Dual{t, (1 - t*t) * d.Dot}
}

// Derivative returns f'(x) for a scalar function expressed over duals.
func Derivative(f func(Dual) Dual, x float64) float64 {
	return f(Seed(x)).Dot
}

// Directional returns the directional derivative of f at x along dir,
// computed in a single forward pass.
func Directional(f func([]Dual) Dual, x, dir []float64) float64 {
	args := make([]Dual, len(x))
	for i := range x {
		args[i] = Dual{Val: x[i], Dot: dir[i]}
	}
	return f(args).Dot
}
