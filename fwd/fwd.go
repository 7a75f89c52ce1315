// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fwd provides forward-mode automatic differentiation with dual
// numbers: tape-free, propagating one directional derivative eagerly through
// each operation.
package fwd

import "github.com/tapir-ml/tapir/internal/fwd"

// Dual is a dual number: a value and its derivative along one direction.
type Dual = fwd.Dual

// Const returns a dual with zero derivative.
func Const(v float64) Dual { return fwd.Const(v) }

// Seed returns a dual seeded as the differentiation direction.
func Seed(v float64) Dual { return fwd.Seed(v) }

// Exp returns e**d.
func Exp(d Dual) Dual { return fwd.Exp(d) }

// Log returns the natural logarithm of d.
func Log(d Dual) Dual { return fwd.Log(d) }

// Sqrt returns the square root of d.
func Sqrt(d Dual) Dual { return fwd.Sqrt(d) }

// Sin returns the sine of d.
func Sin(d Dual) Dual { return fwd.Sin(d) }

// Cos returns the cosine of d.
func Cos(d Dual) Dual { return fwd.Cos(d) }

// Tanh returns the hyperbolic tangent of d.
func Tanh(d Dual) Dual { return fwd.Tanh(d) }

// Derivative returns f'(x) for a scalar function expressed over duals.
func Derivative(f func(Dual) Dual, x float64) float64 { return fwd.Derivative(f, x) }

// Directional returns the directional derivative of f at x along dir.
func Directional(f func([]Dual) Dual, x, dir []float64) float64 {
	return fwd.Directional(f, x, dir)
}
