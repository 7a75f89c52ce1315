// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fn provides differentiable scalar math functions.
//
// Functions with restricted domains validate their arguments before
// recording anything on the tape; a returned error guarantees the tape was
// not touched.
//
// Example:
//
//	ctx := ad.NewContext()
//	x := ctx.NewVar(2.0)
//	y, err := fn.Log(x)
package fn

import (
	"github.com/tapir-ml/tapir/internal/ad"
	"github.com/tapir-ml/tapir/internal/fn"
)

// Exp returns e**x.
func Exp(x ad.Var) ad.Var { return fn.Exp(x) }

// Expm1 returns e**x - 1, accurate for x near zero.
func Expm1(x ad.Var) ad.Var { return fn.Expm1(x) }

// Log returns the natural logarithm of x. x must be positive.
func Log(x ad.Var) (ad.Var, error) { return fn.Log(x) }

// Log1p returns log(1 + x). x must exceed -1.
func Log1p(x ad.Var) (ad.Var, error) { return fn.Log1p(x) }

// Sqrt returns the square root of x. x must be nonnegative.
func Sqrt(x ad.Var) (ad.Var, error) { return fn.Sqrt(x) }

// Square returns x*x.
func Square(x ad.Var) ad.Var { return fn.Square(x) }

// Inv returns 1/x.
func Inv(x ad.Var) ad.Var { return fn.Inv(x) }

// Pow returns x**p for a constant exponent p.
func Pow(x ad.Var, p float64) ad.Var { return fn.Pow(x, p) }

// Hypot returns sqrt(x*x + y*y) without intermediate overflow.
func Hypot(x, y ad.Var) ad.Var { return fn.Hypot(x, y) }

// Sin returns the sine of x (radians).
func Sin(x ad.Var) ad.Var { return fn.Sin(x) }

// Cos returns the cosine of x (radians).
func Cos(x ad.Var) ad.Var { return fn.Cos(x) }

// Tan returns the tangent of x (radians).
func Tan(x ad.Var) ad.Var { return fn.Tan(x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x ad.Var) ad.Var { return fn.Tanh(x) }

// InvLogit returns the logistic function of x.
func InvLogit(x ad.Var) ad.Var { return fn.InvLogit(x) }

// Phi returns the standard normal CDF at x.
func Phi(x ad.Var) ad.Var { return fn.Phi(x) }

// PhiApprox returns a fast logistic approximation of the standard normal
// CDF.
func PhiApprox(x ad.Var) ad.Var { return fn.PhiApprox(x) }

// Lgamma returns log(Gamma(x)) for positive x.
func Lgamma(x ad.Var) (ad.Var, error) { return fn.Lgamma(x) }

// LgammaStirlingDiff returns log(Gamma(x)) minus its Stirling approximation.
func LgammaStirlingDiff(x float64) (float64, error) { return fn.LgammaStirlingDiff(x) }

// Sum returns the sum of xs as a single n-ary node. xs must be non-empty.
func Sum(xs []ad.Var) (ad.Var, error) { return fn.Sum(xs) }

// LogSumExp returns log(sum(exp(xs))), max-shifted for stability. xs must be
// non-empty.
func LogSumExp(xs []ad.Var) (ad.Var, error) { return fn.LogSumExp(xs) }
