// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ad provides reverse-mode automatic differentiation over tracked
// scalars.
//
// A Context owns a tape of computation records and the arenas backing them.
// Arithmetic on Var values records nodes eagerly; Gradient replays the tape
// backward to accumulate exact derivatives.
//
// Example:
//
//	ctx := ad.NewContext()
//	x := ctx.NewVar(3.0)
//	y := x.Mul(x) // y = x²
//
//	grad := ctx.Gradient(y, []ad.Var{x})
//	fmt.Println(y.Value(), grad[0]) // 9 6
//
// A Context is single-goroutine; use GradientBatch for parallel evaluation
// across isolated contexts.
package ad

import (
	"github.com/tapir-ml/tapir/internal/ad"
	"github.com/tapir-ml/tapir/internal/parallel"
)

// Context owns the tape and nested-scope state for one strand of
// differentiable computation.
type Context = ad.Context

// Var is a tracked scalar: a handle to one node on its context's tape.
type Var = ad.Var

// Checkpoint identifies an entered nested scope.
type Checkpoint = ad.Checkpoint

// Func is a differentiable scalar function of several tracked inputs.
type Func = ad.Func

// BatchResult holds one point's evaluation from GradientBatch.
type BatchResult = ad.BatchResult

// ParallelConfig controls worker fan-out for GradientBatch.
type ParallelConfig = parallel.Config

// NewContext creates an empty differentiation context.
func NewContext() *Context {
	return ad.NewContext()
}

// GradientAt evaluates f at x in a fresh context, returning value and
// gradient.
func GradientAt(f Func, x []float64) (float64, []float64, error) {
	return ad.GradientAt(f, x)
}

// GradientBatch evaluates value and gradient of f at every point, one
// isolated context per evaluation.
func GradientBatch(f Func, points [][]float64, cfg ParallelConfig) []BatchResult {
	return ad.GradientBatch(f, points, cfg)
}

// DefaultParallelConfig returns CPU-count based fan-out defaults.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}
