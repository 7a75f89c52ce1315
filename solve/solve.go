// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package solve provides Newton solvers whose solutions participate in
// automatic differentiation.
//
// Trial iterations run in nested tape scopes and are rolled back; only the
// converged solution is recorded, carrying implicit-function-theorem
// sensitivities to tracked parameters.
package solve

import (
	"github.com/tapir-ml/tapir/internal/ad"
	"github.com/tapir-ml/tapir/internal/solve"
)

// Options configures a Newton solve.
type Options = solve.Options

// Common errors.
var (
	ErrNoConvergence     = solve.ErrNoConvergence
	ErrSingularJacobian  = solve.ErrSingularJacobian
	ErrDimensionMismatch = solve.ErrDimensionMismatch
)

// Newton solves f(x, params) = 0 for the scalar unknown x and returns the
// solution as a tracked scalar differentiable with respect to params.
func Newton(ctx *ad.Context, f func(x ad.Var, params []ad.Var) (ad.Var, error), params []ad.Var, guess float64, opts Options) (ad.Var, error) {
	return solve.Newton(ctx, f, params, guess, opts)
}

// NewtonSystem solves the square system f(x) = 0 and returns the solution
// vector.
func NewtonSystem(ctx *ad.Context, f func(x []ad.Var) ([]ad.Var, error), guess []float64, opts Options) ([]float64, error) {
	return solve.NewtonSystem(ctx, f, guess, opts)
}
