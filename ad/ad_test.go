// Copyright 2026 The Tapir Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ad_test

import (
	"testing"

	"github.com/tapir-ml/tapir/ad"
	"github.com/tapir-ml/tapir/fn"
)

// TestPublicAPI_Gradient exercises the exported surface end to end.
func TestPublicAPI_Gradient(t *testing.T) {
	ctx := ad.NewContext()

	x := ctx.NewVar(3.0)
	y := x.Mul(x)

	grad := ctx.Gradient(y, []ad.Var{x})
	if y.Value() != 9.0 || grad[0] != 6.0 {
		t.Errorf("y=%v grad=%v, want 9 and 6", y.Value(), grad[0])
	}
}

// TestPublicAPI_FnComposition mixes operators with fn primitives.
func TestPublicAPI_FnComposition(t *testing.T) {
	ctx := ad.NewContext()

	// y = exp(x) * x at x = 1; dy/dx = e*x + e = 2e.
	x := ctx.NewVar(1.0)
	y := fn.Exp(x).Mul(x)

	grad := ctx.Gradient(y, []ad.Var{x})
	const e = 2.718281828459045
	if diff := grad[0] - 2*e; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("dy/dx = %v, want %v", grad[0], 2*e)
	}
}

// TestPublicAPI_Batch evaluates gradients at several points with defaults.
func TestPublicAPI_Batch(t *testing.T) {
	f := func(ctx *ad.Context, x []ad.Var) (ad.Var, error) {
		return x[0].Mul(x[0]), nil
	}
	results := ad.GradientBatch(f, [][]float64{{1}, {2}, {3}}, ad.DefaultParallelConfig())
	for i, want := range []float64{2, 4, 6} {
		if results[i].Err != nil || results[i].Gradient[0] != want {
			t.Errorf("point %d: gradient = %v (err %v), want %v", i, results[i].Gradient, results[i].Err, want)
		}
	}
}
