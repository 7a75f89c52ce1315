package ad_test

import (
	"errors"
	"math"
	"testing"

	"github.com/tapir-ml/tapir/internal/ad"
	"github.com/tapir-ml/tapir/internal/parallel"
)

// paraboloid is f(x) = sum(x_i²) with gradient 2x.
func paraboloid(ctx *ad.Context, x []ad.Var) (ad.Var, error) {
	y := x[0].Mul(x[0])
	for _, xi := range x[1:] {
		y = y.Add(xi.Mul(xi))
	}
	return y, nil
}

// TestGradientAt evaluates value and gradient at a single point.
func TestGradientAt(t *testing.T) {
	v, g, err := ad.GradientAt(paraboloid, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("GradientAt() error: %v", err)
	}
	if v != 14 {
		t.Errorf("value = %v, want 14", v)
	}
	for i, want := range []float64{2, 4, 6} {
		if g[i] != want {
			t.Errorf("grad[%d] = %v, want %v", i, g[i], want)
		}
	}
}

// TestGradientBatch_Parallel verifies batch evaluation with worker fan-out
// matches the sequential result: contexts are isolated per evaluation.
func TestGradientBatch_Parallel(t *testing.T) {
	points := make([][]float64, 64)
	for i := range points {
		points[i] = []float64{float64(i), float64(i) / 2}
	}

	cfg := parallel.Config{Enabled: true, NumWorkers: 8, MinPerWorker: 1}
	results := ad.GradientBatch(paraboloid, points, cfg)

	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("point %d: %v", i, r.Err)
		}
		x := points[i]
		wantV := x[0]*x[0] + x[1]*x[1]
		if math.Abs(r.Value-wantV) > 1e-12 {
			t.Errorf("point %d: value = %v, want %v", i, r.Value, wantV)
		}
		if r.Gradient[0] != 2*x[0] || r.Gradient[1] != 2*x[1] {
			t.Errorf("point %d: gradient = %v, want [%v %v]", i, r.Gradient, 2*x[0], 2*x[1])
		}
	}
}

// TestGradientBatch_PropagatesError verifies per-point errors surface in the
// matching result slot.
func TestGradientBatch_PropagatesError(t *testing.T) {
	sentinel := errors.New("bad point")
	f := func(ctx *ad.Context, x []ad.Var) (ad.Var, error) {
		if x[0].Value() < 0 {
			return ad.Var{}, sentinel
		}
		return x[0].Mul(x[0]), nil
	}

	results := ad.GradientBatch(f, [][]float64{{2}, {-1}}, parallel.Config{})
	if results[0].Err != nil {
		t.Errorf("point 0 unexpected error: %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, sentinel) {
		t.Errorf("point 1 error = %v, want sentinel", results[1].Err)
	}
}
