package ad_test

import (
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/tapir-ml/tapir/internal/ad"
)

// checkGradient compares the reverse-mode derivative of build against a
// central finite-difference estimate of prim at several points.
func checkGradient(t *testing.T, name string, build func(x ad.Var) ad.Var, prim func(float64) float64, points []float64) {
	t.Helper()
	settings := &fd.Settings{Formula: fd.Central}

	for _, p := range points {
		ctx := ad.NewContext()
		x := ctx.NewVar(p)
		y := build(x)

		got := ctx.Gradient(y, []ad.Var{x})[0]
		want := fd.Derivative(prim, p, settings)

		if !scalar.EqualWithinAbsOrRel(got, want, 1e-6, 1e-6) {
			t.Errorf("%s at x=%v: autodiff grad = %v, finite-difference = %v", name, p, got, want)
		}
	}
}

func TestGradientCheck_Arithmetic(t *testing.T) {
	points := []float64{-2.5, -1, -0.3, 0.7, 1, 3.2}

	checkGradient(t, "square",
		func(x ad.Var) ad.Var { return x.Mul(x) },
		func(x float64) float64 { return x * x },
		points)

	checkGradient(t, "rational",
		func(x ad.Var) ad.Var { return x.Mul(x).AddConst(1).ConstDiv(1) }, // 1/(x²+1)
		func(x float64) float64 { return 1 / (x*x + 1) },
		points)

	checkGradient(t, "affine chain",
		func(x ad.Var) ad.Var { return x.MulConst(3).AddConst(2).Mul(x.SubConst(1)) },
		func(x float64) float64 { return (3*x + 2) * (x - 1) },
		points)

	checkGradient(t, "division",
		func(x ad.Var) ad.Var { return x.SubConst(5).Div(x.Mul(x).AddConst(2)) },
		func(x float64) float64 { return (x - 5) / (x*x + 2) },
		points)
}

// TestGradientCheck_MultiInput compares a two-input gradient against finite
// differences per coordinate.
func TestGradientCheck_MultiInput(t *testing.T) {
	f := func(x, y float64) float64 { return x*y + x/(y+3) }

	ctx := ad.NewContext()
	xv := ctx.NewVar(1.7)
	yv := ctx.NewVar(-0.4)
	z := xv.Mul(yv).Add(xv.Div(yv.AddConst(3)))

	grad := ctx.Gradient(z, []ad.Var{xv, yv})

	settings := &fd.Settings{Formula: fd.Central}
	wantX := fd.Derivative(func(x float64) float64 { return f(x, -0.4) }, 1.7, settings)
	wantY := fd.Derivative(func(y float64) float64 { return f(1.7, y) }, -0.4, settings)

	if !scalar.EqualWithinAbsOrRel(grad[0], wantX, 1e-6, 1e-6) {
		t.Errorf("dz/dx = %v, finite-difference = %v", grad[0], wantX)
	}
	if !scalar.EqualWithinAbsOrRel(grad[1], wantY, 1e-6, 1e-6) {
		t.Errorf("dz/dy = %v, finite-difference = %v", grad[1], wantY)
	}
}
