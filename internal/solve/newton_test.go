package solve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapir-ml/tapir/internal/ad"
	"github.com/tapir-ml/tapir/internal/solve"
)

// TestNewton_Sqrt2 solves x² - 2 = 0.
func TestNewton_Sqrt2(t *testing.T) {
	ctx := ad.NewContext()

	root, err := solve.Newton(ctx,
		func(x ad.Var, _ []ad.Var) (ad.Var, error) {
			return x.Mul(x).SubConst(2), nil
		},
		nil, 1.0, solve.Options{})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root.Value(), 1e-10)
}

// TestNewton_ParameterSensitivity solves x² - p = 0 for tracked p and checks
// the implicit-function derivative dx*/dp = 1/(2*sqrt(p)).
func TestNewton_ParameterSensitivity(t *testing.T) {
	ctx := ad.NewContext()
	p := ctx.NewVar(4.0)

	root, err := solve.Newton(ctx,
		func(x ad.Var, params []ad.Var) (ad.Var, error) {
			return x.Mul(x).Sub(params[0]), nil
		},
		[]ad.Var{p}, 1.0, solve.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, root.Value(), 1e-10)

	grad := ctx.Gradient(root, []ad.Var{p})
	assert.InDelta(t, 0.25, grad[0], 1e-8) // 1/(2*sqrt(4))
}

// TestNewton_SensitivityComposes verifies downstream expressions of the
// solution differentiate through it.
func TestNewton_SensitivityComposes(t *testing.T) {
	ctx := ad.NewContext()
	p := ctx.NewVar(9.0)

	root, err := solve.Newton(ctx,
		func(x ad.Var, params []ad.Var) (ad.Var, error) {
			return x.Mul(x).Sub(params[0]), nil
		},
		[]ad.Var{p}, 2.0, solve.Options{})
	require.NoError(t, err)

	// y = 5 * x*(p), dy/dp = 5/(2*sqrt(p)) = 5/6.
	y := root.MulConst(5)
	grad := ctx.Gradient(y, []ad.Var{p})
	assert.InDelta(t, 5.0/6.0, grad[0], 1e-8)
}

// TestNewton_TapeStaysBounded verifies trial iterations leave no nodes
// behind: only the solution primitive is recorded.
func TestNewton_TapeStaysBounded(t *testing.T) {
	ctx := ad.NewContext()
	p := ctx.NewVar(2.0)
	before := ctx.NumNodes()

	_, err := solve.Newton(ctx,
		func(x ad.Var, params []ad.Var) (ad.Var, error) {
			return x.Mul(x).Sub(params[0]), nil
		},
		[]ad.Var{p}, 1.0, solve.Options{})
	require.NoError(t, err)

	assert.Equal(t, before+1, ctx.NumNodes(), "solver must record exactly one node")
}

// TestNewton_NoConvergence hits the iteration limit on a root-free residual.
func TestNewton_NoConvergence(t *testing.T) {
	ctx := ad.NewContext()

	_, err := solve.Newton(ctx,
		func(x ad.Var, _ []ad.Var) (ad.Var, error) {
			return x.Mul(x).AddConst(1), nil // x² + 1 has no real root
		},
		nil, 3.0, solve.Options{MaxIter: 20})
	assert.ErrorIs(t, err, solve.ErrNoConvergence)
}

// TestNewton_PropagatesResidualError surfaces errors from the residual
// function.
func TestNewton_PropagatesResidualError(t *testing.T) {
	ctx := ad.NewContext()

	wantErr := assert.AnError
	_, err := solve.Newton(ctx,
		func(x ad.Var, _ []ad.Var) (ad.Var, error) {
			return ad.Var{}, wantErr
		},
		nil, 1.0, solve.Options{})
	assert.ErrorIs(t, err, wantErr)
}

// TestNewtonSystem_2x2 solves x² + y² = 5, x*y = 2 from a start near (2, 1).
func TestNewtonSystem_2x2(t *testing.T) {
	ctx := ad.NewContext()

	sol, err := solve.NewtonSystem(ctx,
		func(x []ad.Var) ([]ad.Var, error) {
			r0 := x[0].Mul(x[0]).Add(x[1].Mul(x[1])).SubConst(5)
			r1 := x[0].Mul(x[1]).SubConst(2)
			return []ad.Var{r0, r1}, nil
		},
		[]float64{1.8, 0.8}, solve.Options{Tol: 1e-12})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sol[0], 1e-8)
	assert.InDelta(t, 1.0, sol[1], 1e-8)
}

// TestNewtonSystem_DimensionMismatch rejects non-square systems.
func TestNewtonSystem_DimensionMismatch(t *testing.T) {
	ctx := ad.NewContext()

	_, err := solve.NewtonSystem(ctx,
		func(x []ad.Var) ([]ad.Var, error) {
			return []ad.Var{x[0]}, nil
		},
		[]float64{1, 2}, solve.Options{})
	assert.ErrorIs(t, err, solve.ErrDimensionMismatch)
}

// TestNewtonSystem_TapeStaysBounded verifies rollback across iterations.
func TestNewtonSystem_TapeStaysBounded(t *testing.T) {
	ctx := ad.NewContext()
	before := ctx.NumNodes()

	_, err := solve.NewtonSystem(ctx,
		func(x []ad.Var) ([]ad.Var, error) {
			return []ad.Var{x[0].Mul(x[0]).SubConst(3), x[1].AddConst(-1)}, nil
		},
		[]float64{1, 0}, solve.Options{})
	require.NoError(t, err)
	assert.Equal(t, before, ctx.NumNodes(), "system solver records nothing on the outer tape")
}
