package solve

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/tapir-ml/tapir/internal/ad"
)

// NewtonSystem solves the square system f(x) = 0 by Newton iteration and
// returns the solution vector.
//
// Every iteration runs in a nested scope: the residual vector is evaluated
// on fresh leaves, the dense Jacobian is assembled one row per backward
// sweep (Gradient re-zeroes adjoints between rows, which is exactly the
// multi-output tape reuse the engine guarantees), and the trial tape is
// rolled back before the linear step J dx = f is solved and x -= dx applied.
func NewtonSystem(ctx *ad.Context, f func(x []ad.Var) ([]ad.Var, error), guess []float64, opts Options) ([]float64, error) {
	opts = opts.withDefaults()

	n := len(guess)
	x := make([]float64, n)
	copy(x, guess)

	res := make([]float64, n)
	jac := mat.NewDense(n, n, nil)

	for iter := 0; iter < opts.MaxIter; iter++ {
		err := ctx.Nested(func() error {
			xv := make([]ad.Var, n)
			for i := range x {
				xv[i] = ctx.NewVar(x[i])
			}
			ys, err := f(xv)
			if err != nil {
				return err
			}
			if len(ys) != n {
				return ErrDimensionMismatch
			}
			for i, y := range ys {
				res[i] = y.Value()
				jac.SetRow(i, ctx.Gradient(y, xv))
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		if floats.Norm(res, math.Inf(1)) <= opts.Tol {
			return x, nil
		}

		rhs := mat.NewVecDense(n, res)
		var dx mat.VecDense
		if err := dx.SolveVec(jac, rhs); err != nil {
			return nil, ErrSingularJacobian
		}
		for i := range x {
			x[i] -= dx.AtVec(i)
		}
	}
	return nil, ErrNoConvergence
}
