// Package solve provides Newton solvers built on the AD engine.
//
// The solvers are the canonical consumers of nested scopes: every trial
// iteration evaluates the residual and its derivatives on the tape, then
// rolls the scope back so the enclosing computation's memory does not grow
// with the iteration count. Only the converged solution is recorded, as a
// single custom primitive carrying implicit-function-theorem sensitivities.
package solve

import (
	"math"

	"github.com/tapir-ml/tapir/internal/ad"
)

// Options configures a Newton solve.
type Options struct {
	MaxIter int     // iteration limit; default 50
	Tol     float64 // residual magnitude for convergence; default 1e-12
}

func (o Options) withDefaults() Options {
	if o.MaxIter == 0 {
		o.MaxIter = 50
	}
	if o.Tol == 0 {
		o.Tol = 1e-12
	}
	return o
}

// Newton solves f(x, params) = 0 for the scalar unknown x, starting from
// guess, and returns the solution as a tracked scalar.
//
// Each iteration runs in a nested scope: a fresh leaf is created for the
// current iterate, f is evaluated against it, f and f' are extracted with a
// backward sweep, and the whole trial tape is rolled back. On convergence
// the solution x* is registered as one primitive node whose partials with
// respect to params follow from the implicit function theorem:
//
//	dx*/dp = -(df/dp) / (df/dx), evaluated at x*.
//
// Gradients of downstream expressions therefore flow through the solution
// without any of the trial iterations appearing on the tape.
func Newton(ctx *ad.Context, f func(x ad.Var, params []ad.Var) (ad.Var, error), params []ad.Var, guess float64, opts Options) (ad.Var, error) {
	opts = opts.withDefaults()

	x := guess
	sens := make([]float64, len(params))
	converged := false

	for iter := 0; iter < opts.MaxIter && !converged; iter++ {
		var fv, dfdx float64
		err := ctx.Nested(func() error {
			xv := ctx.NewVar(x)
			y, err := f(xv, params)
			if err != nil {
				return err
			}
			wrt := append([]ad.Var{xv}, params...)
			g := ctx.Gradient(y, wrt)
			fv, dfdx = y.Value(), g[0]
			if math.Abs(fv) <= opts.Tol {
				if len(params) > 0 && (dfdx == 0 || math.IsNaN(dfdx)) {
					return ErrSingularJacobian
				}
				// Converged: capture df/dp before the rollback discards it.
				for i := range params {
					sens[i] = -g[i+1] / dfdx
				}
				converged = true
			}
			return nil
		})
		if err != nil {
			return ad.Var{}, err
		}
		if converged {
			break
		}
		if dfdx == 0 || math.IsNaN(dfdx) {
			return ad.Var{}, ErrSingularJacobian
		}
		x -= fv / dfdx
	}
	if !converged {
		return ad.Var{}, ErrNoConvergence
	}

	return ctx.Primitive(x, params, sens), nil
}
