// Package fn provides differentiable scalar math functions built on the AD
// engine's primitive-registration contract.
//
// Every function computes its primal value with the standard library (or
// gonum), evaluates the local derivative at the same point, and registers a
// single node via Context.Primitive. Functions with restricted domains
// validate through the check package before anything is recorded: a returned
// error guarantees the tape was not touched.
package fn

import "github.com/tapir-ml/tapir/internal/ad"

// unary registers a one-operand primitive with value v and derivative d.
func unary(x ad.Var, v, d float64) ad.Var {
	return x.Context().Primitive(v, []ad.Var{x}, []float64{d})
}
