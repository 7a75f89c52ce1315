package fn

import (
	"math"

	"github.com/tapir-ml/tapir/internal/ad"
)

// invLogit is the primal logistic function 1 / (1 + exp(-x)).
func invLogit(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// InvLogit returns the logistic function of x.
func InvLogit(x ad.Var) ad.Var {
	s := invLogit(x.Value())
	return unary(x, s, s*(1-s)) // d/dx = σ(x)(1-σ(x))
}

// Phi returns the standard normal cumulative distribution function at x.
func Phi(x ad.Var) ad.Var {
	xv := x.Value()
	v := 0.5 * math.Erfc(-xv/math.Sqrt2)
	d := math.Exp(-0.5*xv*xv) / math.Sqrt(2*math.Pi)
	return unary(x, v, d)
}

// PhiApprox returns a fast logistic approximation of the standard normal
// CDF, inv_logit(0.07056 x^3 + 1.5976 x). The absolute error against Phi is
// below 1.5e-4 everywhere.
func PhiApprox(x ad.Var) ad.Var {
	const a, b = 0.07056, 1.5976
	xv := x.Value()
	s := invLogit(a*xv*xv*xv + b*xv)
	return unary(x, s, s*(1-s)*(3*a*xv*xv+b))
}
