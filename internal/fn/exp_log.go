package fn

import (
	"math"

	"github.com/tapir-ml/tapir/internal/ad"
	"github.com/tapir-ml/tapir/internal/check"
)

// Exp returns e**x.
func Exp(x ad.Var) ad.Var {
	v := math.Exp(x.Value())
	return unary(x, v, v) // d(exp x)/dx = exp x
}

// Expm1 returns e**x - 1, accurate for x near zero.
func Expm1(x ad.Var) ad.Var {
	return unary(x, math.Expm1(x.Value()), math.Exp(x.Value()))
}

// Log returns the natural logarithm of x. x must be positive.
func Log(x ad.Var) (ad.Var, error) {
	if err := check.Positive("log", "x", x.Value()); err != nil {
		return ad.Var{}, err
	}
	return unary(x, math.Log(x.Value()), 1/x.Value()), nil
}

// Log1p returns log(1 + x), accurate for x near zero. x must exceed -1.
func Log1p(x ad.Var) (ad.Var, error) {
	if err := check.GreaterThan("log1p", "x", x.Value(), -1); err != nil {
		return ad.Var{}, err
	}
	return unary(x, math.Log1p(x.Value()), 1/(1+x.Value())), nil
}
