package fn

import (
	"math"

	"github.com/tapir-ml/tapir/internal/ad"
	"github.com/tapir-ml/tapir/internal/check"
)

// Sqrt returns the square root of x. x must be nonnegative.
func Sqrt(x ad.Var) (ad.Var, error) {
	if err := check.Nonnegative("sqrt", "x", x.Value()); err != nil {
		return ad.Var{}, err
	}
	v := math.Sqrt(x.Value())
	return unary(x, v, 0.5/v), nil
}

// Square returns x*x.
func Square(x ad.Var) ad.Var {
	return unary(x, x.Value()*x.Value(), 2*x.Value())
}

// Inv returns 1/x.
func Inv(x ad.Var) ad.Var {
	v := 1 / x.Value()
	return unary(x, v, -v*v)
}

// Pow returns x**p for a constant exponent p.
func Pow(x ad.Var, p float64) ad.Var {
	xv := x.Value()
	return unary(x, math.Pow(xv, p), p*math.Pow(xv, p-1))
}

// Hypot returns sqrt(x*x + y*y) without intermediate overflow.
func Hypot(x, y ad.Var) ad.Var {
	h := math.Hypot(x.Value(), y.Value())
	return x.Context().Primitive(h, []ad.Var{x, y}, []float64{x.Value() / h, y.Value() / h})
}
