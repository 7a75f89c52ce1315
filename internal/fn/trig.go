package fn

import (
	"math"

	"github.com/tapir-ml/tapir/internal/ad"
)

// Sin returns the sine of x (radians).
func Sin(x ad.Var) ad.Var {
	s, c := math.Sincos(x.Value())
	return unary(x, s, c)
}

// Cos returns the cosine of x (radians).
func Cos(x ad.Var) ad.Var {
	s, c := math.Sincos(x.Value())
	return unary(x, c, -s)
}

// Tan returns the tangent of x (radians).
func Tan(x ad.Var) ad.Var {
	t := math.Tan(x.Value())
	return unary(x, t, 1+t*t)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x ad.Var) ad.Var {
	t := math.Tanh(x.Value())
	return unary(x, t, 1-t*t)
}
