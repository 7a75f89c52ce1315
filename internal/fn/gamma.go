package fn

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/tapir-ml/tapir/internal/ad"
	"github.com/tapir-ml/tapir/internal/check"
)

// Lgamma returns log(Gamma(x)) for positive x.
func Lgamma(x ad.Var) (ad.Var, error) {
	if err := check.Positive("lgamma", "x", x.Value()); err != nil {
		return ad.Var{}, err
	}
	v, _ := math.Lgamma(x.Value())
	return unary(x, v, mathext.Digamma(x.Value())), nil
}

// LgammaStirlingDiffUseful is the cutoff above which the Stirling series for
// LgammaStirlingDiff converges fast enough to be preferable to the direct
// difference.
const LgammaStirlingDiffUseful = 10

// lgammaStirling is the Stirling approximation of log(Gamma(x)):
// 0.5*log(2*pi) + (x - 0.5)*log(x) - x.
func lgammaStirling(x float64) float64 {
	return 0.5*math.Log(2*math.Pi) + (x-0.5)*math.Log(x) - x
}

// LgammaStirlingDiff returns log(Gamma(x)) minus its Stirling approximation.
// Useful to stably compute log-ratios of gamma functions with large
// arguments, where the Stirling parts cancel analytically and only the small
// differences remain. x must be nonnegative; the result at 0 is +Inf.
func LgammaStirlingDiff(x float64) (float64, error) {
	if math.IsNaN(x) {
		return math.NaN(), nil
	}
	if err := check.Nonnegative("lgamma_stirling_diff", "x", x); err != nil {
		return 0, err
	}
	if x == 0 {
		return math.Inf(1), nil
	}
	if x < LgammaStirlingDiffUseful {
		lg, _ := math.Lgamma(x)
		return lg - lgammaStirling(x), nil
	}
	// Stirling series, DLMF 5.11.1.
	const (
		c0 = 0.0833333333333333333333333   // 1/12
		c1 = -0.00277777777777777777777778 // -1/360
		c2 = 0.000793650793650793650793651 // 1/1260
	)
	invX := 1 / x
	invX2 := invX * invX
	return invX * (c0 + invX2*(c1+invX2*c2)), nil
}
