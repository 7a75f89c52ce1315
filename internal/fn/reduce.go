package fn

import (
	"math"

	"github.com/tapir-ml/tapir/internal/ad"
	"github.com/tapir-ml/tapir/internal/check"
)

// Sum returns the sum of xs as a single n-ary node, so the backward sweep
// costs one step regardless of len(xs). xs must be non-empty.
func Sum(xs []ad.Var) (ad.Var, error) {
	if err := check.NonzeroSize("sum", "xs", len(xs)); err != nil {
		return ad.Var{}, err
	}
	total := 0.0
	partials := make([]float64, len(xs))
	for i, x := range xs {
		total += x.Value()
		partials[i] = 1
	}
	return xs[0].Context().Primitive(total, xs, partials), nil
}

// LogSumExp returns log(sum(exp(xs))) computed with the max-shift trick for
// numerical stability. The local partials are the softmax weights of xs.
// xs must be non-empty.
func LogSumExp(xs []ad.Var) (ad.Var, error) {
	if err := check.NonzeroSize("log_sum_exp", "xs", len(xs)); err != nil {
		return ad.Var{}, err
	}
	maxv := math.Inf(-1)
	for _, x := range xs {
		if x.Value() > maxv {
			maxv = x.Value()
		}
	}
	sum := 0.0
	partials := make([]float64, len(xs))
	for i, x := range xs {
		e := math.Exp(x.Value() - maxv)
		partials[i] = e
		sum += e
	}
	v := maxv + math.Log(sum)
	for i := range partials {
		partials[i] /= sum
	}
	return xs[0].Context().Primitive(v, xs, partials), nil
}
