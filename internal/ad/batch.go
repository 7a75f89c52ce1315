package ad

import "github.com/tapir-ml/tapir/internal/parallel"

// Func is a differentiable scalar function of several tracked inputs,
// evaluated against a caller-supplied context.
type Func func(ctx *Context, x []Var) (Var, error)

// GradientAt evaluates f at the point x in a fresh context and returns the
// primal value together with the full gradient. The context, its tape and
// arenas are transient and become garbage when the call returns.
func GradientAt(f Func, x []float64) (float64, []float64, error) {
	ctx := NewContext()
	vars := make([]Var, len(x))
	for i, xi := range x {
		vars[i] = ctx.NewVar(xi)
	}
	y, err := f(ctx, vars)
	if err != nil {
		return 0, nil, err
	}
	return y.Value(), ctx.Gradient(y, vars), nil
}

// BatchResult holds one point's evaluation from GradientBatch.
type BatchResult struct {
	Value    float64
	Gradient []float64
	Err      error
}

// GradientBatch evaluates value and gradient of f at every point, fanning
// out across workers per cfg. Every evaluation runs in its own Context; a
// tape and its arenas are single-goroutine structures and are never shared.
func GradientBatch(f Func, points [][]float64, cfg parallel.Config) []BatchResult {
	results := make([]BatchResult, len(points))
	parallel.For(len(points), func(i int) {
		v, g, err := GradientAt(f, points[i])
		results[i] = BatchResult{Value: v, Gradient: g, Err: err}
	}, cfg)
	return results
}
