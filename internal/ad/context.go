// Package ad implements reverse-mode automatic differentiation over tracked
// scalars.
//
// A Context owns one tape and its arenas. User code builds expressions with
// Var arithmetic; every operation eagerly computes its primal value, records
// one node, and defers all derivative bookkeeping to a single linear
// backward sweep driven by Gradient.
//
// A Context is owned by a single goroutine. Concurrent gradient evaluation
// uses one Context per worker; see GradientBatch.
package ad

import (
	"github.com/tapir-ml/tapir/internal/tape"
)

// Context owns the tape and nested-scope state for one strand of
// differentiable computation.
type Context struct {
	tape   *tape.Tape
	nested []tape.Checkpoint // active nested scopes, innermost last
}

// NewContext creates an empty differentiation context.
func NewContext() *Context {
	return &Context{tape: tape.New()}
}

// Var is a tracked scalar: a non-owning handle to one node on its context's
// tape. Vars are small values; copying one shares the node rather than
// duplicating it, and destroying one has no effect on the node, whose
// lifetime is bound to the enclosing scope.
type Var struct {
	ctx *Context
	idx int32
}

// NewVar records an independent variable (a leaf node) with the given value.
func (c *Context) NewVar(v float64) Var {
	return Var{ctx: c, idx: c.tape.Leaf(v)}
}

// Value returns the primal value. It is unaffected by backward passes.
func (v Var) Value() float64 {
	return v.ctx.tape.At(v.idx).Value
}

// Adjoint returns the accumulated partial derivative of the last seeded
// output with respect to this variable. It is zero before any backward pass.
func (v Var) Adjoint() float64 {
	return v.ctx.tape.At(v.idx).Adjoint
}

// Context returns the owning context.
func (v Var) Context() *Context {
	return v.ctx
}

// NumNodes returns the number of live nodes on the context's tape.
func (c *Context) NumNodes() int {
	return c.tape.Len()
}

// segmentStart returns the tape index where the innermost active scope
// begins. Backward sweeps never cross this boundary: adjoints may flow into
// the direct operands of in-segment nodes even when those operands live in
// an enclosing scope, but no enclosing-scope node has its own backward step
// replayed.
func (c *Context) segmentStart() int {
	if len(c.nested) == 0 {
		return 0
	}
	return c.nested[len(c.nested)-1].Nodes()
}

// Primitive records a custom differentiable operation: a node with the given
// primal value whose local partials with respect to operands were computed
// by the caller. This is the registration point for math-library primitives
// whose derivatives are cheaper to state than to compose from elementary
// operations.
//
// Any domain validation happens in the caller, before Primitive is invoked;
// the engine assumes value and partials are well-formed. len(operands) must
// equal len(partials).
func (c *Context) Primitive(value float64, operands []Var, partials []float64) Var {
	if len(operands) != len(partials) {
		panic("ad: Primitive operand/partial count mismatch")
	}
	for _, op := range operands {
		c.assertOwns(op)
	}
	switch len(operands) {
	case 0:
		return Var{ctx: c, idx: c.tape.Leaf(value)}
	case 1:
		return Var{ctx: c, idx: c.tape.Unary(value, operands[0].idx, partials[0])}
	case 2:
		return Var{ctx: c, idx: c.tape.Binary(value, operands[0].idx, operands[1].idx, partials[0], partials[1])}
	default:
		idxs := make([]int32, len(operands))
		for i, op := range operands {
			idxs[i] = op.idx
		}
		return Var{ctx: c, idx: c.tape.Nary(value, idxs, partials)}
	}
}

// Gradient computes d(output)/d(input) for every requested input.
//
// It zeroes all live adjoints, seeds output's adjoint to 1, replays the
// current tape segment in strict reverse recording order, and reads off the
// input adjoints. Because adjoints accumulate additively, the result is the
// exact chain-rule sum over all paths from output to each input, which is
// correct in the presence of diamond dependencies.
//
// Inside a nested scope the sweep stops at the scope boundary: inputs from
// the enclosing scope receive the partials of the nested computation with
// respect to their values as of scope entry, but nothing recorded before the
// scope is replayed.
//
// Calling Gradient again on the same tape for a different output is valid:
// the initial zeroing discards the previous pass's adjoints.
func (c *Context) Gradient(output Var, inputs []Var) []float64 {
	c.assertOwns(output)
	for _, in := range inputs {
		c.assertOwns(in)
	}
	start := c.segmentStart()
	c.tape.ZeroAdjoints(0)
	c.tape.At(output.idx).Adjoint = 1
	c.tape.Sweep(start)
	out := make([]float64, len(inputs))
	for i, in := range inputs {
		out[i] = c.tape.At(in.idx).Adjoint
	}
	return out
}

// ZeroAdjoints clears every live adjoint. Gradient does this implicitly;
// ZeroAdjoints exists for callers that read adjoints directly off Vars and
// want a clean slate in between.
func (c *Context) ZeroAdjoints() {
	c.tape.ZeroAdjoints(0)
}
