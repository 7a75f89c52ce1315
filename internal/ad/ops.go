package ad

// Elementary arithmetic on tracked scalars. Every method computes the primal
// result eagerly, records one node carrying the local partials evaluated at
// the operand values, and returns a handle to the new node. Forward
// execution therefore costs one floating-point operation plus one tape
// append; all derivative work is deferred to the backward sweep.

// Add returns v + w.
func (v Var) Add(w Var) Var {
	v.ctx.assertOwns(w)
	return Var{ctx: v.ctx, idx: v.ctx.tape.Binary(v.Value()+w.Value(), v.idx, w.idx, 1, 1)}
}

// Sub returns v - w.
func (v Var) Sub(w Var) Var {
	v.ctx.assertOwns(w)
	return Var{ctx: v.ctx, idx: v.ctx.tape.Binary(v.Value()-w.Value(), v.idx, w.idx, 1, -1)}
}

// Mul returns v * w.
func (v Var) Mul(w Var) Var {
	v.ctx.assertOwns(w)
	a, b := v.Value(), w.Value()
	return Var{ctx: v.ctx, idx: v.ctx.tape.Binary(a*b, v.idx, w.idx, b, a)}
}

// Div returns v / w. Division by zero follows IEEE semantics in both the
// primal value and the stored partials; callers wanting a domain error
// validate first (see the check package).
func (v Var) Div(w Var) Var {
	v.ctx.assertOwns(w)
	a, b := v.Value(), w.Value()
	q := a / b
	return Var{ctx: v.ctx, idx: v.ctx.tape.Binary(q, v.idx, w.idx, 1/b, -q/b)}
}

// Neg returns -v.
func (v Var) Neg() Var {
	return Var{ctx: v.ctx, idx: v.ctx.tape.Unary(-v.Value(), v.idx, -1)}
}

// AddConst returns v + c.
func (v Var) AddConst(c float64) Var {
	return Var{ctx: v.ctx, idx: v.ctx.tape.Unary(v.Value()+c, v.idx, 1)}
}

// SubConst returns v - c.
func (v Var) SubConst(c float64) Var {
	return Var{ctx: v.ctx, idx: v.ctx.tape.Unary(v.Value()-c, v.idx, 1)}
}

// MulConst returns v * c.
func (v Var) MulConst(c float64) Var {
	return Var{ctx: v.ctx, idx: v.ctx.tape.Unary(v.Value()*c, v.idx, c)}
}

// DivConst returns v / c.
func (v Var) DivConst(c float64) Var {
	return Var{ctx: v.ctx, idx: v.ctx.tape.Unary(v.Value()/c, v.idx, 1/c)}
}

// ConstSub returns c - v.
func (v Var) ConstSub(c float64) Var {
	return Var{ctx: v.ctx, idx: v.ctx.tape.Unary(c-v.Value(), v.idx, -1)}
}

// ConstDiv returns c / v.
func (v Var) ConstDiv(c float64) Var {
	x := v.Value()
	return Var{ctx: v.ctx, idx: v.ctx.tape.Unary(c/x, v.idx, -c/(x*x))}
}
