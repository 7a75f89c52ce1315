package ad

import "github.com/tapir-ml/tapir/internal/tape"

// Checkpoint identifies one entered nested scope. It is returned by
// EnterNested and consumed, exactly once, by LeaveNested.
type Checkpoint struct {
	ctx   *Context
	depth int
	tape  tape.Checkpoint
}

// EnterNested opens a nested scope: a sub-computation (one trial iteration
// of a solver, say) whose nodes are discarded independently of the enclosing
// computation. Scopes nest strictly LIFO.
func (c *Context) EnterNested() Checkpoint {
	cp := Checkpoint{ctx: c, depth: len(c.nested) + 1, tape: c.tape.Checkpoint()}
	c.nested = append(c.nested, cp.tape)
	return cp
}

// LeaveNested closes the scope identified by cp, truncating the tape and
// rewinding the arenas to their state at EnterNested. Every Var created
// inside the scope is invalidated.
//
// Leaving scopes out of LIFO order, or with a checkpoint from another
// context, corrupts the allocation marks; it is a programming error, not a
// recoverable condition. With debug checks enabled (TAPIR_DEBUG) it panics
// immediately instead.
func (c *Context) LeaveNested(cp Checkpoint) {
	if debugChecks {
		if cp.ctx != c {
			panic("ad: LeaveNested with checkpoint from another context")
		}
		if cp.depth != len(c.nested) {
			panic("ad: LeaveNested out of LIFO order")
		}
	}
	c.nested = c.nested[:len(c.nested)-1]
	c.tape.Rollback(cp.tape)
}

// Nested runs f inside a nested scope and guarantees rollback on every exit
// path, including panics. Use it when the scope body has early returns that
// would make a manual EnterNested/LeaveNested pair easy to leak.
func (c *Context) Nested(f func() error) error {
	cp := c.EnterNested()
	defer c.LeaveNested(cp)
	return f()
}
