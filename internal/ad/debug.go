package ad

import "github.com/xyproto/env/v2"

// debugChecks gates the contract assertions (cross-context Vars, non-LIFO
// scope exits). Off by default; set TAPIR_DEBUG=1 to enable.
var debugChecks = env.Bool("TAPIR_DEBUG")

// assertOwns panics if v belongs to another context. A Var from a foreign
// context carries an index into a different tape, so using it here would
// silently read the wrong node. Only active with debug checks on.
func (c *Context) assertOwns(v Var) {
	if debugChecks && v.ctx != c {
		panic("ad: Var belongs to a different Context")
	}
}
