// Package tape implements the computation record for reverse-mode automatic
// differentiation.
//
// Every elementary differentiable operation appends one Node to a Tape. A
// Node captures the primal value and the local partial derivatives with
// respect to its operands, evaluated eagerly at record time. The backward
// sweep then replays the tape in strict reverse insertion order, scaling
// each node's accumulated adjoint into its operands' adjoints. Because a
// node's operands are always recorded before the node itself, insertion
// order is a topological order of the computation graph and the reverse
// sweep needs no explicit sorting.
//
// Nodes refer to their operands by tape index rather than by pointer, so
// storage growth and checkpoint rollback never leave dangling references.
package tape

import "github.com/tapir-ml/tapir/internal/arena"

// Kind discriminates node variants for backward dispatch.
type Kind uint8

// Node kinds.
const (
	KindLeaf   Kind = iota // independent variable, no operands
	KindUnary              // one operand, one stored partial
	KindBinary             // two operands, two stored partials
	KindNary               // variable operand count, arena-backed partials
)

// None marks an unused operand slot.
const None int32 = -1

// Node is one recorded elementary operation.
//
// Adjoint accumulates the partial derivative of the seeded output with
// respect to this node's value. It starts at zero and is only ever
// incremented during a backward sweep, never overwritten, so values consumed
// by several downstream operations accumulate correctly.
type Node struct {
	Value   float64 // primal result, fixed at record time
	Adjoint float64 // accumulated during backward sweeps

	kind   Kind
	a, b   int32   // operand indices; None when unused
	da, db float64 // local partials matching a and b

	operands []int32   // n-ary operand indices, arena-backed
	partials []float64 // n-ary local partials, arena-backed
}

// Kind returns the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// Operands returns the node's operand indices in a freshly allocated slice.
// Intended for diagnostics and tests, not for the hot path.
func (n *Node) Operands() []int32 {
	switch n.kind {
	case KindUnary:
		return []int32{n.a}
	case KindBinary:
		return []int32{n.a, n.b}
	case KindNary:
		out := make([]int32, len(n.operands))
		copy(out, n.operands)
		return out
	default:
		return nil
	}
}

// backward propagates this node's adjoint into its operands' adjoints.
// It only ever increments; operand adjoints are never overwritten.
func (n *Node) backward(t *Tape) {
	switch n.kind {
	case KindUnary:
		t.At(n.a).Adjoint += n.Adjoint * n.da
	case KindBinary:
		t.At(n.a).Adjoint += n.Adjoint * n.da
		t.At(n.b).Adjoint += n.Adjoint * n.db
	case KindNary:
		for i, op := range n.operands {
			t.At(op).Adjoint += n.Adjoint * n.partials[i]
		}
	}
}

// Node storage is chunked: fixed power-of-two chunks keep index lookup O(1)
// while growth never moves existing nodes.
const (
	chunkBits = 10
	chunkSize = 1 << chunkBits
	chunkMask = chunkSize - 1
)

// Tape is the append-only, insertion-ordered sequence of recorded nodes.
//
// A Tape is owned by a single goroutine; Record-side methods mutate shared
// structures without locks.
type Tape struct {
	chunks   [][]Node
	n        int
	operands *arena.Arena[int32]
	partials *arena.Arena[float64]
}

// New creates an empty tape.
func New() *Tape {
	return &Tape{
		operands: arena.New[int32](),
		partials: arena.New[float64](),
	}
}

// Len returns the number of live recorded nodes.
func (t *Tape) Len() int { return t.n }

// At returns the node at index i. The pointer stays valid until the tape is
// rolled back past i.
func (t *Tape) At(i int32) *Node {
	return &t.chunks[i>>chunkBits][i&chunkMask]
}

// next appends a zeroed node and returns it with its index.
func (t *Tape) next() (*Node, int32) {
	if t.n>>chunkBits == len(t.chunks) {
		t.chunks = append(t.chunks, make([]Node, chunkSize))
	}
	n := &t.chunks[t.n>>chunkBits][t.n&chunkMask]
	// Chunks are reused after rollback; clear stale contents.
	*n = Node{}
	idx := int32(t.n)
	t.n++
	return n, idx
}

// Leaf records an independent variable with the given primal value and
// returns its index.
func (t *Tape) Leaf(v float64) int32 {
	n, idx := t.next()
	n.Value = v
	n.kind = KindLeaf
	n.a, n.b = None, None
	return idx
}

// Unary records a one-operand operation with primal value v and local
// partial dx with respect to operand x.
func (t *Tape) Unary(v float64, x int32, dx float64) int32 {
	n, idx := t.next()
	n.Value = v
	n.kind = KindUnary
	n.a, n.b = x, None
	n.da = dx
	return idx
}

// Binary records a two-operand operation with primal value v and local
// partials dx, dy with respect to operands x, y.
func (t *Tape) Binary(v float64, x, y int32, dx, dy float64) int32 {
	n, idx := t.next()
	n.Value = v
	n.kind = KindBinary
	n.a, n.b = x, y
	n.da, n.db = dx, dy
	return idx
}

// Nary records an operation over an arbitrary operand list. The operand and
// partial slices are copied into tape-owned arena storage, so callers may
// reuse their buffers. len(operands) must equal len(partials).
func (t *Tape) Nary(v float64, operands []int32, partials []float64) int32 {
	n, idx := t.next()
	n.Value = v
	n.kind = KindNary
	n.a, n.b = None, None
	n.operands = t.operands.Alloc(len(operands))
	copy(n.operands, operands)
	n.partials = t.partials.Alloc(len(partials))
	copy(n.partials, partials)
	return idx
}

// Sweep replays the tape segment [from, Len) in strict reverse insertion
// order, invoking each node's backward step. The caller seeds the output
// node's adjoint before calling Sweep and reads operand adjoints afterward.
func (t *Tape) Sweep(from int) {
	for i := t.n - 1; i >= from; i-- {
		n := t.At(int32(i))
		if n.Adjoint == 0 {
			// Nothing to propagate; operand adjoints stay untouched.
			continue
		}
		n.backward(t)
	}
}

// ZeroAdjoints clears the adjoints of the segment [from, Len), making the
// segment reusable for another backward sweep.
func (t *Tape) ZeroAdjoints(from int) {
	for i := from; i < t.n; i++ {
		t.At(int32(i)).Adjoint = 0
	}
}

// Checkpoint is a snapshot of tape length and arena positions, taken at
// nested-scope entry and used to roll the tape back at exit.
type Checkpoint struct {
	nodes    int
	operands arena.Mark
	partials arena.Mark
}

// Nodes returns the tape length recorded in the checkpoint.
func (c Checkpoint) Nodes() int { return c.nodes }

// Checkpoint snapshots the current tape length and arena positions.
func (t *Tape) Checkpoint() Checkpoint {
	return Checkpoint{
		nodes:    t.n,
		operands: t.operands.CurrentMark(),
		partials: t.partials.CurrentMark(),
	}
}

// Rollback truncates the tape to the checkpointed length and rewinds the
// arenas, discarding every node and operand record made since. Checkpoints
// must be rolled back in LIFO order; violating that corrupts the arena
// marks. Callers enforce the discipline (the ad package asserts it when
// debug checks are enabled).
func (t *Tape) Rollback(c Checkpoint) {
	t.n = c.nodes
	t.operands.ResetTo(c.operands)
	t.partials.ResetTo(c.partials)
}
