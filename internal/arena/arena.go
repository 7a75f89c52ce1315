// Package arena implements a bump allocator over a list of fixed blocks.
//
// An Arena hands out zeroed slices in O(1) and reclaims memory only in bulk,
// by rewinding to a previously recorded Mark. Individual allocations are
// never freed. Because storage is a list of blocks rather than a single
// resizable buffer, growth never invalidates previously returned slices.
//
// Blocks are retained across resets and reused by later allocations, so a
// long-running computation that repeatedly enters and leaves nested scopes
// settles into a steady state with no further heap traffic.
package arena

import "github.com/xyproto/env/v2"

// DefaultBlockSize is the element capacity of the first block.
// Overridable via the TAPIR_ARENA_BLOCK environment variable.
var DefaultBlockSize = env.Int("TAPIR_ARENA_BLOCK", 1024)

// Arena is a bump allocator for elements of type T.
//
// The zero value is not usable; create arenas with New. An Arena is owned by
// a single goroutine and performs no internal locking.
type Arena[T any] struct {
	blocks [][]T // all blocks ever allocated, in allocation order
	cur    int   // index of the block currently being filled
	used   int   // elements handed out from blocks[cur]
}

// Mark is a snapshot of an Arena's allocation position.
//
// A Mark is only meaningful for the Arena that produced it, and only while
// that Arena has not been rewound past it.
type Mark struct {
	block int
	used  int
}

// New creates an empty Arena with an initial block of DefaultBlockSize
// elements.
func New[T any]() *Arena[T] {
	return &Arena[T]{
		blocks: [][]T{make([]T, DefaultBlockSize)},
	}
}

// Alloc returns a zeroed slice of n elements carved from the current block.
//
// The returned slice has capacity exactly n, so appending to it cannot bleed
// into neighboring allocations. The slice stays valid until the Arena is
// rewound past the Mark current at the time of the call. Out-of-memory is
// fatal: the Go runtime aborts if a backing block cannot be allocated.
func (a *Arena[T]) Alloc(n int) []T {
	if n == 0 {
		return nil
	}
	if a.used+n > len(a.blocks[a.cur]) {
		a.grow(n)
	}
	s := a.blocks[a.cur][a.used : a.used+n : a.used+n]
	a.used += n
	// Blocks are reused after ResetTo, so stale contents must be cleared.
	clear(s)
	return s
}

// grow advances to the next block able to hold n elements, allocating a new
// one (geometrically larger than the last) when no retained block fits.
func (a *Arena[T]) grow(n int) {
	for a.cur+1 < len(a.blocks) {
		a.cur++
		a.used = 0
		if n <= len(a.blocks[a.cur]) {
			return
		}
	}
	size := 2 * len(a.blocks[len(a.blocks)-1])
	if size < n {
		size = n
	}
	a.blocks = append(a.blocks, make([]T, size))
	a.cur = len(a.blocks) - 1
	a.used = 0
}

// CurrentMark returns the current allocation position.
func (a *Arena[T]) CurrentMark() Mark {
	return Mark{block: a.cur, used: a.used}
}

// ResetTo rewinds the allocation position to m, discarding everything
// allocated since m was taken. Blocks are retained for reuse; the discarded
// contents are not zeroed until re-allocated.
//
// Passing a Mark from another Arena, or resetting out of LIFO order,
// corrupts the allocation position. Callers must guarantee correct nesting.
func (a *Arena[T]) ResetTo(m Mark) {
	a.cur = m.block
	a.used = m.used
}

// Reset rewinds the Arena to empty, retaining all blocks.
func (a *Arena[T]) Reset() {
	a.cur = 0
	a.used = 0
}

// Len returns the number of elements allocated so far, counting any
// block tails skipped when an allocation did not fit.
func (a *Arena[T]) Len() int {
	n := a.used
	for i := 0; i < a.cur; i++ {
		n += len(a.blocks[i])
	}
	return n
}
