// Package parallel provides the worker-pool helper used for batch gradient
// evaluation. Each worker strand is expected to own its own differentiation
// context; this package only distributes indices, it shares no state.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinPerWorker int  // Minimum items per worker to be worth the fan-out.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinPerWorker: 4,
	}
}

// For executes f(i) for i in [0, n), fanning out across workers when the
// batch is large enough. Falls back to sequential execution otherwise.
// f must not share mutable state across indices without its own locking.
func For(n int, f func(i int), cfg Config) {
	workers := cfg.NumWorkers
	if !cfg.Enabled || workers < 2 || n < workers*cfg.MinPerWorker {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
