// Package testutil provides deterministic stand-ins for the random
// parts of the system so tests produce stable output.
package testutil

import (
	"fmt"
	"sync"
)

// FixedIDGenerator hands out sequential IDs with a fixed prefix.
//
// It satisfies store.IDGenerator. With it, session and run IDs are
// byte-identical across test runs, so stored history can be compared
// against golden expectations.
//
// Thread-safety: all methods are safe for concurrent use.
type FixedIDGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewFixedIDGenerator creates a generator with the given prefix.
// An empty prefix defaults to "test-id".
func NewFixedIDGenerator(prefix string) *FixedIDGenerator {
	if prefix == "" {
		prefix = "test-id"
	}
	return &FixedIDGenerator{prefix: prefix}
}

// Generate returns the next ID: "<prefix>-0001", "<prefix>-0002", ...
func (g *FixedIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}

// Reset restarts the sequence. After Reset the next ID ends in 0001
// again, which lets one scenario run repeatedly with identical IDs.
func (g *FixedIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n = 0
}
