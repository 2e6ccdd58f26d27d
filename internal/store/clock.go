package store

import "sync/atomic"

// Clock is a monotonic logical clock for run ordering.
//
// All runs are stamped with a strictly increasing seq number from this
// clock, never a wall-clock timestamp, so replay processes runs in
// exactly the order they were recorded.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations).
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a new clock starting at a specific sequence
// number. Used when reopening a database to resume from the last
// recorded run.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
