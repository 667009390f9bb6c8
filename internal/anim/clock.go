package anim

import "time"

// Clock abstracts wall time so frame pacing is reproducible in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FakeClock is a manually advanced Clock for tests and offline capture.
// It is not safe for concurrent use.
type FakeClock struct {
	current time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{current: start}
}

func (c *FakeClock) Now() time.Time { return c.current }

func (c *FakeClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

func (c *FakeClock) Set(t time.Time) { c.current = t }
