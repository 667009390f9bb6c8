package anim

import "time"

// Debouncer coalesces a burst of events into a single firing after a
// quiet period.
type Debouncer struct {
	delay    time.Duration
	deadline time.Time
	pending  bool
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Bump records an event at now and pushes the deadline out.
func (d *Debouncer) Bump(now time.Time) {
	d.deadline = now.Add(d.delay)
	d.pending = true
}

// Fire reports whether the quiet period has elapsed. It returns true at
// most once per Bump burst.
func (d *Debouncer) Fire(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.pending = false
	return true
}

func (d *Debouncer) Pending() bool { return d.pending }
