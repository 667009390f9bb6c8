package anim

import "time"

// Throttle enforces a minimum interval between accepted frames. Hosts
// call Accept on every scheduler callback; a false return means skip
// this draw but keep scheduling callbacks.
type Throttle struct {
	budget time.Duration
	last   time.Time
	armed  bool
}

func NewThrottle(budget time.Duration) *Throttle {
	return &Throttle{budget: budget}
}

func (t *Throttle) Accept(now time.Time) bool {
	if t.budget <= 0 {
		return true
	}
	if t.armed && now.Sub(t.last) < t.budget {
		return false
	}
	t.last = now
	t.armed = true
	return true
}

// Reset re-arms the throttle at now. Hosts call it when the view
// becomes visible again so the hidden interval is not treated as lag
// and accepted in a catch-up burst.
func (t *Throttle) Reset(now time.Time) {
	t.last = now
	t.armed = true
}

// Phase accumulates animation phase by a fixed step per accepted frame,
// independent of wall-time jitter between frames.
type Phase struct {
	step  float64
	value float64
}

func NewPhase(step float64) *Phase {
	return &Phase{step: step}
}

// Advance adds one step and returns the new phase.
func (p *Phase) Advance() float64 {
	p.value += p.step
	return p.value
}

func (p *Phase) Value() float64 { return p.value }

func (p *Phase) Reset() { p.value = 0 }
