package anim

import "time"

// EaseOutCubic maps linear progress u to 1-(1-u)^3, clamped to [0, 1].
func EaseOutCubic(u float64) float64 {
	if u <= 0 {
		return 0
	}
	if u >= 1 {
		return 1
	}
	inv := 1 - u
	return 1 - inv*inv*inv
}

// Reveal converts elapsed time into eased draw-in progress for a
// one-shot animation.
type Reveal struct {
	Duration time.Duration
}

func (r Reveal) Progress(elapsed time.Duration) float64 {
	if r.Duration <= 0 {
		return 1
	}
	return EaseOutCubic(float64(elapsed) / float64(r.Duration))
}

func (r Reveal) Done(elapsed time.Duration) bool {
	return elapsed >= r.Duration
}
