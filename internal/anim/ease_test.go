package anim

import (
	"math"
	"testing"
	"time"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name string
		u    float64
		want float64
	}{
		{"start", 0, 0},
		{"end", 1, 1},
		{"half", 0.5, 0.875},
		{"clamp below", -0.5, 0},
		{"clamp above", 1.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EaseOutCubic(tt.u); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestEaseOutCubicMonotone(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		got := EaseOutCubic(float64(i) / 100)
		if got < prev {
			t.Fatalf("ease not monotone at %d: %f < %f", i, got, prev)
		}
		prev = got
	}
}

func TestEaseOutCubicDecelerates(t *testing.T) {
	early := EaseOutCubic(0.25)
	late := EaseOutCubic(0.75) - EaseOutCubic(0.50)

	if early <= 0.25 {
		t.Errorf("ease-out should lead linear progress early, got %f", early)
	}
	if late >= 0.25 {
		t.Errorf("ease-out should decelerate late, got increment %f", late)
	}
}

func TestRevealProgress(t *testing.T) {
	r := Reveal{Duration: 1800 * time.Millisecond}

	if got := r.Progress(900 * time.Millisecond); math.Abs(got-0.875) > 1e-12 {
		t.Errorf("expected 0.875 at half duration, got %f", got)
	}
	if got := r.Progress(1800 * time.Millisecond); got != 1 {
		t.Errorf("expected 1 at full duration, got %f", got)
	}
	if got := r.Progress(5 * time.Second); got != 1 {
		t.Errorf("expected clamp past duration, got %f", got)
	}
	if r.Done(1700 * time.Millisecond) {
		t.Error("reveal done before duration elapsed")
	}
	if !r.Done(1800 * time.Millisecond) {
		t.Error("reveal not done at duration")
	}
}

func TestRevealZeroDuration(t *testing.T) {
	r := Reveal{}
	if got := r.Progress(0); got != 1 {
		t.Errorf("zero-duration reveal should be complete, got %f", got)
	}
}
