package motif

import (
	"math"
	"testing"

	"honnef.co/go/curve"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPolylineLength(t *testing.T) {
	p := Polyline{curve.Pt(0, 0), curve.Pt(3, 0), curve.Pt(3, 4)}

	if got := p.Length(); !almostEqual(got, 7) {
		t.Errorf("expected length 7, got %f", got)
	}
}

func TestPolylineLengthDegenerate(t *testing.T) {
	if got := (Polyline{}).Length(); got != 0 {
		t.Errorf("expected zero length for empty polyline, got %f", got)
	}
	if got := (Polyline{curve.Pt(1, 1)}).Length(); got != 0 {
		t.Errorf("expected zero length for single point, got %f", got)
	}
}

func TestPolylineTruncate(t *testing.T) {
	p := Polyline{curve.Pt(0, 0), curve.Pt(3, 0), curve.Pt(3, 4)}

	tests := []struct {
		name string
		dist float64
		want Polyline
	}{
		{"negative", -1, Polyline{curve.Pt(0, 0)}},
		{"zero", 0, Polyline{curve.Pt(0, 0)}},
		{"mid first segment", 1.5, Polyline{curve.Pt(0, 0), curve.Pt(1.5, 0)}},
		{"exact vertex", 3, Polyline{curve.Pt(0, 0), curve.Pt(3, 0)}},
		{"mid second segment", 5, Polyline{curve.Pt(0, 0), curve.Pt(3, 0), curve.Pt(3, 2)}},
		{"full length", 7, p},
		{"past end", 100, p},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Truncate(tt.dist)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d points, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if !almostEqual(got[i].X, tt.want[i].X) || !almostEqual(got[i].Y, tt.want[i].Y) {
					t.Errorf("point %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestPolylineTruncateNeverExtrapolates(t *testing.T) {
	p := Polyline{curve.Pt(0, 0), curve.Pt(10, 0)}

	got := p.Truncate(25)
	last := got[len(got)-1]
	if last.X > 10 {
		t.Errorf("truncate extrapolated past the end: %v", last)
	}
}

func TestPolylineTruncateEmpty(t *testing.T) {
	if got := Polyline(nil).Truncate(5); got != nil {
		t.Errorf("expected nil for empty polyline, got %v", got)
	}
}

func TestPolylineBounds(t *testing.T) {
	p := Polyline{curve.Pt(2, 5), curve.Pt(-1, 3), curve.Pt(4, -2)}

	b := p.Bounds()
	if b.MinX() != -1 || b.MaxX() != 4 || b.MinY() != -2 || b.MaxY() != 5 {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestColorHex(t *testing.T) {
	c := Color{R: 0x60, G: 0xa5, B: 0xfa, A: 1}

	if got := c.Hex(); got != "#60a5fa" {
		t.Errorf("expected #60a5fa, got %s", got)
	}
	if got := c.WithAlpha(0.25).A; got != 0.25 {
		t.Errorf("expected alpha 0.25, got %f", got)
	}
	if c.A != 1 {
		t.Error("WithAlpha should not mutate the receiver")
	}
}
