package render

import (
	"testing"

	"honnef.co/go/curve"

	"github.com/Shashwat-deb/finmotif/internal/motif"
)

var (
	white = motif.Color{R: 255, G: 255, B: 255, A: 1}
	black = motif.Color{R: 0, G: 0, B: 0, A: 1}
)

func TestBrailleSet(t *testing.T) {
	c := NewBraille(10, 5)
	c.Clear(black)

	c.Set(0, 0, white)
	if got := c.Rune(0, 0); got != 0x2801 {
		t.Errorf("expected rune 0x2801, got %#x", got)
	}

	c.Set(3, 7, white)
	if got := c.Rune(1, 1); got&0x80 == 0 {
		t.Errorf("expected lower-right dot set, got %#x", got)
	}
}

func TestBrailleSetOutOfBounds(t *testing.T) {
	c := NewBraille(4, 4)
	c.Clear(black)

	c.Set(-1, 0, white)
	c.Set(0, -5, white)
	c.Set(800, 2, white)
	c.Set(2, 400, white)

	c.Cells(func(col, row int, r rune, _ motif.Color) {
		t.Errorf("out-of-bounds set lit cell (%d, %d)", col, row)
	})
}

func TestBrailleDrawLine(t *testing.T) {
	c := NewBraille(10, 5)
	c.Clear(black)

	c.DrawLine(0, 0, 10, 0, white)

	if c.Rune(0, 0) == 0x2800 {
		t.Error("line start cell empty")
	}
	if c.Rune(5, 0) == 0x2800 {
		t.Error("line end cell empty")
	}
}

func TestBrailleTextWinsOverInk(t *testing.T) {
	c := NewBraille(10, 5)
	c.Clear(black)

	c.WriteText(2, 1, "E(R)", white, false)
	c.Set(4, 4, white) // subpixel inside the 'E' cell

	if got := c.Rune(2, 1); got != 'E' {
		t.Errorf("expected text rune to survive ink, got %q", got)
	}
	if got := c.Rune(3, 1); got != '(' {
		t.Errorf("expected '(' at next cell, got %q", got)
	}
}

func TestBrailleVerticalText(t *testing.T) {
	c := NewBraille(10, 5)
	c.Clear(black)

	c.WriteText(0, 0, "ER", white, true)

	if c.Rune(0, 0) != 'E' || c.Rune(0, 1) != 'R' {
		t.Error("vertical text should stack one rune per row")
	}
}

func TestBrailleDrawFrameClearsPreviousFrame(t *testing.T) {
	c := NewBraille(20, 10)
	line := motif.Stroke{
		Points: []curve.Point{curve.Pt(0, 5), curve.Pt(40, 5)},
		Width:  1,
		Color:  white,
	}
	c.DrawFrame(motif.Frame{Size: curve.Sz(40, 40), Background: black, Ops: []motif.Op{line}})
	c.DrawFrame(motif.Frame{Size: curve.Sz(40, 40), Background: black})

	c.Cells(func(col, row int, r rune, _ motif.Color) {
		t.Errorf("stale cell (%d, %d) after clear", col, row)
	})
}

func TestDashWalk(t *testing.T) {
	var runs [][2]curve.Point
	pts := []curve.Point{curve.Pt(0, 0), curve.Pt(16, 0)}

	DashWalk(pts, []float64{4, 4}, func(a, b curve.Point) {
		runs = append(runs, [2]curve.Point{a, b})
	})

	if len(runs) != 2 {
		t.Fatalf("expected 2 on-runs, got %d", len(runs))
	}
	if runs[0][1].X != 4 || runs[1][0].X != 8 || runs[1][1].X != 12 {
		t.Errorf("unexpected dash runs %v", runs)
	}
}

func TestDashWalkDegeneratePattern(t *testing.T) {
	var runs int
	pts := []curve.Point{curve.Pt(0, 0), curve.Pt(10, 0)}

	DashWalk(pts, []float64{0, 0}, func(a, b curve.Point) { runs++ })
	if runs != 1 {
		t.Errorf("zero pattern should fall back to solid, got %d runs", runs)
	}
}

func TestRasterDot(t *testing.T) {
	r := NewRaster(20, 20, 1)
	r.DrawFrame(motif.Frame{
		Size:       curve.Sz(20, 20),
		Background: black,
		Ops:        []motif.Op{motif.Dot{Center: curve.Pt(10, 10), Radius: 3, Color: white}},
	})

	if got := r.Image().RGBAAt(10, 10); got.R != 255 {
		t.Errorf("expected white dot center, got %v", got)
	}
	if got := r.Image().RGBAAt(0, 0); got.R != 0 {
		t.Errorf("expected background corner, got %v", got)
	}
	if got := r.Image().RGBAAt(10, 10); got.A != 0xff {
		t.Error("raster output must be opaque")
	}
}

func TestRasterStrokeCoverageDoesNotStack(t *testing.T) {
	r := NewRaster(30, 20, 1)
	r.DrawFrame(motif.Frame{
		Size:       curve.Sz(30, 20),
		Background: black,
		Ops: []motif.Op{motif.Stroke{
			Points: []curve.Point{curve.Pt(2, 10), curve.Pt(28, 10)},
			Width:  3,
			Color:  white.WithAlpha(0.5),
		}},
	})

	got := r.Image().RGBAAt(15, 10).R
	// A half-alpha stroke lands near 128; overlapping stamps blended
	// one by one would push it toward 190.
	if got < 100 || got > 145 {
		t.Errorf("expected single half-alpha composite, got %d", got)
	}
}

func TestRasterOutOfBoundsGeometry(t *testing.T) {
	r := NewRaster(10, 10, 2)
	r.DrawFrame(motif.Frame{
		Size:       curve.Sz(5, 5),
		Background: black,
		Ops: []motif.Op{
			motif.Stroke{Points: []curve.Point{curve.Pt(-50, -50), curve.Pt(100, 100)}, Width: 4, Color: white},
			motif.Dot{Center: curve.Pt(500, 500), Radius: 10, Color: white},
		},
	})
	// Reaching here without a panic is the assertion; spot-check a pixel
	// on the diagonal.
	if got := r.Image().RGBAAt(5, 5); got.R == 0 {
		t.Error("expected diagonal stroke to touch the buffer")
	}
}
