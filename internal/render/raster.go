package render

import (
	"image"
	"image/color"
	"math"

	"honnef.co/go/curve"

	"github.com/Shashwat-deb/finmotif/internal/motif"
	"github.com/Shashwat-deb/finmotif/internal/palette"
)

// Raster rasterizes frames into an RGBA image at a device scale.
// Strokes are stamped as overlapping discs, giving round caps and
// joins; per-op coverage is accumulated before compositing so a
// translucent stroke does not darken where its own stamps overlap.
// Labels are not rasterized.
type Raster struct {
	img     *image.RGBA
	scale   float64
	cover   []float64
	touched []int
}

func NewRaster(w, h int, scale float64) *Raster {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if scale < 1 {
		scale = 1
	}
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		scale: scale,
		cover: make([]float64, w*h),
	}
}

func (r *Raster) Image() *image.RGBA { return r.img }

// DrawFrame clears to the frame background and replays its ops.
func (r *Raster) DrawFrame(f motif.Frame) {
	b := r.img.Bounds()
	bg := color.RGBA{R: f.Background.R, G: f.Background.G, B: f.Background.B, A: 0xff}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r.img.SetRGBA(x, y, bg)
		}
	}

	for _, op := range f.Ops {
		switch o := op.(type) {
		case motif.Stroke:
			r.strokeOp(o)
		case motif.Dot:
			r.discCoverage(o.Center.X*r.scale, o.Center.Y*r.scale, o.Radius*r.scale)
			r.composite(o.Color)
		}
	}
}

func (r *Raster) strokeOp(s motif.Stroke) {
	if len(s.Points) < 2 {
		return
	}
	radius := s.Width * r.scale / 2
	if radius < 0.5 {
		radius = 0.5
	}
	emit := func(a, b curve.Point) {
		r.stampSegment(a, b, radius)
	}
	if len(s.Dash) == 0 {
		for i := 1; i < len(s.Points); i++ {
			emit(s.Points[i-1], s.Points[i])
		}
	} else {
		DashWalk(s.Points, s.Dash, emit)
	}
	r.composite(s.Color)
}

// DashWalk replays the "on" runs of an alternating dash pattern along a
// polyline, in the polyline's own coordinate space.
func DashWalk(points []curve.Point, pattern []float64, emit func(a, b curve.Point)) {
	total := 0.0
	for _, d := range pattern {
		total += d
	}
	if total <= 0 {
		for i := 1; i < len(points); i++ {
			emit(points[i-1], points[i])
		}
		return
	}

	idx, on := 0, true
	remaining := pattern[0]
	for i := 1; i < len(points); i++ {
		p0, p1 := points[i-1], points[i]
		segLen := p0.Distance(p1)
		pos := 0.0
		for pos < segLen {
			run := math.Min(remaining, segLen-pos)
			if on && run > 0 {
				emit(p0.Lerp(p1, pos/segLen), p0.Lerp(p1, (pos+run)/segLen))
			}
			pos += run
			remaining -= run
			if remaining <= 0 {
				idx = (idx + 1) % len(pattern)
				remaining = pattern[idx]
				on = !on
			}
		}
	}
}

func (r *Raster) stampSegment(a, b curve.Point, radius float64) {
	ax, ay := a.X*r.scale, a.Y*r.scale
	bx, by := b.X*r.scale, b.Y*r.scale
	steps := int(math.Hypot(bx-ax, by-ay)/0.5) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.discCoverage(ax+(bx-ax)*t, ay+(by-ay)*t, radius)
	}
}

// discCoverage accumulates max coverage of a disc over the scratch
// buffer, with half-pixel edge falloff.
func (r *Raster) discCoverage(cx, cy, rad float64) {
	b := r.img.Bounds()
	x0 := clampInt(int(math.Floor(cx-rad-1)), 0, b.Max.X-1)
	x1 := clampInt(int(math.Ceil(cx+rad+1)), 0, b.Max.X-1)
	y0 := clampInt(int(math.Floor(cy-rad-1)), 0, b.Max.Y-1)
	y1 := clampInt(int(math.Ceil(cy+rad+1)), 0, b.Max.Y-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			cov := rad + 0.5 - d
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			i := y*b.Max.X + x
			if r.cover[i] == 0 {
				r.touched = append(r.touched, i)
			}
			if cov > r.cover[i] {
				r.cover[i] = cov
			}
		}
	}
}

// composite flattens the accumulated coverage in one pass and resets
// the scratch buffer.
func (r *Raster) composite(c motif.Color) {
	w := r.img.Bounds().Max.X
	for _, i := range r.touched {
		a := c.A * r.cover[i]
		r.cover[i] = 0
		x, y := i%w, i/w
		dst := r.img.RGBAAt(x, y)
		out := palette.Composite(
			motif.Color{R: dst.R, G: dst.G, B: dst.B, A: 1},
			c.WithAlpha(a),
		)
		r.img.SetRGBA(x, y, color.RGBA{R: out.R, G: out.G, B: out.B, A: 0xff})
	}
	r.touched = r.touched[:0]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
