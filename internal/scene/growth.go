package scene

import (
	"math"
	"time"

	"honnef.co/go/curve"

	"github.com/Shashwat-deb/finmotif/internal/anim"
	"github.com/Shashwat-deb/finmotif/internal/motif"
	"github.com/Shashwat-deb/finmotif/internal/palette"
)

const (
	growthSamples = 201

	insetLeft   = 0.10
	insetRight  = 0.06
	insetTop    = 0.22
	insetBottom = 0.18
)

// Params configures one growth draw-in variant. The bundled variants
// differ only in name, palette, and reveal duration.
type Params struct {
	Name     string
	Duration time.Duration
	Palette  palette.Curve
}

func Blue() Params {
	return Params{Name: "growth-blue", Duration: 1800 * time.Millisecond, Palette: palette.CurveBlue}
}

func Green() Params {
	return Params{Name: "growth-green", Duration: 1700 * time.Millisecond, Palette: palette.CurveGreen}
}

// Growth reveals a performance curve left to right by arc length with a
// cubic ease-out, then holds the final frame.
type Growth struct {
	params Params

	pts      motif.Polyline
	total    float64
	size     curve.Size
	started  bool
	finished bool
}

func NewGrowth(p Params) *Growth {
	return &Growth{params: p}
}

func (g *Growth) Name() string { return g.params.Name }

func (g *Growth) Finished() bool { return g.finished }

func (g *Growth) Reset() { *g = Growth{params: g.params} }

func (g *Growth) FrameInterval() time.Duration { return 0 }

func (g *Growth) MaxPixelRatio() float64 { return 2.0 }

func (g *Growth) Duration() time.Duration { return g.params.Duration }

// SetDuration overrides the reveal duration. It takes effect on the
// next Reset or fresh scene; callers set it before the first Step.
func (g *Growth) SetDuration(d time.Duration) {
	if d > 0 {
		g.params.Duration = d
	}
}

// SetPalette overrides the variant colors.
func (g *Growth) SetPalette(p palette.Curve) { g.params.Palette = p }

// Palette returns the variant colors in effect.
func (g *Growth) Palette() palette.Curve { return g.params.Palette }

// Step renders the reveal at elapsed. Sample points are generated once,
// at the first step, for the size then in effect: a resize mid-reveal
// keeps drawing the stale geometry. Once finished, a step with a new
// size regenerates the points and redraws the final frame statically
// without replaying.
func (g *Growth) Step(size curve.Size, elapsed time.Duration) motif.Frame {
	if !g.started || (g.finished && size != g.size) {
		g.pts = g.points(size)
		g.total = g.pts.Length()
		g.size = size
		g.started = true
	}

	progress := anim.Reveal{Duration: g.params.Duration}.Progress(elapsed)
	if progress >= 1 {
		g.finished = true
		return g.static()
	}

	drawn := g.pts.Truncate(progress * g.total)
	ops := make([]motif.Op, 0, 2)
	if len(drawn) >= 2 {
		ops = append(ops,
			motif.Stroke{Points: drawn, Width: glowWidth, Color: g.params.Palette.Glow},
			motif.Stroke{Points: drawn, Width: lineWidth, Color: g.params.Palette.Line},
		)
	}
	return motif.Frame{Size: size, Background: g.params.Palette.Background, Ops: ops}
}

// static strokes the full sample array directly, sidestepping the
// truncation lerp at the endpoint.
func (g *Growth) static() motif.Frame {
	return motif.Frame{
		Size:       g.size,
		Background: g.params.Palette.Background,
		Ops: []motif.Op{
			motif.Stroke{Points: g.pts, Width: glowWidth, Color: g.params.Palette.Glow},
			motif.Stroke{Points: g.pts, Width: lineWidth, Color: g.params.Palette.Line},
		},
	}
}

func (g *Growth) points(size curve.Size) motif.Polyline {
	pts := make(motif.Polyline, growthSamples)
	for i := range pts {
		t := float64(i) / float64(growthSamples-1)
		x := size.Width * (insetLeft + t*(1-insetLeft-insetRight))
		y := size.Height * (insetTop + (1-growthValue(t))*(1-insetTop-insetBottom))
		pts[i] = curve.Pt(x, y)
	}
	return pts
}

// growthValue is the closed-form portfolio value at t in [0, 1]: a
// power-law base, three sinusoid harmonics for market texture, and two
// shallow drawdown dips.
func growthValue(t float64) float64 {
	v := 0.15 + 0.65*math.Pow(t, 0.7)
	v += 0.04 * math.Sin(3.2*math.Pi*t)
	v += 0.025 * math.Sin(7.1*math.Pi*t+0.5)
	v += 0.015 * math.Sin(12.3*math.Pi*t+1.2)
	v -= growthDip(t, 0.30, 0.42, 0.035)
	v -= growthDip(t, 0.60, 0.70, 0.02)
	return v
}

// growthDip is a half-sine drawdown on (a, b), zero outside.
func growthDip(t, a, b, amp float64) float64 {
	if t <= a || t >= b {
		return 0
	}
	return amp * math.Sin(math.Pi*(t-a)/(b-a))
}

// GrowthValues samples the value series; the plot and analyze commands
// consume it directly.
func GrowthValues(n int) []float64 {
	if n < 2 {
		n = growthSamples
	}
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = growthValue(float64(i) / float64(n-1))
	}
	return vs
}

// GrowthNoise samples only the sinusoid-and-dip texture, with the
// power-law base removed. The analyze command inspects its spectrum.
func GrowthNoise(n int) []float64 {
	if n < 2 {
		n = growthSamples
	}
	vs := make([]float64, n)
	for i := range vs {
		t := float64(i) / float64(n-1)
		vs[i] = growthValue(t) - (0.15 + 0.65*math.Pow(t, 0.7))
	}
	return vs
}
