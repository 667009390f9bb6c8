package scene

import (
	"math"
	"time"

	"honnef.co/go/curve"

	"github.com/Shashwat-deb/finmotif/internal/anim"
	"github.com/Shashwat-deb/finmotif/internal/motif"
	"github.com/Shashwat-deb/finmotif/internal/palette"
)

// Chart layout, in canvas fractions and logical pixels.
const (
	frontierSamples = 101

	gridSpacing = 60.0

	axisLeft   = 0.08
	axisRight  = 0.92
	axisTop    = 0.15
	axisBottom = 0.85

	hTicks  = 6
	vTicks  = 5
	tickLen = 4.0

	riskLow  = 0.05
	riskSpan = 0.85

	glowWidth = 6.0
	lineWidth = 1.8

	phaseStep = 0.016
	driftAmp  = 4.0
	driftRate = 0.3

	tangencyT = 0.35
	riskFree  = 0.06
)

// Fixed t fractions of the dots riding the frontier curve.
var frontierDotTs = []float64{0.12, 0.28, 0.45, 0.62, 0.78, 0.92}

// Fixed (risk, return) portfolios, each strictly below the frontier at
// its risk. They do not drift.
var scatterPortfolios = [][2]float64{
	{0.20, 0.22}, {0.28, 0.30}, {0.34, 0.18}, {0.42, 0.35},
	{0.50, 0.26}, {0.58, 0.40}, {0.68, 0.31}, {0.80, 0.45},
}

// Frontier is the perpetually animated efficient-frontier backdrop.
type Frontier struct {
	Palette palette.Frontier
	phase   *anim.Phase
}

func NewFrontier() *Frontier {
	return &Frontier{
		Palette: palette.FrontierDefault,
		phase:   anim.NewPhase(phaseStep),
	}
}

func (f *Frontier) Name() string { return "frontier" }

func (f *Frontier) Finished() bool { return false }

func (f *Frontier) Reset() { f.phase.Reset() }

func (f *Frontier) FrameInterval() time.Duration { return 50 * time.Millisecond }

func (f *Frontier) MaxPixelRatio() float64 { return 1.5 }

// Step advances the drift phase by one accepted frame and rebuilds the
// whole frame from (size, phase). Elapsed wall time is ignored: the
// drift advances a fixed step per accepted frame, so a throttled host
// animates at a steady visual rate.
func (f *Frontier) Step(size curve.Size, _ time.Duration) motif.Frame {
	return f.FrameAt(size, f.phase.Advance())
}

// Phase returns the current drift phase.
func (f *Frontier) Phase() float64 { return f.phase.Value() }

// FrameAt renders the frame for an explicit phase without advancing
// state. Static exports use it directly.
func (f *Frontier) FrameAt(size curve.Size, phase float64) motif.Frame {
	ops := f.gridOps(size)
	ops = append(ops, f.axisOps(size)...)

	pts := f.curvePoints(size, phase)
	ops = append(ops,
		motif.Stroke{Points: pts, Width: glowWidth, Color: f.Palette.Glow},
		motif.Stroke{Points: pts, Width: lineWidth, Color: f.Palette.Line},
	)
	ops = append(ops, f.tangentOps(size, phase)...)

	for _, t := range frontierDotTs {
		ops = append(ops, motif.Dot{Center: f.curvePoint(size, t, phase), Radius: 2, Color: f.Palette.CurveDot})
	}
	for _, p := range scatterPortfolios {
		ops = append(ops, motif.Dot{Center: f.chartPoint(size, p[0], p[1]), Radius: 2.5, Color: f.Palette.Scatter})
	}

	return motif.Frame{Size: size, Background: f.Palette.Background, Ops: ops}
}

func frontierRisk(t float64) float64 {
	return riskLow + riskSpan*t
}

func frontierReturn(t float64) float64 {
	return 0.15 + 0.75*math.Sqrt(t) - 0.15*t
}

// drift bows the curve vertically. The envelope is zero at t=0 and t=1,
// so the endpoints never move.
func drift(phase, t float64) float64 {
	return driftAmp * math.Sin(phase*driftRate) * (0.5 - math.Abs(t-0.5))
}

// chartPoint maps (risk, return) chart units into logical pixels inside
// the axis box.
func (f *Frontier) chartPoint(size curve.Size, risk, ret float64) curve.Point {
	x := size.Width * (axisLeft + risk*(axisRight-axisLeft))
	y := size.Height*axisBottom - ret*size.Height*(axisBottom-axisTop)
	return curve.Pt(x, y)
}

func (f *Frontier) curvePoint(size curve.Size, t, phase float64) curve.Point {
	p := f.chartPoint(size, frontierRisk(t), frontierReturn(t))
	p.Y -= drift(phase, t)
	return p
}

func (f *Frontier) curvePoints(size curve.Size, phase float64) []curve.Point {
	pts := make([]curve.Point, frontierSamples)
	for i := range pts {
		pts[i] = f.curvePoint(size, float64(i)/float64(frontierSamples-1), phase)
	}
	return pts
}

func (f *Frontier) gridOps(size curve.Size) []motif.Op {
	ops := make([]motif.Op, 0, int(size.Width/gridSpacing)+int(size.Height/gridSpacing)+2)
	for x := 0.0; x <= size.Width; x += gridSpacing {
		ops = append(ops, motif.Stroke{
			Points: []curve.Point{curve.Pt(x, 0), curve.Pt(x, size.Height)},
			Width:  1,
			Color:  f.Palette.Grid,
		})
	}
	for y := 0.0; y <= size.Height; y += gridSpacing {
		ops = append(ops, motif.Stroke{
			Points: []curve.Point{curve.Pt(0, y), curve.Pt(size.Width, y)},
			Width:  1,
			Color:  f.Palette.Grid,
		})
	}
	return ops
}

func (f *Frontier) axisOps(size curve.Size) []motif.Op {
	w, h := size.Width, size.Height
	left, right := axisLeft*w, axisRight*w
	top, bottom := axisTop*h, axisBottom*h

	ops := []motif.Op{
		motif.Stroke{Points: []curve.Point{curve.Pt(left, bottom), curve.Pt(right, bottom)}, Width: 1, Color: f.Palette.Axis},
		motif.Stroke{Points: []curve.Point{curve.Pt(left, top), curve.Pt(left, bottom)}, Width: 1, Color: f.Palette.Axis},
	}
	for i := 0; i < hTicks; i++ {
		x := left + float64(i)*(right-left)/float64(hTicks-1)
		ops = append(ops, motif.Stroke{
			Points: []curve.Point{curve.Pt(x, bottom), curve.Pt(x, bottom+tickLen)},
			Width:  1,
			Color:  f.Palette.Tick,
		})
	}
	for i := 0; i < vTicks; i++ {
		y := top + float64(i)*(bottom-top)/float64(vTicks-1)
		ops = append(ops, motif.Stroke{
			Points: []curve.Point{curve.Pt(left-tickLen, y), curve.Pt(left, y)},
			Width:  1,
			Color:  f.Palette.Tick,
		})
	}
	ops = append(ops,
		motif.Label{At: curve.Pt((left+right)/2, bottom+24), Text: "σ (Risk)", Size: 12, Color: f.Palette.Text},
		motif.Label{At: curve.Pt(left-28, (top+bottom)/2), Text: "E(R)", Size: 12, Angle: -math.Pi / 2, Color: f.Palette.Text},
	)
	return ops
}

// FrontierValues samples the undrifted expected-return curve; the plot
// command consumes it directly.
func FrontierValues(n int) []float64 {
	if n < 2 {
		n = frontierSamples
	}
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = frontierReturn(float64(i) / float64(n-1))
	}
	return vs
}

// tangentOps draws the capital market line: dashed from the risk-free
// return on the vertical axis, through the tangency portfolio, with a
// slight overshoot past the marker.
func (f *Frontier) tangentOps(size curve.Size, phase float64) []motif.Op {
	start := f.chartPoint(size, 0, riskFree)
	mark := f.curvePoint(size, tangencyT, phase)
	end := mark.Translate(curve.Vec2{X: 14, Y: -10})

	return []motif.Op{
		motif.Stroke{Points: []curve.Point{start, end}, Width: 1, Color: f.Palette.Tangent, Dash: []float64{4, 4}},
		motif.Dot{Center: mark, Radius: 3.5, Color: f.Palette.Marker},
		motif.Label{At: mark.Translate(curve.Vec2{X: 8, Y: -10}), Text: "Tangency", Size: 10, Color: f.Palette.Text},
	}
}
