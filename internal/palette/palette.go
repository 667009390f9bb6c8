// Package palette defines the fixed color schemes of the bundled scenes.
package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Shashwat-deb/finmotif/internal/motif"
)

// ParseHex parses "#rrggbb" into an opaque color.
func ParseHex(s string) (motif.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return motif.Color{}, err
	}
	r, g, b := c.RGB255()
	return motif.Color{R: r, G: g, B: b, A: 1}, nil
}

// Hex is ParseHex for package-level literals; it panics on malformed
// input.
func Hex(s string) motif.Color {
	c, err := ParseHex(s)
	if err != nil {
		panic("palette: bad hex literal " + s)
	}
	return c
}

// Composite flattens c over an opaque background. Terminal and raster
// backends use it to approximate stroke alpha.
func Composite(bg, c motif.Color) motif.Color {
	a := c.A
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	blend := func(under, over uint8) uint8 {
		return uint8(math.Round(float64(under)*(1-a) + float64(over)*a))
	}
	return motif.Color{
		R: blend(bg.R, c.R),
		G: blend(bg.G, c.G),
		B: blend(bg.B, c.B),
		A: 1,
	}
}

// Frontier is the palette of the grid-and-frontier backdrop.
type Frontier struct {
	Background motif.Color
	Grid       motif.Color
	Axis       motif.Color
	Tick       motif.Color
	Text       motif.Color
	Glow       motif.Color
	Line       motif.Color
	Tangent    motif.Color
	Marker     motif.Color
	CurveDot   motif.Color
	Scatter    motif.Color
}

var FrontierDefault = Frontier{
	Background: Hex("#0b1120"),
	Grid:       Hex("#94a3b8").WithAlpha(0.05),
	Axis:       Hex("#94a3b8").WithAlpha(0.35),
	Tick:       Hex("#94a3b8").WithAlpha(0.35),
	Text:       Hex("#94a3b8").WithAlpha(0.70),
	Glow:       Hex("#3b82f6").WithAlpha(0.08),
	Line:       Hex("#60a5fa").WithAlpha(0.30),
	Tangent:    Hex("#facc15").WithAlpha(0.35),
	Marker:     Hex("#facc15").WithAlpha(0.80),
	CurveDot:   Hex("#60a5fa").WithAlpha(0.50),
	Scatter:    Hex("#94a3b8").WithAlpha(0.25),
}

// Curve is the palette of one growth draw-in variant.
type Curve struct {
	Background motif.Color
	Glow       motif.Color
	Line       motif.Color
}

var (
	CurveBlue = Curve{
		Background: Hex("#0b1120"),
		Glow:       Hex("#3b82f6").WithAlpha(0.10),
		Line:       Hex("#60a5fa").WithAlpha(0.55),
	}

	CurveGreen = Curve{
		Background: Hex("#0b1120"),
		Glow:       Hex("#10b981").WithAlpha(0.10),
		Line:       Hex("#34d399").WithAlpha(0.55),
	}
)
