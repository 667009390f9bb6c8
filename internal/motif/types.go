package motif

import (
	"fmt"
	"time"

	"honnef.co/go/curve"
)

// Color is an RGB color with a straight alpha in [0, 1]. Backends
// composite it over the frame background.
type Color struct {
	R, G, B uint8
	A       float64
}

func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Op is a single draw instruction in logical pixel space.
type Op interface {
	op()
}

// Stroke draws an open polyline. An empty Dash means a solid line;
// otherwise Dash alternates on/off run lengths. Caps and joins are round.
type Stroke struct {
	Points []curve.Point
	Width  float64
	Color  Color
	Dash   []float64
}

// Dot fills a disc.
type Dot struct {
	Center curve.Point
	Radius float64
	Color  Color
}

// Label anchors text at a point, rotated by Angle radians about it.
type Label struct {
	At    curve.Point
	Text  string
	Size  float64
	Angle float64
	Color Color
}

func (Stroke) op() {}
func (Dot) op()    {}
func (Label) op()  {}

// Frame is the complete draw list for one animation frame.
type Frame struct {
	Size       curve.Size
	Background Color
	Ops        []Op
}

// Scene is a deterministic animation stepped by a host loop. Step
// advances exactly one accepted frame; whether a host callback becomes
// an accepted frame is the caller's decision, paced by FrameInterval.
type Scene interface {
	Name() string
	Step(size curve.Size, elapsed time.Duration) Frame
	Finished() bool
	Reset()

	// FrameInterval is the minimum spacing between accepted frames.
	// Zero means every host callback draws.
	FrameInterval() time.Duration

	// MaxPixelRatio caps the device pixel ratio applied to backing
	// buffers for this scene.
	MaxPixelRatio() float64
}
