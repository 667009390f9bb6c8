package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"honnef.co/go/curve"

	"github.com/Shashwat-deb/finmotif/internal/motif"
	"github.com/Shashwat-deb/finmotif/internal/render"
)

func toRaylib(c motif.Color) rl.Color {
	a := c.A
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return rl.NewColor(c.R, c.G, c.B, uint8(math.Round(a*255)))
}

func toVec(p curve.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

// drawFrame replays a frame's ops with raylib primitives. Logical
// pixels map 1:1 onto screen coordinates; raylib owns the DPI scaling
// of the backing buffer.
func (a *App) drawFrame(f motif.Frame) {
	for _, op := range f.Ops {
		switch o := op.(type) {
		case motif.Stroke:
			a.drawStroke(o)
		case motif.Dot:
			rl.DrawCircleV(toVec(o.Center), float32(o.Radius), toRaylib(o.Color))
		case motif.Label:
			a.drawLabel(o)
		}
	}
}

func (a *App) drawStroke(s motif.Stroke) {
	if len(s.Points) < 2 {
		return
	}
	color := toRaylib(s.Color)
	width := float32(s.Width)
	if len(s.Dash) > 0 {
		render.DashWalk(s.Points, s.Dash, func(p0, p1 curve.Point) {
			rl.DrawLineEx(toVec(p0), toVec(p1), width, color)
		})
		return
	}
	for i := 1; i < len(s.Points); i++ {
		rl.DrawLineEx(toVec(s.Points[i-1]), toVec(s.Points[i]), width, color)
	}
	// Round the joins so the glow pass has no seams.
	if s.Width > 2 {
		for _, p := range s.Points[1 : len(s.Points)-1] {
			rl.DrawCircleV(toVec(p), width/2, color)
		}
	}
}

// drawLabel centers text on its anchor, rotated about it.
func (a *App) drawLabel(l motif.Label) {
	size := float32(l.Size)
	measure := rl.MeasureTextEx(a.font, l.Text, size, 1)
	origin := rl.NewVector2(measure.X/2, measure.Y/2)
	deg := float32(l.Angle * 180 / math.Pi)
	rl.DrawTextPro(a.font, l.Text, toVec(l.At), origin, deg, size, 1, toRaylib(l.Color))
}
