// Package surface sizes backing buffers for scene frames: logical pixel
// dimensions plus a capped device pixel ratio.
package surface

import (
	"math"

	"honnef.co/go/curve"
)

// Surface is the sizing of one render target. Scenes draw in Logical
// coordinates; backends allocate Buffer-sized storage and apply
// Transform when rasterizing.
type Surface struct {
	Logical curve.Size
	Scale   float64
}

// Fit sizes a surface to fill a parent box. The effective scale is the
// device pixel ratio capped at maxRatio and floored at 1. Fitting twice
// with identical inputs yields an identical Surface.
func Fit(parent curve.Size, pixelRatio, maxRatio float64) Surface {
	scale := math.Min(pixelRatio, maxRatio)
	if scale < 1 {
		scale = 1
	}
	logical := parent
	if logical.Width < 0 {
		logical.Width = 0
	}
	if logical.Height < 0 {
		logical.Height = 0
	}
	return Surface{Logical: logical, Scale: scale}
}

// Transform maps logical pixels to device pixels.
func (s Surface) Transform() curve.Affine {
	return curve.Scale(s.Scale, s.Scale)
}

// Buffer returns the device-pixel dimensions of the backing store.
func (s Surface) Buffer() (w, h int) {
	return int(math.Round(s.Logical.Width * s.Scale)),
		int(math.Round(s.Logical.Height * s.Scale))
}
