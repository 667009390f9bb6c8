package export

import (
	"image"
	"image/color"
	colorpalette "image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/Shashwat-deb/finmotif/internal/motif"
	"github.com/Shashwat-deb/finmotif/internal/render"
)

// Recorder accumulates paletted frames and encodes an endlessly looping
// GIF.
type Recorder struct {
	frames []*image.Paletted
	delays []int
}

// Add quantizes a frame onto the Plan 9 palette. The delay is rounded
// to GIF's centisecond resolution, floored at 2cs (the slowest delay
// most viewers honor).
func (r *Recorder) Add(img image.Image, delay time.Duration) {
	b := img.Bounds()
	pal := image.NewPaletted(b, colorpalette.Plan9)
	draw.Draw(pal, b, img, b.Min, draw.Src)

	cs := int(delay / (10 * time.Millisecond))
	if cs < 2 {
		cs = 2
	}
	r.frames = append(r.frames, pal)
	r.delays = append(r.delays, cs)
}

func (r *Recorder) Len() int { return len(r.frames) }

func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return motif.ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0, Image: r.frames, Delay: r.delays}
	return gif.EncodeAll(w, &anim)
}

// BrailleImage stamps a braille canvas into a paletted image, one 4x4
// pixel block per lit subpixel. Text cells are skipped.
func BrailleImage(c *render.Braille, bg motif.Color) *image.Paletted {
	const dotW, dotH = 4, 4
	w, h := c.SubpixelSize()
	img := image.NewPaletted(image.Rect(0, 0, w*dotW, h*dotH), colorpalette.Plan9)

	bgIdx := uint8(img.Palette.Index(color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 0xff}))
	for i := range img.Pix {
		img.Pix[i] = bgIdx
	}

	idxCache := make(map[motif.Color]uint8)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !c.DotAt(x, y) {
				continue
			}
			ink := c.ColorAt(x/2, y/4)
			idx, ok := idxCache[ink]
			if !ok {
				idx = uint8(img.Palette.Index(color.RGBA{R: ink.R, G: ink.G, B: ink.B, A: 0xff}))
				idxCache[ink] = idx
			}
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(x*dotW+px, y*dotH+py, idx)
				}
			}
		}
	}
	return img
}
