// Package render turns frames into pixels: a braille canvas for
// terminals and an RGBA raster for image exports.
package render

import (
	"math"
	"strings"

	"honnef.co/go/curve"

	"github.com/Shashwat-deb/finmotif/internal/motif"
	"github.com/Shashwat-deb/finmotif/internal/palette"
)

// Braille Patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Braille renders frames onto a cell grid of braille runes, two
// subpixels wide and four tall per cell. Label text overwrites whole
// cells with plain runes; image capture skips those, terminals show
// them.
type Braille struct {
	Cols, Rows int
	cells      [][]rune
	colors     [][]motif.Color
	bg         motif.Color
}

func NewBraille(cols, rows int) *Braille {
	c := &Braille{
		Cols:   cols,
		Rows:   rows,
		cells:  make([][]rune, rows),
		colors: make([][]motif.Color, rows),
	}
	for i := range c.cells {
		c.cells[i] = make([]rune, cols)
		c.colors[i] = make([]motif.Color, cols)
		for j := range c.cells[i] {
			c.cells[i][j] = 0x2800
		}
	}
	return c
}

// SubpixelSize returns the drawable resolution in braille subpixels.
func (c *Braille) SubpixelSize() (w, h int) {
	return c.Cols * 2, c.Rows * 4
}

func (c *Braille) Clear(bg motif.Color) {
	c.bg = bg
	for i := range c.cells {
		for j := range c.cells[i] {
			c.cells[i][j] = 0x2800
			c.colors[i][j] = motif.Color{}
		}
	}
}

// Set lights the subpixel at (x, y) with ink approximating color over
// the background. Text cells are left alone.
func (c *Braille) Set(x, y int, color motif.Color) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Cols || row >= c.Rows {
		return
	}
	r := c.cells[row][col]
	if r < 0x2800 || r > 0x28FF {
		return
	}
	c.cells[row][col] = r | rune(pixelMap[y%4][x%2])
	c.colors[row][col] = palette.Composite(c.bg, color)
}

func (c *Braille) Rune(col, row int) rune {
	return c.cells[row][col]
}

// DotAt reports whether subpixel (x, y) is lit. Text cells read as
// unlit; image capture reproduces geometry only.
func (c *Braille) DotAt(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col := x / 2
	row := y / 4
	if col >= c.Cols || row >= c.Rows {
		return false
	}
	r := c.cells[row][col]
	if r < 0x2800 || r > 0x28FF {
		return false
	}
	return r&rune(pixelMap[y%4][x%2]) != 0
}

// ColorAt returns the ink color of a cell; the zero Color means the
// cell is empty.
func (c *Braille) ColorAt(col, row int) motif.Color {
	return c.colors[row][col]
}

// DrawLine draws a 1-subpixel line with Bresenham's algorithm.
func (c *Braille) DrawLine(x0, y0, x1, y1 int, color motif.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillDisc fills a circle at subpixel center (cx, cy).
func (c *Braille) FillDisc(cx, cy, r float64, color motif.Color) {
	if r < 0.5 {
		r = 0.5
	}
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r*r {
				c.Set(x, y, color)
			}
		}
	}
}

// WriteText overwrites cells with plain runes starting at (col, row).
// vertical stacks one rune per row instead.
func (c *Braille) WriteText(col, row int, text string, color motif.Color, vertical bool) {
	for _, r := range text {
		if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
			return
		}
		c.cells[row][col] = r
		c.colors[row][col] = palette.Composite(c.bg, color)
		if vertical {
			row++
		} else {
			col++
		}
	}
}

// DrawFrame clears the canvas and replays a frame, mapping logical
// coordinates onto the subpixel grid.
func (c *Braille) DrawFrame(f motif.Frame) {
	c.Clear(f.Background)
	if f.Size.Width <= 0 || f.Size.Height <= 0 {
		return
	}
	w, h := c.SubpixelSize()
	sx := float64(w-1) / f.Size.Width
	sy := float64(h-1) / f.Size.Height

	for _, op := range f.Ops {
		switch o := op.(type) {
		case motif.Stroke:
			c.stroke(o, sx, sy)
		case motif.Dot:
			c.FillDisc(o.Center.X*sx, o.Center.Y*sy, o.Radius*math.Min(sx, sy), o.Color)
		case motif.Label:
			vertical := math.Abs(o.Angle) > 0.1
			col := int(math.Round(o.At.X * sx / 2))
			row := int(math.Round(o.At.Y * sy / 4))
			c.WriteText(col, row, o.Text, o.Color, vertical)
		}
	}
}

func (c *Braille) stroke(s motif.Stroke, sx, sy float64) {
	if len(s.Points) < 2 {
		return
	}
	if len(s.Dash) > 0 {
		c.dashedStroke(s, sx, sy)
		return
	}
	for i := 1; i < len(s.Points); i++ {
		p0, p1 := s.Points[i-1], s.Points[i]
		c.DrawLine(
			int(math.Round(p0.X*sx)), int(math.Round(p0.Y*sy)),
			int(math.Round(p1.X*sx)), int(math.Round(p1.Y*sy)),
			s.Color,
		)
	}
}

func (c *Braille) dashedStroke(s motif.Stroke, sx, sy float64) {
	DashWalk(s.Points, s.Dash, func(a, b curve.Point) {
		c.DrawLine(
			int(math.Round(a.X*sx)), int(math.Round(a.Y*sy)),
			int(math.Round(b.X*sx)), int(math.Round(b.Y*sy)),
			s.Color,
		)
	})
}

func (c *Braille) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Cells visits every non-empty cell; text cells arrive with their
// plain rune.
func (c *Braille) Cells(fn func(col, row int, r rune, color motif.Color)) {
	for row := range c.cells {
		for col, r := range c.cells[row] {
			if r == 0x2800 {
				continue
			}
			fn(col, row, r, c.colors[row][col])
		}
	}
}
