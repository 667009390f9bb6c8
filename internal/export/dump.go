package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Shashwat-deb/finmotif/internal/motif"
)

// FrameCSV writes one row per geometry point: op index, kind, and
// logical coordinates. Labels contribute their anchor.
func FrameCSV(w io.Writer, f motif.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"op", "kind", "x", "y"}); err != nil {
		return err
	}
	row := func(op int, kind string, x, y float64) error {
		return cw.Write([]string{
			fmt.Sprintf("%d", op), kind,
			fmt.Sprintf("%.4f", x), fmt.Sprintf("%.4f", y),
		})
	}
	for i, op := range f.Ops {
		var err error
		switch o := op.(type) {
		case motif.Stroke:
			for _, p := range o.Points {
				if err = row(i, "stroke", p.X, p.Y); err != nil {
					return err
				}
			}
		case motif.Dot:
			err = row(i, "dot", o.Center.X, o.Center.Y)
		case motif.Label:
			err = row(i, "label", o.At.X, o.At.Y)
		}
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type frameJSON struct {
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	Background string   `json:"background"`
	Ops        []opJSON `json:"ops"`
}

type opJSON struct {
	Kind   string       `json:"kind"`
	Color  string       `json:"color"`
	Alpha  float64      `json:"alpha"`
	Width  float64      `json:"width,omitempty"`
	Dash   []float64    `json:"dash,omitempty"`
	Points [][2]float64 `json:"points,omitempty"`
	Center *[2]float64  `json:"center,omitempty"`
	Radius float64      `json:"radius,omitempty"`
	Text   string       `json:"text,omitempty"`
	Angle  float64      `json:"angle,omitempty"`
	Size   float64      `json:"size,omitempty"`
}

// FrameJSON writes the frame's complete draw list as indented JSON.
func FrameJSON(w io.Writer, f motif.Frame) error {
	out := frameJSON{
		Width:      f.Size.Width,
		Height:     f.Size.Height,
		Background: f.Background.Hex(),
	}
	for _, op := range f.Ops {
		switch o := op.(type) {
		case motif.Stroke:
			pts := make([][2]float64, len(o.Points))
			for i, p := range o.Points {
				pts[i] = [2]float64{p.X, p.Y}
			}
			out.Ops = append(out.Ops, opJSON{
				Kind: "stroke", Color: o.Color.Hex(), Alpha: o.Color.A,
				Width: o.Width, Dash: o.Dash, Points: pts,
			})
		case motif.Dot:
			c := [2]float64{o.Center.X, o.Center.Y}
			out.Ops = append(out.Ops, opJSON{
				Kind: "dot", Color: o.Color.Hex(), Alpha: o.Color.A,
				Center: &c, Radius: o.Radius,
			})
		case motif.Label:
			c := [2]float64{o.At.X, o.At.Y}
			out.Ops = append(out.Ops, opJSON{
				Kind: "label", Color: o.Color.Hex(), Alpha: o.Color.A,
				Center: &c, Text: o.Text, Angle: o.Angle, Size: o.Size,
			})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
