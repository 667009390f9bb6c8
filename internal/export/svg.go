// Package export turns frames into artifacts: SVG markup, GIF
// recordings, and CSV/JSON dumps.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/Shashwat-deb/finmotif/internal/motif"
)

// FrameSVG renders a frame as standalone SVG markup. It is the only
// image export with text fidelity.
func FrameSVG(f motif.Frame) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, f.Size.Width, f.Size.Height, f.Size.Width, f.Size.Height, f.Background.Hex()))

	for _, op := range f.Ops {
		switch o := op.(type) {
		case motif.Stroke:
			writeStroke(&sb, o)
		case motif.Dot:
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s" fill-opacity="%.3g"/>
`, o.Center.X, o.Center.Y, o.Radius, o.Color.Hex(), o.Color.A))
		case motif.Label:
			writeLabel(&sb, o)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writeStroke(sb *strings.Builder, s motif.Stroke) {
	if len(s.Points) < 2 {
		return
	}
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-opacity="%.3g" stroke-width="%.3g" stroke-linecap="round" stroke-linejoin="round"`,
		s.Color.Hex(), s.Color.A, s.Width))
	if len(s.Dash) > 0 {
		parts := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			parts[i] = fmt.Sprintf("%g", d)
		}
		sb.WriteString(fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, " ")))
	}
	sb.WriteString(` d="M`)
	for i, p := range s.Points {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
		}
	}
	sb.WriteString("\"/>\n")
}

func writeLabel(sb *strings.Builder, l motif.Label) {
	transform := ""
	if l.Angle != 0 {
		deg := l.Angle * 180 / math.Pi
		transform = fmt.Sprintf(` transform="rotate(%.0f %.1f %.1f)"`, deg, l.At.X, l.At.Y)
	}
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" fill-opacity="%.3g" font-size="%.0f" font-family="system-ui, sans-serif" text-anchor="middle"%s>%s</text>
`, l.At.X, l.At.Y, l.Color.Hex(), l.Color.A, l.Size, transform, escapeText(l.Text)))
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
