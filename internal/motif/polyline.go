package motif

import "honnef.co/go/curve"

// Polyline is an open chain of points in logical pixel space.
type Polyline []curve.Point

// Length returns the total arc length of the chain.
func (p Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += p[i-1].Distance(p[i])
	}
	return total
}

// Truncate returns the prefix of p with arc length dist, ending in a
// point interpolated partway along the final segment so the visible end
// lands exactly at dist. dist <= 0 keeps only the first point; dist >=
// Length keeps every point. Truncate never extrapolates past the end.
func (p Polyline) Truncate(dist float64) Polyline {
	if len(p) == 0 {
		return nil
	}
	if dist <= 0 {
		return Polyline{p[0]}
	}
	out := make(Polyline, 1, len(p))
	out[0] = p[0]
	remaining := dist
	for i := 1; i < len(p); i++ {
		seg := p[i-1].Distance(p[i])
		if remaining > seg {
			out = append(out, p[i])
			remaining -= seg
			continue
		}
		out = append(out, p[i-1].Lerp(p[i], remaining/seg))
		return out
	}
	return out
}

// Bounds returns the bounding box of the chain. The zero Rect is
// returned for an empty polyline.
func (p Polyline) Bounds() curve.Rect {
	if len(p) == 0 {
		return curve.Rect{}
	}
	r := curve.NewRectFromPoints(p[0], p[0])
	for _, pt := range p[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}
