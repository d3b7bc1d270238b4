package ink

import "math"

// AssemblePath stitches the rails and caps into one closed contour. The
// left rail runs forward, the right rail backward, and the ends are joined
// by half-circle cap arcs, flat segments, or nothing (when tapered to a
// point). Degenerate strokes become a filled circle.
func AssemblePath(points []StrokePoint, outline *Outline, opts *StrokeOptions) *Path {
	if opts == nil {
		opts = NewStrokeOptions()
	}
	p := NewPath()
	if len(points) == 0 {
		return p
	}
	if outline == nil || len(outline.Left) < 2 || len(outline.Right) < 2 {
		// A dot: fill a circle at the point's own radius.
		p.Circle(points[0].Point, points[0].Radius)
		return p
	}

	left, right := outline.Left, outline.Right
	lastL := left[len(left)-1]
	lastR := right[len(right)-1]

	p.MoveTo(right[0])
	switch {
	case opts.Start.Taper:
		// Rails converge at a tapered start; connect without a cap.
		p.LineTo(left[0])
	case opts.Start.Cap:
		capArc(p, right[0], left[0])
	default:
		p.LineTo(left[0])
	}

	catmullRom(p, left)

	switch {
	case opts.End.Taper:
		p.LineTo(lastR)
	case opts.End.Cap:
		capArc(p, lastL, lastR)
	default:
		p.LineTo(lastR)
	}

	catmullRomReversed(p, right)
	p.Close()
	return p
}

// capArc draws a half-circle from the current point (from) to to, centered
// on their midpoint, bulging away from the stroke body.
func capArc(p *Path, from, to Point) {
	center := from.Lerp(to, 0.5)
	p.ArcTo(center, to, -math.Pi)
}

// catmullRom connects consecutive rail points with cubic segments from a
// local Catmull-Rom fit: control points use the 1/6-scaled neighbor
// difference, with endpoints acting as their own phantom neighbors. The
// spline interpolates, so the contour passes through every rail point.
func catmullRom(p *Path, pts []Point) {
	n := len(pts)
	for i := 0; i+1 < n; i++ {
		p0 := pts[max(0, i-1)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(n-1, i+2)]
		c1 := p1.Add(p2.Sub(p0).Scale(1.0 / 6.0))
		c2 := p2.Add(p3.Sub(p1).Scale(-1.0 / 6.0))
		p.CubicTo(c1, c2, p2)
	}
}

// catmullRomReversed is catmullRom over pts traversed end-to-start.
func catmullRomReversed(p *Path, pts []Point) {
	n := len(pts)
	for i := n - 1; i > 0; i-- {
		p0 := pts[min(n-1, i+1)]
		p1 := pts[i]
		p2 := pts[i-1]
		p3 := pts[max(0, i-2)]
		c1 := p1.Add(p2.Sub(p0).Scale(1.0 / 6.0))
		c2 := p2.Add(p3.Sub(p1).Scale(-1.0 / 6.0))
		p.CubicTo(c1, c2, p2)
	}
}
