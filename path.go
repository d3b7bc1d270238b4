package ink

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// ArcTo draws a circular arc around Center from the current point to Point.
// Sweep is the signed arc angle in radians: positive sweeps
// counter-clockwise, negative clockwise. The current point and Point must
// lie on the same circle around Center.
type ArcTo struct {
	Center Point
	Point  Point
	Sweep  float64
}

func (ArcTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a closed contour of move/line/cubic/arc segments produced by the
// outline pipeline, consumable by any vector rasterizer that supports
// filled paths. Contours built here are simple, so non-zero and even-odd
// winding fill identically.
type Path struct {
	elements []PathElement
	start    Point
	current  Point

	// volatile marks paths rebuilt on every call (live ribbons). It is a
	// hint that downstream renderers must not cache this geometry; it is
	// still correct if ignored.
	volatile bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve to a point.
func (p *Path) CubicTo(c1, c2, pt Point) {
	p.elements = append(p.elements, CubicTo{Control1: c1, Control2: c2, Point: pt})
	p.current = pt
}

// ArcTo draws a circular arc around center to pt, sweeping by sweep radians.
func (p *Path) ArcTo(center, pt Point, sweep float64) {
	p.elements = append(p.elements, ArcTo{Center: center, Point: pt, Sweep: sweep})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Circle adds a full circle as two half arcs.
func (p *Path) Circle(center Point, r float64) {
	right := Point{X: center.X + r, Y: center.Y}
	left := Point{X: center.X - r, Y: center.Y}
	p.MoveTo(right)
	p.ArcTo(center, left, math.Pi)
	p.ArcTo(center, right, math.Pi)
	p.Close()
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Volatile reports whether this path is rebuilt on every call and should
// not be cached by the renderer.
func (p *Path) Volatile() bool {
	return p.volatile
}

// setVolatile marks the path as per-frame geometry.
func (p *Path) setVolatile(v bool) {
	p.volatile = v
}

// Flatten converts the path to polygons, one per subpath, with curved
// segments subdivided until they deviate from their chord by less than
// tolerance. A non-positive tolerance uses 0.25.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var polys [][]Point
	var cur []Point
	pos := Point{}
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			if len(cur) > 1 {
				polys = append(polys, cur)
			}
			cur = []Point{e.Point}
			pos = e.Point
		case LineTo:
			cur = append(cur, e.Point)
			pos = e.Point
		case CubicTo:
			cur = flattenCubic(pos, e.Control1, e.Control2, e.Point, tolerance, cur)
			pos = e.Point
		case ArcTo:
			cur = flattenArc(pos, e.Center, e.Point, e.Sweep, tolerance, cur)
			pos = e.Point
		case Close:
			if len(cur) > 1 {
				polys = append(polys, cur)
			}
			cur = nil
		}
	}
	if len(cur) > 1 {
		polys = append(polys, cur)
	}
	return polys
}

// Bounds returns the exact bounding rectangle of the path. Curved
// segments contribute their true axis-aligned extrema, not just their
// endpoints, so a cap arc bulging past its chord is fully covered.
// An empty path yields the zero Rect.
func (p *Path) Bounds() Rect {
	var r Rect
	first := true
	add := func(pt Point) {
		if first {
			r = NewRect(pt, pt)
			first = false
			return
		}
		r = r.Union(NewRect(pt, pt))
	}

	pos := Point{}
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			add(e.Point)
			pos = e.Point
		case LineTo:
			add(e.Point)
			pos = e.Point
		case CubicTo:
			add(e.Point)
			addCubicExtrema(pos, e.Control1, e.Control2, e.Point, add)
			pos = e.Point
		case ArcTo:
			add(e.Point)
			addArcExtrema(pos, e.Center, e.Sweep, add)
			pos = e.Point
		case Close:
		}
	}
	return r
}

// addArcExtrema feeds add every axis-extreme point of the arc that lies
// strictly inside the swept angle. The endpoints are handled by the caller.
func addArcExtrema(from, center Point, sweep float64, add func(Point)) {
	r := from.Distance(center)
	if r < 1e-10 || sweep == 0 {
		return
	}
	a0 := math.Atan2(from.Y-center.Y, from.X-center.X)
	lo, hi := a0, a0+sweep
	if lo > hi {
		lo, hi = hi, lo
	}
	// Axis extrema sit at multiples of pi/2.
	for k := math.Ceil(lo / (math.Pi / 2)); k*(math.Pi/2) <= hi; k++ {
		a := k * (math.Pi / 2)
		add(Pt(center.X+r*math.Cos(a), center.Y+r*math.Sin(a)))
	}
}

// addCubicExtrema feeds add the interior axis extrema of a cubic segment,
// found where the per-axis derivative quadratic vanishes.
func addCubicExtrema(p0, p1, p2, p3 Point, add func(Point)) {
	extrema := func(c0, c1, c2, c3 float64) {
		a := 3 * (c3 - 3*c2 + 3*c1 - c0)
		b := 6 * (c0 - 2*c1 + c2)
		c := 3 * (c1 - c0)
		for _, t := range SolveQuadratic(a, b, c) {
			if t > 0 && t < 1 {
				add(cubicAt(p0, p1, p2, p3, t))
			}
		}
	}
	extrema(p0.X, p1.X, p2.X, p3.X)
	extrema(p0.Y, p1.Y, p2.Y, p3.Y)
}

// cubicAt evaluates the cubic at t by de Casteljau subdivision.
func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	q0 := p0.Lerp(p1, t)
	q1 := p1.Lerp(p2, t)
	q2 := p2.Lerp(p3, t)
	r0 := q0.Lerp(q1, t)
	r1 := q1.Lerp(q2, t)
	return r0.Lerp(r1, t)
}

// flattenCubic appends the flattened cubic (excluding p0) to dst.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, dst []Point) []Point {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		return append(dst, p3)
	}

	// Subdivide using de Casteljau's algorithm
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	dst = flattenCubic(p0, q0, r0, s, tolerance, dst)
	return flattenCubic(s, r1, q2, p3, tolerance, dst)
}

// flattenArc appends the flattened arc (excluding the start point) to dst.
func flattenArc(from, center, to Point, sweep, tolerance float64, dst []Point) []Point {
	r := from.Distance(center)
	if r < 1e-10 || sweep == 0 {
		return append(dst, to)
	}

	// Angular step so each chord deviates from the arc by at most tolerance.
	cosHalf := 1 - tolerance/r
	var step float64
	if cosHalf <= 0 {
		step = math.Pi / 2
	} else {
		step = 2 * math.Acos(cosHalf)
	}
	n := int(math.Ceil(math.Abs(sweep) / step))
	if n < 2 {
		n = 2
	}

	for i := 1; i < n; i++ {
		angle := sweep * float64(i) / float64(n)
		dst = append(dst, from.RotateAround(center, angle))
	}
	return append(dst, to)
}

// distanceToLine calculates the perpendicular distance from point p to
// line segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()

	if abLen < 1e-10 {
		return p.Distance(a)
	}

	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)

	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	closest := a.Add(ab.Scale(t))
	return p.Distance(closest)
}
