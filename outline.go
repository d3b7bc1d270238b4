package ink

import "math"

// CornerCap describes a semicircular fan inserted into the rails at a
// sharp direction change.
type CornerCap struct {
	Point  Point
	Vector Vec2 // tangent entering the corner
	Radius float64
}

// Outline holds the two offset rails of a ribbon plus the corner caps
// inserted at sharp turns. Both rails are stored start-to-end; the
// assembler traverses Right backward to close the polygon with consistent
// winding.
type Outline struct {
	Left    []Point
	Right   []Point
	Corners []CornerCap
}

// pointKind is the corner state carried across outline iterations.
type pointKind int

const (
	// pointOrdinary: regular offset-pair handling.
	pointOrdinary pointKind = iota
	// pointCorner: a fan was emitted and the turn continues into the next
	// point, which must not re-trigger.
	pointCorner
	// pointSuppressed: the point right after a corner; fanned or skipped,
	// and eligible to trigger again afterwards.
	pointSuppressed
)

const (
	// cornerFanSegments is the number of arc segments in a corner fan
	// spanning 180 degrees.
	cornerFanSegments = 13

	// endNoiseDist drops outline points whose remaining distance to the
	// stroke end is below this threshold, suppressing pen-up wobble.
	endNoiseDist = 3.0
)

// BuildOutline walks a processed stroke and produces the left/right rails
// with tapered ends and fanned sharp corners. Fewer than two points yield
// empty rails; the assembler turns those into a dot.
func BuildOutline(points []StrokePoint, opts *StrokeOptions) *Outline {
	if opts == nil {
		opts = NewStrokeOptions()
	}
	o := &Outline{}
	n := len(points)
	if n < 2 {
		return o
	}

	totalLength := points[n-1].RunningLength
	taperStart, taperEnd := taperDistances(opts, totalLength)
	minDist := opts.Size * opts.Smoothing
	minDistSq := minDist * minDist

	prevVector := points[0].Vector
	var pl, pr Point // last accepted rail point per side
	kind := pointOrdinary

	for i := 0; i < n; i++ {
		p := points[i]

		// End-noise filter: the last few samples before pen-up wobble
		// around the final position.
		if i < n-1 && totalLength-p.RunningLength < endNoiseDist {
			continue
		}

		radius := taperedRadius(p, opts, taperStart, taperEnd, totalLength)

		vector := p.Vector
		var nextVector Vec2
		nextDpr := 1.0
		if i < n-1 {
			nextVector = points[i+1].Vector
			nextDpr = vector.Dot(nextVector)
		}
		prevDpr := vector.Dot(prevVector)

		// A dot product below zero between neighboring tangents signals a
		// direction reversal of more than 90 degrees.
		sharpHere := prevDpr < 0 && kind != pointCorner
		sharpNext := i < n-1 && nextDpr < 0

		if sharpHere || sharpNext {
			pl, pr = o.fanCorner(p.Point, prevVector, radius)
			o.Corners = append(o.Corners, CornerCap{Point: p.Point, Vector: vector, Radius: radius})
			if sharpNext {
				kind = pointCorner
			} else {
				kind = pointSuppressed
			}
			prevVector = vector
			continue
		}
		kind = pointOrdinary

		if i == n-1 {
			offset := vector.Perp().Scale(radius)
			o.Left = append(o.Left, p.Point.Add(offset))
			o.Right = append(o.Right, p.Point.Add(offset.Neg()))
			continue
		}

		// Blend this tangent with the next before taking the perpendicular
		// for a mitered, smoother offset.
		blended := vector.Add(nextVector).Scale(0.5)
		if blended.LengthSquared() < 1e-10 {
			blended = vector
		}
		offset := blended.Normalize().Perp().Scale(radius)

		tl := p.Point.Add(offset)
		if i <= 1 || pl.DistanceSquared(tl) > minDistSq {
			o.Left = append(o.Left, tl)
			pl = tl
		}
		tr := p.Point.Add(offset.Neg())
		if i <= 1 || pr.DistanceSquared(tr) > minDistSq {
			o.Right = append(o.Right, tr)
			pr = tr
		}

		prevVector = vector
	}

	return o
}

// fanCorner emits a semicircular fan of rail points around center so the
// rails wrap the corner instead of crossing through it. Returns the final
// fan point on each rail.
func (o *Outline) fanCorner(center Point, prevVector Vec2, radius float64) (pl, pr Point) {
	offset := prevVector.Perp().Scale(radius)
	start := center.Add(offset)
	startR := center.Add(offset.Neg())
	for s := 0; s <= cornerFanSegments; s++ {
		t := float64(s) / cornerFanSegments
		pl = start.RotateAround(center, math.Pi*t)
		pr = startR.RotateAround(center, -math.Pi*t)
		o.Left = append(o.Left, pl)
		o.Right = append(o.Right, pr)
	}
	return pl, pr
}

// taperDistances resolves the configured tapers into concrete distances.
// A zero result disables that taper.
func taperDistances(opts *StrokeOptions, totalLength float64) (start, end float64) {
	if opts.Start.Taper {
		start = opts.Start.TaperDistance
		if start <= 0 {
			start = math.Max(opts.Size, totalLength)
		}
	}
	if opts.End.Taper {
		end = opts.End.TaperDistance
		if end <= 0 {
			end = math.Max(opts.Size, totalLength)
		}
	}
	return start, end
}

// taperedRadius scales a point's radius inside the taper zones.
func taperedRadius(p StrokePoint, opts *StrokeOptions, taperStart, taperEnd, totalLength float64) float64 {
	radius := p.Radius
	if taperStart <= 0 && taperEnd <= 0 {
		return radius
	}
	ts, te := 1.0, 1.0
	if taperStart > 0 && p.RunningLength < taperStart {
		ts = easeOrLinear(opts.Start.Easing)(p.RunningLength / taperStart)
	}
	if taperEnd > 0 && totalLength-p.RunningLength < taperEnd {
		te = easeOrLinear(opts.End.Easing)((totalLength - p.RunningLength) / taperEnd)
	}
	return math.Max(radiusFloor, radius*math.Min(ts, te))
}

func easeOrLinear(e Easing) Easing {
	if e == nil {
		return Linear
	}
	return e
}
