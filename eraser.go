package ink

import "math"

// SplitStroke subtracts a circular eraser swept along eraserPath from a
// stroke's sample sequence. Stretches of the stroke inside the eraser's
// swept disk are removed, with clean cut points synthesized at the exact
// circle-boundary crossings, and the surviving sub-sequences are returned
// as independent sample sequences ready to re-enter the batch pipeline.
//
// An untouched stroke comes back as a single group identical to the input;
// a fully covered stroke yields no groups.
func SplitStroke(points []Sample, eraserPath []Sample, radius float64) [][]Sample {
	if len(points) == 0 {
		return nil
	}
	if len(eraserPath) == 0 || radius <= 0 {
		out := make([]Sample, len(points))
		copy(out, points)
		return [][]Sample{out}
	}

	// Densify first: fast eraser swipes would otherwise leave untouched
	// gaps between sparse samples.
	eraser := densifyPath(eraserPath, math.Max(2, radius*0.4))

	erased := make([]bool, len(points))
	for i, p := range points {
		erased[i] = withinAny(p.Point(), eraser, radius)
	}

	var groups [][]Sample
	var cur []Sample
	n := len(points)
	for i := 0; i < n; i++ {
		if erased[i] {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}

		if len(cur) == 0 && i > 0 && erased[i-1] {
			// Re-entering kept territory: open the group at the exit
			// crossing of the incoming segment.
			if t, ok := latestCrossing(points[i-1], points[i], eraser, radius); ok {
				cur = append(cur, cutSample(points[i-1], points[i], t))
			}
		}

		cur = append(cur, points[i])

		if i < n-1 {
			if erased[i+1] {
				// Heading into the eraser: close this group at the entry
				// crossing. The next iteration finishes the group.
				if t, ok := earliestCrossing(points[i], points[i+1], eraser, radius); ok {
					cur = append(cur, cutSample(points[i], points[i+1], t))
				}
			} else if segmentTouched(points[i].Point(), points[i+1].Point(), eraser, radius) {
				// Both endpoints survive but the segment dips into the
				// eraser: cut out the middle.
				if t, ok := earliestCrossing(points[i], points[i+1], eraser, radius); ok {
					cur = append(cur, cutSample(points[i], points[i+1], t))
				}
				groups = append(groups, cur)
				cur = nil
				if t, ok := latestCrossing(points[i], points[i+1], eraser, radius); ok {
					cur = append(cur, cutSample(points[i], points[i+1], t))
				}
			}
		}
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}

	Logger().Debug("stroke split", "points", n, "groups", len(groups))
	return groups
}

// densifyPath inserts interpolated points along each eraser-path segment
// so consecutive points are no farther apart than spacing.
func densifyPath(path []Sample, spacing float64) []Point {
	pts := make([]Point, 0, len(path))
	pts = append(pts, path[0].Point())
	for i := 1; i < len(path); i++ {
		a := path[i-1].Point()
		b := path[i].Point()
		steps := int(math.Ceil(a.Distance(b) / spacing))
		for s := 1; s <= steps; s++ {
			pts = append(pts, a.Lerp(b, float64(s)/float64(steps)))
		}
	}
	return pts
}

// withinAny reports whether p lies within radius of any eraser point.
// Squared distances, no square roots.
func withinAny(p Point, eraser []Point, radius float64) bool {
	rsq := radius * radius
	for _, c := range eraser {
		if p.DistanceSquared(c) <= rsq {
			return true
		}
	}
	return false
}

// segmentTouched reports whether any eraser point comes within radius of
// the segment a-b.
func segmentTouched(a, b Point, eraser []Point, radius float64) bool {
	for _, c := range eraser {
		if distanceToLine(c, a, b) <= radius {
			return true
		}
	}
	return false
}

// earliestCrossing returns the smallest positive parametric crossing of
// the segment against every eraser circle.
func earliestCrossing(a, b Sample, eraser []Point, radius float64) (float64, bool) {
	best := math.Inf(1)
	for _, c := range eraser {
		for _, t := range segmentCircleCrossings(a.Point(), b.Point(), c, radius) {
			if t > 0 && t < best {
				best = t
			}
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

// latestCrossing returns the largest parametric crossing below one, the
// point where the segment exits the swept disk.
func latestCrossing(a, b Sample, eraser []Point, radius float64) (float64, bool) {
	best := math.Inf(-1)
	for _, c := range eraser {
		for _, t := range segmentCircleCrossings(a.Point(), b.Point(), c, radius) {
			if t < 1 && t > best {
				best = t
			}
		}
	}
	if math.IsInf(best, -1) {
		return 0, false
	}
	return best, true
}

// cutSample synthesizes a boundary cut point on the segment a-b,
// inheriting the pressure of the segment's start point.
func cutSample(a, b Sample, t float64) Sample {
	p := a.Point().Lerp(b.Point(), t)
	return Sample{X: p.X, Y: p.Y, Pressure: a.Pressure}
}
