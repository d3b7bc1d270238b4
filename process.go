package ink

import "math"

// StrokePoint is a processed input sample with derived stroke metadata.
type StrokePoint struct {
	// Point is the smoothed position.
	Point Point

	// Pressure is the effective pressure in [0, 1], either clamped device
	// pressure or simulated from speed.
	Pressure float64

	// Vector is the unit tangent from the previous point. The first point
	// borrows its successor's tangent.
	Vector Vec2

	// Distance is the length of the segment arriving at this point.
	Distance float64

	// RunningLength is the cumulative arc length up to this point.
	// It is monotonically non-decreasing along the stroke.
	RunningLength float64

	// Radius is the ribbon half-width at this point, never below the
	// minimum floor.
	Radius float64
}

const (
	// minSegmentDistSq suppresses degenerate smoothed segments: a candidate
	// smoothed point closer than this (squared) to its predecessor is
	// dropped before it reaches the outline.
	minSegmentDistSq = 0.25

	// rateOfPressureChange controls how quickly simulated pressure
	// converges toward its speed-derived target.
	rateOfPressureChange = 0.275

	// radiusFloor is the minimum per-point ribbon radius.
	radiusFloor = 0.01
)

// ProcessSamples turns raw input samples into a processed stroke sequence:
// streamline smoothing, effective pressure, per-point radius, unit tangents
// and arc-length metadata. Zero input points yield nil; a single input
// point yields a single-point output that the assembler renders as a dot.
func ProcessSamples(samples []Sample, opts *StrokeOptions) []StrokePoint {
	if opts == nil {
		opts = NewStrokeOptions()
	}
	points := smoothSamples(samples, opts)
	derivePointData(points, opts)
	return points
}

// streamlineT converts the streamline strength into the per-step
// interpolation fraction toward the raw sample. Streamline 0 follows input
// almost exactly (t=1); streamline 1 moves a minimal 0.15 per step.
func streamlineT(streamline float64) float64 {
	return 0.15 + (1-clamp01(streamline))*0.85
}

// smoothSamples applies streamline smoothing and computes segment and
// cumulative lengths. Pressure is carried through raw (clamped) for
// derivePointData to finish.
func smoothSamples(samples []Sample, opts *StrokeOptions) []StrokePoint {
	if len(samples) == 0 {
		return nil
	}

	t := streamlineT(opts.Streamline)
	points := make([]StrokePoint, 0, len(samples))
	points = append(points, StrokePoint{
		Point:    samples[0].Point(),
		Pressure: clamp01(samples[0].Pressure),
	})
	prev := samples[0].Point()
	running := 0.0

	for i := 1; i < len(samples); i++ {
		isLast := opts.Last && i == len(samples)-1
		var pt Point
		if isLast {
			// Pin the completed stroke to the final raw sample so the
			// ribbon has no lag at the pen-up position.
			pt = samples[i].Point()
		} else {
			pt = prev.Lerp(samples[i].Point(), t)
		}

		if pt.DistanceSquared(prev) < minSegmentDistSq {
			if !isLast {
				continue
			}
			if len(points) == 1 {
				// The whole stroke collapsed to jitter around the first
				// sample; the lone output point still pins to the final
				// raw sample.
				points[0] = StrokePoint{
					Point:    pt,
					Pressure: clamp01(samples[i].Pressure),
				}
				prev = pt
				continue
			}
			// The pinned endpoint lands on top of the lagging smoothed
			// point; replace that point instead of appending a degenerate
			// segment.
			anchor := points[len(points)-2]
			d := pt.Distance(anchor.Point)
			running = anchor.RunningLength + d
			points[len(points)-1] = StrokePoint{
				Point:         pt,
				Pressure:      clamp01(samples[i].Pressure),
				Distance:      d,
				RunningLength: running,
			}
			prev = pt
			continue
		}

		d := pt.Distance(prev)
		running += d
		points = append(points, StrokePoint{
			Point:         pt,
			Pressure:      clamp01(samples[i].Pressure),
			Distance:      d,
			RunningLength: running,
		})
		prev = pt
	}

	return points
}

// derivePointData fills in effective pressure, radius and unit tangents.
func derivePointData(points []StrokePoint, opts *StrokeOptions) {
	if len(points) == 0 {
		return
	}
	size := opts.Size

	// Dampen the first few pressures by repeated halving so a slow stroke
	// start does not produce an oversized head.
	damp := len(points)
	if damp > 10 {
		damp = 10
	}
	prevPressure := points[0].Pressure
	for i := 0; i < damp; i++ {
		pressure := points[i].Pressure
		if opts.SimulatePressure {
			pressure = simulatePressure(prevPressure, points[i].Distance, size)
		}
		prevPressure = (prevPressure + pressure) / 2
	}

	for i := range points {
		if opts.SimulatePressure {
			points[i].Pressure = simulatePressure(prevPressure, points[i].Distance, size)
		}
		points[i].Radius = strokeRadius(size, opts.Thinning, points[i].Pressure, opts.Easing)
		prevPressure = points[i].Pressure
	}

	// Unit tangents. A zero-length segment reuses the previous tangent so
	// no NaN can propagate into the rails.
	for i := 1; i < len(points); i++ {
		v := points[i].Point.Sub(points[i-1].Point).Normalize()
		if v.IsZero() {
			v = points[i-1].Vector
		}
		points[i].Vector = v
	}
	if len(points) > 1 {
		// The first point has no predecessor; it borrows the second
		// point's tangent.
		points[0].Vector = points[1].Vector
	} else {
		points[0].Vector = V2(1, 0)
	}
}

// simulatePressure advances pressure toward the speed-derived target
// min(1, 1 - distance/size): points reached over a long segment (fast
// motion) converge toward lower pressure.
func simulatePressure(prev, distance, size float64) float64 {
	sp := math.Min(1, distance/size)
	rp := math.Min(1, 1-sp)
	return math.Min(1, prev+(rp-prev)*(sp*rateOfPressureChange))
}

// strokeRadius derives the ribbon half-width for a pressure value.
// Thinning 0 yields a constant size/2 under the Linear easing.
func strokeRadius(size, thinning, pressure float64, easing Easing) float64 {
	if easing == nil {
		easing = Linear
	}
	r := size * easing(0.5-thinning*(0.5-pressure))
	return math.Max(radiusFloor, r)
}
