package ink

// Ribbon incrementally builds a stroke outline during live drawing. Points
// arrive one at a time through AddPoint, and Path returns a renderable
// contour after every point without redoing the streamline pass over prior
// input.
//
// A Ribbon is owned exclusively by the single producer appending to it and
// must not be shared between goroutines.
type Ribbon struct {
	opts     *StrokeOptions
	raw      []Sample
	smoothed []StrokePoint // streamline output, extended by at most one per AddPoint
	running  float64
}

// NewRibbon creates an empty incremental ribbon.
func NewRibbon(opts ...StrokeOption) *Ribbon {
	return &Ribbon{opts: NewStrokeOptions(opts...)}
}

// AddPoint appends a raw input sample and extends the smoothed buffer by
// at most one point, applying the same streamline rule as the batch
// pipeline (including degenerate-segment suppression).
func (r *Ribbon) AddPoint(x, y, pressure float64) {
	s := Sp(x, y, clamp01(pressure))
	r.raw = append(r.raw, s)

	if len(r.smoothed) == 0 {
		r.smoothed = append(r.smoothed, StrokePoint{Point: s.Point(), Pressure: s.Pressure})
		return
	}

	prev := r.smoothed[len(r.smoothed)-1].Point
	pt := prev.Lerp(s.Point(), streamlineT(r.opts.Streamline))
	if pt.DistanceSquared(prev) < minSegmentDistSq {
		return
	}
	d := pt.Distance(prev)
	r.running += d
	r.smoothed = append(r.smoothed, StrokePoint{
		Point:         pt,
		Pressure:      s.Pressure,
		Distance:      d,
		RunningLength: r.running,
	})
}

// Path rebuilds the contour over the current smoothed buffer. The result
// is marked volatile: it changes on every call and downstream renderers
// should not cache it.
func (r *Ribbon) Path() *Path {
	points := make([]StrokePoint, len(r.smoothed))
	copy(points, r.smoothed)
	derivePointData(points, r.opts)

	outline := BuildOutline(points, r.opts)
	path := AssemblePath(points, outline, r.opts)
	path.setVolatile(true)
	return path
}

// PointCount returns the number of raw points added so far.
func (r *Ribbon) PointCount() int {
	return len(r.raw)
}

// Samples returns a copy of the raw samples, typically to seal them into a
// Stroke at pointer-up.
func (r *Ribbon) Samples() []Sample {
	out := make([]Sample, len(r.raw))
	copy(out, r.raw)
	return out
}

// Reset discards all state so the ribbon can record a new stroke.
func (r *Ribbon) Reset() {
	Logger().Debug("ribbon reset", "points", len(r.raw))
	r.raw = r.raw[:0]
	r.smoothed = r.smoothed[:0]
	r.running = 0
}
