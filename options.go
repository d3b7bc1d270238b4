package ink

// CapOptions configures one end of a stroke: whether it is capped with a
// half-circle, whether it tapers, and how the taper radius ramps.
type CapOptions struct {
	// Cap draws a round cap at this end when no taper is active.
	// When false, the rails are joined by a flat segment. Default: true
	Cap bool

	// Taper narrows the ribbon progressively toward this end.
	// Default: false
	Taper bool

	// TaperDistance is the length of the taper zone. Zero means the taper
	// spans the whole stroke length. Ignored unless Taper is set.
	TaperDistance float64

	// Easing shapes the radius ramp inside the taper zone. Must be
	// strictly increasing on [0, 1]. Defaults: EaseOutQuad at the start,
	// EaseInCubic at the end.
	Easing Easing
}

// StrokeOptions configures the stroke outline pipeline.
// The zero value is not usable; construct with NewStrokeOptions so that
// every field carries its documented default.
type StrokeOptions struct {
	// Size is the full diameter of the stroke at neutral pressure.
	// Default: 16
	Size float64

	// Thinning is the effect of pressure on the stroke radius in [-1, 1].
	// Zero yields a constant radius of Size/2 regardless of pressure;
	// positive values widen with pressure; negative values invert the
	// relationship. Default: 0.5
	Thinning float64

	// Smoothing caps outline vertex density: a rail point is kept only if
	// it is farther than Size*Smoothing from the last kept point on that
	// rail. Default: 0.5
	Smoothing float64

	// Streamline is the input-smoothing strength in [0, 1]. Higher values
	// pull new samples more strongly toward a lagging smoothed trajectory.
	// Default: 0.5
	Streamline float64

	// Easing shapes the pressure-to-radius response. Default: Linear
	Easing Easing

	// SimulatePressure derives pressure from drawing speed instead of the
	// reported sample pressure. Default: false
	SimulatePressure bool

	// Start configures the cap and taper at the stroke start.
	// Default: {Cap: true, Taper: false, Easing: EaseOutQuad}
	Start CapOptions

	// End configures the cap and taper at the stroke end.
	// Default: {Cap: true, Taper: false, Easing: EaseInCubic}
	End CapOptions

	// Last marks the sample sequence as complete: the final output point
	// is pinned to the final raw sample so the ribbon has no residual lag
	// at the pen-up position. Default: false
	Last bool
}

// StrokeOption configures StrokeOptions during creation.
type StrokeOption func(*StrokeOptions)

// NewStrokeOptions returns a fully populated StrokeOptions with the
// documented defaults, modified by the given options.
func NewStrokeOptions(opts ...StrokeOption) *StrokeOptions {
	o := &StrokeOptions{
		Size:       16,
		Thinning:   0.5,
		Smoothing:  0.5,
		Streamline: 0.5,
		Easing:     Linear,
		Start:      CapOptions{Cap: true, Easing: EaseOutQuad},
		End:        CapOptions{Cap: true, Easing: EaseInCubic},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithSize sets the stroke diameter at neutral pressure.
func WithSize(size float64) StrokeOption {
	return func(o *StrokeOptions) { o.Size = size }
}

// WithThinning sets the pressure-to-radius effect.
func WithThinning(thinning float64) StrokeOption {
	return func(o *StrokeOptions) { o.Thinning = thinning }
}

// WithSmoothing sets the outline vertex-density factor.
func WithSmoothing(smoothing float64) StrokeOption {
	return func(o *StrokeOptions) { o.Smoothing = smoothing }
}

// WithStreamline sets the input smoothing strength.
func WithStreamline(streamline float64) StrokeOption {
	return func(o *StrokeOptions) { o.Streamline = streamline }
}

// WithEasing sets the pressure-to-radius easing.
func WithEasing(easing Easing) StrokeOption {
	return func(o *StrokeOptions) { o.Easing = easing }
}

// WithSimulatePressure derives pressure from speed instead of the samples.
func WithSimulatePressure(simulate bool) StrokeOption {
	return func(o *StrokeOptions) { o.SimulatePressure = simulate }
}

// WithLast marks the sample sequence as complete.
func WithLast(last bool) StrokeOption {
	return func(o *StrokeOptions) { o.Last = last }
}

// WithStart replaces the start cap/taper configuration. A nil Easing falls
// back to the default start-taper easing.
func WithStart(c CapOptions) StrokeOption {
	return func(o *StrokeOptions) {
		if c.Easing == nil {
			c.Easing = EaseOutQuad
		}
		o.Start = c
	}
}

// WithEnd replaces the end cap/taper configuration. A nil Easing falls
// back to the default end-taper easing.
func WithEnd(c CapOptions) StrokeOption {
	return func(o *StrokeOptions) {
		if c.Easing == nil {
			c.Easing = EaseInCubic
		}
		o.End = c
	}
}

// WithStartTaper enables a start taper over the given distance.
// A distance of zero tapers over the whole stroke length.
func WithStartTaper(distance float64) StrokeOption {
	return func(o *StrokeOptions) {
		o.Start.Taper = true
		o.Start.TaperDistance = distance
	}
}

// WithEndTaper enables an end taper over the given distance.
// A distance of zero tapers over the whole stroke length.
func WithEndTaper(distance float64) StrokeOption {
	return func(o *StrokeOptions) {
		o.End.Taper = true
		o.End.TaperDistance = distance
	}
}

// clamp01 clamps x to [0, 1]. Out-of-range pressure from misbehaving
// devices is clamped rather than rejected.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
