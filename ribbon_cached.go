package ink

import "math"

// CachedRibbon is the incremental ribbon for the simpler fixed-radius
// mode: pressure maps linearly between a minimum and maximum radius, with
// round caps and straight rail segments. Per-point radius, tangent and
// rail data live in parallel arrays behind a single valid-up-to watermark,
// so each new point only recomputes the suffix it invalidated.
//
// Appending a point changes its predecessor's blended tangent (which
// depended on whether a successor existed yet), so exactly the last two
// cached entries go stale; everything earlier stays valid. This holds for
// any insertion pattern and is checked against a full rebuild in tests.
//
// Like Ribbon, a CachedRibbon is owned by a single producer.
type CachedRibbon struct {
	minRadius  float64
	maxRadius  float64
	streamline float64

	// Parallel per-point arrays, indexed by smoothed point position.
	points    []Point
	pressures []float64
	radii     []float64
	tangents  []Vec2
	left      []Point
	right     []Point

	// valid is the highest index whose cached data is current; -1 when
	// nothing is cached.
	valid int
}

// NewCachedRibbon creates an empty cached ribbon with the given radius
// range. Streamline defaults to 0.5; pressure 0 maps to minRadius and
// pressure 1 to maxRadius.
func NewCachedRibbon(minRadius, maxRadius float64) *CachedRibbon {
	return &CachedRibbon{
		minRadius:  math.Max(radiusFloor, minRadius),
		maxRadius:  math.Max(radiusFloor, maxRadius),
		streamline: 0.5,
		valid:      -1,
	}
}

// SetStreamline adjusts the input smoothing strength for points added
// after the call.
func (c *CachedRibbon) SetStreamline(streamline float64) {
	c.streamline = clamp01(streamline)
}

// AddPoint appends a raw input sample, applying the streamline rule, and
// invalidates the cached suffix the new point made stale.
func (c *CachedRibbon) AddPoint(x, y, pressure float64) {
	p := Pt(x, y)
	if n := len(c.points); n > 0 {
		prev := c.points[n-1]
		p = prev.Lerp(p, streamlineT(c.streamline))
		if p.DistanceSquared(prev) < minSegmentDistSq {
			return
		}
	}

	c.points = append(c.points, p)
	c.pressures = append(c.pressures, clamp01(pressure))
	c.radii = append(c.radii, 0)
	c.tangents = append(c.tangents, Vec2{})
	c.left = append(c.left, Point{})
	c.right = append(c.right, Point{})

	if w := len(c.points) - 3; w < c.valid {
		c.valid = w
	}
	if c.valid < -1 {
		c.valid = -1
	}
}

// revalidate recomputes all entries above the watermark.
func (c *CachedRibbon) revalidate() {
	n := len(c.points)
	start := c.valid + 1
	if start >= n {
		return
	}

	// Pass 1: tangents and radii. Entry 0 borrows entry 1's tangent once
	// a second point exists.
	for i := start; i < n; i++ {
		if i == 0 {
			c.tangents[0] = V2(1, 0)
		} else {
			v := c.points[i].Sub(c.points[i-1]).Normalize()
			if v.IsZero() {
				v = c.tangents[i-1]
			}
			c.tangents[i] = v
			if i == 1 {
				c.tangents[0] = v
			}
		}
		c.radii[i] = c.minRadius + (c.maxRadius-c.minRadius)*c.pressures[i]
	}

	// Pass 2: rail offsets. Interior points blend their tangent with the
	// successor's; the last point uses its own.
	for i := start; i < n; i++ {
		v := c.tangents[i]
		if i < n-1 {
			blended := v.Add(c.tangents[i+1]).Scale(0.5)
			if blended.LengthSquared() >= 1e-10 {
				v = blended.Normalize()
			}
		}
		offset := v.Perp().Scale(c.radii[i])
		c.left[i] = c.points[i].Add(offset)
		c.right[i] = c.points[i].Add(offset.Neg())
	}

	c.valid = n - 1
}

// Path assembles the current polygon: the left rail forward, a round cap,
// the right rail backward, and a round cap back to the start. The result
// is volatile per-frame geometry.
func (c *CachedRibbon) Path() *Path {
	c.revalidate()

	p := NewPath()
	n := len(c.points)
	if n == 0 {
		return p
	}
	p.setVolatile(true)
	if n == 1 {
		p.Circle(c.points[0], c.radii[0])
		return p
	}

	p.MoveTo(c.right[0])
	capArc(p, c.right[0], c.left[0])
	for i := 1; i < n; i++ {
		p.LineTo(c.left[i])
	}
	capArc(p, c.left[n-1], c.right[n-1])
	for i := n - 2; i >= 0; i-- {
		p.LineTo(c.right[i])
	}
	p.Close()
	return p
}

// PointCount returns the number of retained (smoothed) points.
func (c *CachedRibbon) PointCount() int {
	return len(c.points)
}

// Reset releases the cache arrays so the ribbon can record a new stroke.
func (c *CachedRibbon) Reset() {
	Logger().Debug("cached ribbon reset", "points", len(c.points))
	c.points = nil
	c.pressures = nil
	c.radii = nil
	c.tangents = nil
	c.left = nil
	c.right = nil
	c.valid = -1
}
