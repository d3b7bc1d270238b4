package ink

// Stroke is the durable record of one finished input sequence. Style
// attributes are captured at creation and never change afterwards: later
// tool-setting edits affect new strokes only.
//
// A Stroke is born empty at pointer-down, mutated only by appending
// samples until pointer-up, then sealed. Sealed strokes are immutable and
// safe for concurrent reads; erasing produces new strokes rather than
// mutating this one.
type Stroke struct {
	ID     uint64
	Points []Sample
	Color  RGBA

	// Size is the stroke diameter at neutral pressure.
	Size float64

	// MinRadius and MaxRadius bound the half-width in the fixed-radius
	// (CachedRibbon) mode.
	MinRadius float64
	MaxRadius float64

	sealed bool
}

// NewStroke creates an empty stroke with its style captured.
func NewStroke(id uint64, color RGBA, size, minRadius, maxRadius float64) *Stroke {
	return &Stroke{
		ID:        id,
		Color:     color,
		Size:      size,
		MinRadius: minRadius,
		MaxRadius: maxRadius,
	}
}

// Append records one more input sample. Appending to a sealed stroke is
// ignored.
func (s *Stroke) Append(sample Sample) {
	if s.sealed {
		Logger().Warn("append to sealed stroke ignored", "id", s.ID)
		return
	}
	s.Points = append(s.Points, sample)
}

// Seal freezes the stroke at pointer-up. After sealing, the record is
// immutable.
func (s *Stroke) Seal() {
	s.sealed = true
}

// Sealed reports whether the stroke has been frozen.
func (s *Stroke) Sealed() bool {
	return s.sealed
}

// Outline runs the batch pipeline over the stroke's samples and returns
// the closed contour. The stroke's size is applied first, so extra options
// may override it; a sealed stroke pins its endpoint.
func (s *Stroke) Outline(opts ...StrokeOption) *Path {
	all := append([]StrokeOption{WithSize(s.Size), WithLast(s.sealed)}, opts...)
	o := NewStrokeOptions(all...)
	points := ProcessSamples(s.Points, o)
	return AssemblePath(points, BuildOutline(points, o), o)
}

// Split subtracts an eraser pass from the stroke and returns the surviving
// sub-strokes as new sealed records inheriting this stroke's style. IDs
// are left zero for the caller to assign.
func (s *Stroke) Split(eraserPath []Sample, radius float64) []*Stroke {
	var out []*Stroke
	for _, group := range SplitStroke(s.Points, eraserPath, radius) {
		out = append(out, &Stroke{
			Points:    group,
			Color:     s.Color,
			Size:      s.Size,
			MinRadius: s.MinRadius,
			MaxRadius: s.MaxRadius,
			sealed:    true,
		})
	}
	return out
}

// Bounds returns a conservative damage rectangle for the stroke: the
// sample bounding box inflated by the maximum possible half-width.
func (s *Stroke) Bounds() Rect {
	if len(s.Points) == 0 {
		return Rect{}
	}
	half := s.Size / 2
	if s.MaxRadius > half {
		half = s.MaxRadius
	}
	return sampleBounds(s.Points).Inflate(half)
}
