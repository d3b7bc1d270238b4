package ink

// Sample is one raw input point as reported by the pointer device.
// Pressure is in [0, 1]; devices without a pressure channel should report
// 0.5 (see Sam). Samples are immutable once recorded.
type Sample struct {
	X, Y     float64
	Pressure float64
}

// Sp is a convenience function to create a Sample with explicit pressure.
func Sp(x, y, pressure float64) Sample {
	return Sample{X: x, Y: y, Pressure: pressure}
}

// Sam creates a Sample without pressure information. The pressure defaults
// to 0.5, the neutral value used downstream.
func Sam(x, y float64) Sample {
	return Sample{X: x, Y: y, Pressure: 0.5}
}

// Point returns the sample's position.
func (s Sample) Point() Point {
	return Point{X: s.X, Y: s.Y}
}

// sampleBounds returns the bounding rectangle of a sample sequence.
// An empty sequence yields the zero Rect.
func sampleBounds(samples []Sample) Rect {
	if len(samples) == 0 {
		return Rect{}
	}
	r := NewRect(samples[0].Point(), samples[0].Point())
	for _, s := range samples[1:] {
		r = r.Union(NewRect(s.Point(), s.Point()))
	}
	return r
}
