package ink

import (
	"math"
	"testing"
)

func TestProcessSamples_Empty(t *testing.T) {
	if got := ProcessSamples(nil, nil); got != nil {
		t.Errorf("ProcessSamples(nil) = %v, want nil", got)
	}
}

func TestProcessSamples_SinglePoint(t *testing.T) {
	opts := NewStrokeOptions(WithSize(10), WithThinning(0))
	got := ProcessSamples([]Sample{Sp(3, 4, 0.8)}, opts)
	if len(got) != 1 {
		t.Fatalf("got %d points, want 1", len(got))
	}
	p := got[0]
	if !pointsEqual(p.Point, Pt(3, 4), epsilon) {
		t.Errorf("Point = %v, want (3,4)", p.Point)
	}
	if p.Radius != 5 {
		t.Errorf("Radius = %v, want 5", p.Radius)
	}
	if p.Vector.IsZero() {
		t.Error("single point must still carry a unit tangent")
	}
}

func TestProcessSamples_LastPinsEndpoint(t *testing.T) {
	samples := []Sample{Sam(0, 0), Sam(10, 0), Sam(20, 0)}

	pinned := ProcessSamples(samples, NewStrokeOptions(WithLast(true)))
	end := pinned[len(pinned)-1].Point
	if !pointsEqual(end, Pt(20, 0), epsilon) {
		t.Errorf("pinned endpoint = %v, want (20,0)", end)
	}

	// Without Last, the smoothed trajectory lags behind the raw input.
	lagging := ProcessSamples(samples, NewStrokeOptions())
	lagEnd := lagging[len(lagging)-1].Point
	if lagEnd.X >= 20 {
		t.Errorf("unpinned endpoint = %v, expected lag behind x=20", lagEnd)
	}
}

func TestProcessSamples_Streamline(t *testing.T) {
	samples := []Sample{Sam(0, 0), Sam(10, 0)}

	// Streamline 0 follows input exactly (t=1).
	exact := ProcessSamples(samples, NewStrokeOptions(WithStreamline(0)))
	if !pointsEqual(exact[1].Point, Pt(10, 0), epsilon) {
		t.Errorf("streamline 0: point = %v, want (10,0)", exact[1].Point)
	}

	// Streamline 1 moves only the minimal fraction per step.
	lazy := ProcessSamples(samples, NewStrokeOptions(WithStreamline(1)))
	if !pointsEqual(lazy[1].Point, Pt(1.5, 0), epsilon) {
		t.Errorf("streamline 1: point = %v, want (1.5,0)", lazy[1].Point)
	}
}

func TestProcessSamples_RunningLengthMonotonic(t *testing.T) {
	samples := []Sample{
		Sam(0, 0), Sam(5, 2), Sam(12, -3), Sam(20, 4), Sam(31, 0), Sam(40, 8),
	}
	points := ProcessSamples(samples, NewStrokeOptions(WithLast(true)))
	prev := -1.0
	for i, p := range points {
		if p.RunningLength < prev {
			t.Fatalf("RunningLength decreased at %d: %v < %v", i, p.RunningLength, prev)
		}
		prev = p.RunningLength
	}
}

func TestProcessSamples_ThinningZeroConstantRadius(t *testing.T) {
	samples := []Sample{
		Sp(0, 0, 0.1), Sp(10, 0, 0.9), Sp(20, 0, 0.3), Sp(30, 0, 1.0),
	}
	points := ProcessSamples(samples, NewStrokeOptions(WithSize(10), WithThinning(0), WithLast(true)))
	for i, p := range points {
		if math.Abs(p.Radius-5) > epsilon {
			t.Errorf("point %d: Radius = %v, want constant 5", i, p.Radius)
		}
	}
}

func TestProcessSamples_ThinningSign(t *testing.T) {
	light := strokeRadius(16, 0.5, 0.1, Linear)
	heavy := strokeRadius(16, 0.5, 0.9, Linear)
	if light >= heavy {
		t.Errorf("positive thinning: light %v should be thinner than heavy %v", light, heavy)
	}

	// Negative thinning inverts the relationship.
	lightInv := strokeRadius(16, -0.5, 0.1, Linear)
	heavyInv := strokeRadius(16, -0.5, 0.9, Linear)
	if lightInv <= heavyInv {
		t.Errorf("negative thinning: light %v should be wider than heavy %v", lightInv, heavyInv)
	}
}

func TestProcessSamples_RadiusFloor(t *testing.T) {
	// Extreme thinning at zero pressure would go negative without a floor.
	r := strokeRadius(16, 1, 0, Linear)
	if r != radiusFloor {
		t.Errorf("radius = %v, want floor %v", r, radiusFloor)
	}
}

func TestProcessSamples_SimulatedPressure(t *testing.T) {
	mk := func(spacing float64) []Sample {
		var s []Sample
		for i := 0; i < 30; i++ {
			s = append(s, Sam(float64(i)*spacing, 0))
		}
		return s
	}
	opts := func() *StrokeOptions {
		return NewStrokeOptions(WithSize(16), WithSimulatePressure(true), WithLast(true))
	}

	slow := ProcessSamples(mk(2), opts())
	fast := ProcessSamples(mk(14), opts())

	for _, points := range [][]StrokePoint{slow, fast} {
		for i, p := range points {
			if p.Pressure < 0 || p.Pressure > 1 {
				t.Fatalf("point %d: simulated pressure %v out of [0,1]", i, p.Pressure)
			}
		}
	}

	slowEnd := slow[len(slow)-1].Pressure
	fastEnd := fast[len(fast)-1].Pressure
	if slowEnd <= fastEnd {
		t.Errorf("slow motion pressure %v should exceed fast motion pressure %v", slowEnd, fastEnd)
	}
}

func TestProcessSamples_PressureClamped(t *testing.T) {
	points := ProcessSamples([]Sample{Sp(0, 0, -2), Sp(10, 0, 7)}, NewStrokeOptions(WithLast(true)))
	for i, p := range points {
		if p.Pressure < 0 || p.Pressure > 1 {
			t.Errorf("point %d: pressure %v not clamped", i, p.Pressure)
		}
	}
}

func TestProcessSamples_Tangents(t *testing.T) {
	samples := []Sample{Sam(0, 0), Sam(10, 0), Sam(20, 0)}
	points := ProcessSamples(samples, NewStrokeOptions(WithStreamline(0), WithLast(true)))
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	for i, p := range points {
		if !vecsEqual(p.Vector, V2(1, 0), epsilon) {
			t.Errorf("point %d: Vector = %v, want (1,0)", i, p.Vector)
		}
	}
	// First point borrows the second point's tangent.
	if !vecsEqual(points[0].Vector, points[1].Vector, epsilon) {
		t.Error("first point did not borrow its successor's tangent")
	}
}

func TestProcessSamples_LastPinsJitterOnlyStroke(t *testing.T) {
	// A stroke whose every sample sits inside the suppression distance
	// collapses to one output point; with Last set, that lone point still
	// pins to the final raw sample, not the first.
	points := ProcessSamples([]Sample{Sp(0, 0, 0.5), Sp(0.1, 0, 0.8)}, NewStrokeOptions(WithLast(true)))
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	p := points[0]
	if !pointsEqual(p.Point, Pt(0.1, 0), epsilon) {
		t.Errorf("Point = %v, want the final raw sample (0.1,0)", p.Point)
	}
	if p.Pressure != 0.8 {
		t.Errorf("Pressure = %v, want the final sample's 0.8", p.Pressure)
	}
	if p.Distance != 0 || p.RunningLength != 0 {
		t.Errorf("lone point carries lengths: Distance %v, RunningLength %v", p.Distance, p.RunningLength)
	}
}

func TestProcessSamples_DegenerateSegmentsSuppressed(t *testing.T) {
	// A burst of nearly coincident samples must not produce degenerate
	// segments.
	samples := []Sample{Sam(0, 0)}
	for i := 0; i < 20; i++ {
		samples = append(samples, Sam(0.01*float64(i), 0))
	}
	samples = append(samples, Sam(30, 0))
	points := ProcessSamples(samples, NewStrokeOptions(WithLast(true)))
	for i := 1; i < len(points); i++ {
		if points[i].Distance*points[i].Distance < minSegmentDistSq {
			t.Errorf("point %d: degenerate segment of length %v survived", i, points[i].Distance)
		}
	}
}
