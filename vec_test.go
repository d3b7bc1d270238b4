package ink

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func vecsEqual(v1, v2 Vec2, eps float64) bool {
	return math.Abs(v1.X-v2.X) < eps && math.Abs(v1.Y-v2.Y) < eps
}

func TestVec2_Perp(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{name: "unit x", v: V2(1, 0), want: V2(0, 1)},
		{name: "unit y", v: V2(0, 1), want: V2(-1, 0)},
		{name: "diagonal", v: V2(3, 4), want: V2(-4, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Perp()
			if !vecsEqual(got, tt.want, epsilon) {
				t.Errorf("Perp() = %v, want %v", got, tt.want)
			}
			if d := got.Dot(tt.v); math.Abs(d) > epsilon {
				t.Errorf("Perp() not perpendicular: dot = %v", d)
			}
		})
	}
}

func TestVec2_Normalize(t *testing.T) {
	v := V2(3, 4).Normalize()
	if !vecsEqual(v, V2(0.6, 0.8), epsilon) {
		t.Errorf("Normalize() = %v, want {0.6 0.8}", v)
	}

	// Near-zero vectors must normalize to zero, not NaN.
	z := V2(1e-12, -1e-12).Normalize()
	if !z.IsZero() {
		t.Errorf("Normalize() of near-zero = %v, want zero", z)
	}
}

func TestVec2_Lerp(t *testing.T) {
	a, b := V2(0, 0), V2(10, -4)
	if got := a.Lerp(b, 0.5); !vecsEqual(got, V2(5, -2), epsilon) {
		t.Errorf("Lerp(0.5) = %v, want {5 -2}", got)
	}
	if got := a.Lerp(b, 0); !vecsEqual(got, a, epsilon) {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); !vecsEqual(got, b, epsilon) {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
}

func TestVec2_DotCross(t *testing.T) {
	a, b := V2(1, 0), V2(0, 1)
	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot = %v, want 0", got)
	}
	if got := a.Cross(b); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
	if got := a.Dot(a.Neg()); got != -1 {
		t.Errorf("Dot with negation = %v, want -1", got)
	}
}

func TestPoint_RotateAround(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		center Point
		angle  float64
		want   Point
	}{
		{name: "quarter turn about origin", p: Pt(1, 0), center: Pt(0, 0), angle: math.Pi / 2, want: Pt(0, 1)},
		{name: "half turn about center", p: Pt(12, 0), center: Pt(10, 0), angle: math.Pi, want: Pt(8, 0)},
		{name: "negative quarter turn", p: Pt(0, 1), center: Pt(0, 0), angle: -math.Pi / 2, want: Pt(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.RotateAround(tt.center, tt.angle)
			if !pointsEqual(got, tt.want, epsilon) {
				t.Errorf("RotateAround() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := NewRect(Pt(10, 10), Pt(0, 0))
	if !pointsEqual(r.Min, Pt(0, 0), epsilon) || !pointsEqual(r.Max, Pt(10, 10), epsilon) {
		t.Errorf("NewRect did not normalize corners: %+v", r)
	}
	u := r.Union(NewRect(Pt(-5, 3), Pt(2, 20)))
	if !pointsEqual(u.Min, Pt(-5, 0), epsilon) || !pointsEqual(u.Max, Pt(10, 20), epsilon) {
		t.Errorf("Union = %+v", u)
	}
	in := r.Inflate(2)
	if in.Width() != 14 || in.Height() != 14 {
		t.Errorf("Inflate: width = %v, height = %v, want 14", in.Width(), in.Height())
	}
	if !r.Contains(Pt(5, 5)) || r.Contains(Pt(11, 5)) {
		t.Error("Contains misclassified a point")
	}
}
