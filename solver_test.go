package ink

import (
	"math"
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{name: "two roots", a: 1, b: -3, c: 2, want: []float64{1, 2}},
		{name: "double root", a: 1, b: -2, c: 1, want: []float64{1}},
		{name: "no real roots", a: 1, b: 0, c: 1, want: nil},
		{name: "linear fallback", a: 0, b: 2, c: -4, want: []float64{2}},
		{name: "all zero", a: 0, b: 0, c: 0, want: []float64{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SolveQuadratic(tt.a, tt.b, tt.c)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v roots, want %v", got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > epsilon {
					t.Errorf("root[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSegmentCircleCrossings(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)

	t.Run("two crossings", func(t *testing.T) {
		got := segmentCircleCrossings(a, b, Pt(5, 0), 3)
		if len(got) != 2 {
			t.Fatalf("got %v, want two crossings", got)
		}
		if math.Abs(got[0]-0.2) > epsilon || math.Abs(got[1]-0.8) > epsilon {
			t.Errorf("crossings = %v, want [0.2 0.8]", got)
		}
	})

	t.Run("tangent", func(t *testing.T) {
		got := segmentCircleCrossings(a, b, Pt(5, 1), 1)
		if len(got) != 1 || math.Abs(got[0]-0.5) > 1e-6 {
			t.Errorf("crossings = %v, want [0.5]", got)
		}
	})

	t.Run("miss", func(t *testing.T) {
		if got := segmentCircleCrossings(a, b, Pt(5, 10), 3); got != nil {
			t.Errorf("crossings = %v, want none", got)
		}
	})

	t.Run("circle beyond segment", func(t *testing.T) {
		// Crossings exist on the infinite line but outside [0, 1].
		if got := segmentCircleCrossings(a, b, Pt(20, 0), 3); got != nil {
			t.Errorf("crossings = %v, want none", got)
		}
	})
}
