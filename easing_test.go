package ink

import (
	"math"
	"testing"
)

func TestEasings_Endpoints(t *testing.T) {
	for _, tt := range []struct {
		name string
		e    Easing
	}{
		{"Linear", Linear},
		{"EaseInQuad", EaseInQuad},
		{"EaseOutQuad", EaseOutQuad},
		{"EaseInOutQuad", EaseInOutQuad},
		{"EaseInCubic", EaseInCubic},
		{"EaseOutCubic", EaseOutCubic},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e(0); math.Abs(got) > epsilon {
				t.Errorf("e(0) = %v, want 0", got)
			}
			if got := tt.e(1); math.Abs(got-1) > epsilon {
				t.Errorf("e(1) = %v, want 1", got)
			}
			// Strictly increasing on [0, 1].
			prev := tt.e(0)
			for i := 1; i <= 20; i++ {
				cur := tt.e(float64(i) / 20)
				if cur <= prev {
					t.Fatalf("e not strictly increasing at t=%v: %v <= %v", float64(i)/20, cur, prev)
				}
				prev = cur
			}
		})
	}
}

func TestEasings_Values(t *testing.T) {
	for _, tt := range []struct {
		name string
		e    Easing
		in   float64
		want float64
	}{
		{"Linear midpoint", Linear, 0.5, 0.5},
		{"EaseInQuad midpoint", EaseInQuad, 0.5, 0.25},
		{"EaseOutQuad midpoint", EaseOutQuad, 0.5, 0.75},
		{"EaseInOutQuad first half", EaseInOutQuad, 0.25, 0.125},
		{"EaseInOutQuad midpoint", EaseInOutQuad, 0.5, 0.5},
		{"EaseInCubic midpoint", EaseInCubic, 0.5, 0.125},
		{"EaseOutCubic midpoint", EaseOutCubic, 0.5, 0.875},
	} {
		if got := tt.e(tt.in); math.Abs(got-tt.want) > epsilon {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}
