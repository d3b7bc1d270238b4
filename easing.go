package ink

// Easing maps a normalized parameter in [0, 1] to [0, 1].
// Easings shape the pressure-to-radius response and the taper profile at
// stroke ends. Taper easings should be strictly increasing so that radii
// grow monotonically through the taper zone.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInQuad accelerates from zero.
func EaseInQuad(t float64) float64 { return t * t }

// EaseOutQuad decelerates toward one. Default start-taper easing.
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

// EaseInOutQuad accelerates then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseInCubic accelerates from zero, cubically. Default end-taper easing.
func EaseInCubic(t float64) float64 { return t * t * t }

// EaseOutCubic decelerates toward one, cubically.
func EaseOutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}
