package strand

import (
	"math"
)

// Easing maps a progress value in [0, 1] to an eased value that is nominally
// in [0, 1]. Both endpoints are fixed: every easing maps 0 to 0 and 1 to 1.
type Easing int

const (
	// Identity.
	Linear Easing = iota
	// Quadratic acceleration, t².
	EaseIn
	// Quadratic deceleration, t(2−t).
	EaseOut
	// Piecewise quadratic: accelerate for the first half, decelerate for the
	// second.
	EaseInOut
	// Half a cosine wave, (1−cos(πt))/2.
	Sine
	// Exponentially damped sine that overshoots before settling at 1.
	Elastic
)

var easingNames = [...]string{
	Linear:    "linear",
	EaseIn:    "ease-in",
	EaseOut:   "ease-out",
	EaseInOut: "ease-in-out",
	Sine:      "sine",
	Elastic:   "elastic",
}

func (e Easing) String() string {
	if e < 0 || int(e) >= len(easingNames) {
		return "Easing(invalid)"
	}
	return easingNames[e]
}

// ParseEasing returns the easing with the given name, as produced by
// [Easing.String].
func ParseEasing(s string) (Easing, bool) {
	for i, name := range easingNames {
		if name == s {
			return Easing(i), true
		}
	}
	return Linear, false
}

// Apply evaluates the easing curve at t. Unknown easings behave like
// [Linear].
func (e Easing) Apply(t float64) float64 {
	switch e {
	case Linear:
		return t
	case EaseIn:
		return t * t
	case EaseOut:
		return t * (2 - t)
	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	case Sine:
		return (1 - math.Cos(math.Pi*t)) / 2
	case Elastic:
		if t <= 0 || t >= 1 {
			return t
		}
		const c4 = 2 * math.Pi / 3
		return math.Pow(2, -10*t)*math.Sin((10*t-0.75)*c4) + 1
	default:
		return t
	}
}
