package strand

import (
	"math"
)

// AnimationMode defines how the visible portion of a stroke evolves over
// time.
type AnimationMode int

const (
	// The stroke repeatedly grows from nothing to its full length.
	Loop AnimationMode = iota
	// The stroke grows to its full length and shrinks back.
	Yoyo
	// The stroke grows to its full length, then its tail is erased while the
	// head stays in place.
	Flow
)

var modeNames = [...]string{
	Loop: "loop",
	Yoyo: "yoyo",
	Flow: "flow",
}

func (m AnimationMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "AnimationMode(invalid)"
	}
	return modeNames[m]
}

// ParseAnimationMode returns the mode with the given name, as produced by
// [AnimationMode.String].
func ParseAnimationMode(s string) (AnimationMode, bool) {
	for i, name := range modeNames {
		if name == s {
			return AnimationMode(i), true
		}
	}
	return Loop, false
}

// Animation describes how a stroke is re-drawn over time.
type Animation struct {
	// Cycles per second.
	Speed float64
	// Phase offset in cycles, nominally in [0, 1].
	Phase  float64
	Easing Easing
	Mode   AnimationMode
}

// Window maps the time t, in seconds, to the visible arc-length interval of
// a stroke of length total. phaseOffset is added to the stroke's own phase;
// symmetry copies use it to animate out of step.
//
// The result always satisfies 0 ≤ start ≤ end ≤ total.
func (a Animation) Window(total, t, phaseOffset float64) (start, end float64) {
	phase := t*a.Speed + a.Phase + phaseOffset

	switch a.Mode {
	case Loop:
		end = total * a.Easing.Apply(wrap(phase, 1))
	case Yoyo:
		progress := wrap(phase, 2)
		if progress > 1 {
			progress = 2 - progress
		}
		end = total * a.Easing.Apply(progress)
	case Flow:
		cycle := wrap(phase, 2)
		if cycle <= 1 {
			end = total * a.Easing.Apply(cycle)
		} else {
			start = total * a.Easing.Apply(cycle-1)
			end = total
		}
	default:
		end = total
	}

	// Overshooting easings such as Elastic may leave the interval.
	start = min(max(start, 0), total)
	end = min(max(end, start), total)
	return start, end
}

// FullWindow returns the interval covering a whole stroke of length total.
// Callers that want a static preview select it explicitly instead of
// consulting the clock.
func FullWindow(total float64) (start, end float64) {
	return 0, total
}

// wrap returns x modulo m, in [0, m).
func wrap(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		// -tiny + m rounds to m.
		r = 0
	}
	return r
}
