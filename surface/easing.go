package surface

import "math"

// EasingFunc maps animation progress in [0,1] to eased progress
type EasingFunc func(t float64) float64

var easings = map[string]EasingFunc{
	"linear": func(t float64) float64 { return t },
	"swing": func(t float64) float64 {
		return 0.5 - math.Cos(t*math.Pi)/2
	},
	"easeOutCubic": func(t float64) float64 {
		t--
		return t*t*t + 1
	},
	"easeOutQuint": func(t float64) float64 {
		t--
		return t*t*t*t*t + 1
	},
}

// Ease applies the named easing to t, falling back to linear for unknown names.
// t is clamped to [0,1].
func Ease(name string, t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	fn, ok := easings[name]
	if !ok {
		return t
	}
	return fn(t)
}

func HasEasing(name string) bool {
	_, ok := easings[name]
	return ok
}
