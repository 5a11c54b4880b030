// Package tween interpolates 3D vectors over time with easing curves.
//
// A [Tween] moves one value from a start to an end over a fixed duration.
// It has no clock of its own: the owner calls [Tween.Advance] with the time
// elapsed since the previous call, which may vary from call to call.
//
// Easing functions map normalized progress t in [0, 1] to an eased fraction,
// returning exactly 0 at t=0 and exactly 1 at t=1.
package tween

import (
	"math"
	"sort"
)

// Easing maps normalized progress to an eased fraction.
type Easing func(t float64) float64

// Linear moves at constant speed.
func Linear(t float64) float64 { return t }

// InQuad starts slow and accelerates.
func InQuad(t float64) float64 { return t * t }

// OutQuad starts fast and decelerates.
func OutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// InCubic starts slow and accelerates sharply.
func InCubic(t float64) float64 { return t * t * t }

// OutCubic starts fast and decelerates sharply.
func OutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }

// InOutCubic accelerates to the midpoint, then decelerates.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// OutExpo starts very fast and settles slowly.
func OutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// ExponentialInOut accelerates exponentially to the midpoint and decelerates
// exponentially after it. This is the curve used for layout transitions.
func ExponentialInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	t *= 2
	if t < 1 {
		return 0.5 * math.Pow(1024, t-1)
	}
	return 0.5 * (2 - math.Pow(2, -10*(t-1)))
}

var easings = map[string]Easing{
	"linear":             Linear,
	"in-quad":            InQuad,
	"out-quad":           OutQuad,
	"in-cubic":           InCubic,
	"out-cubic":          OutCubic,
	"in-out-cubic":       InOutCubic,
	"out-expo":           OutExpo,
	"exponential-in-out": ExponentialInOut,
}

// Lookup returns the easing registered under name.
func Lookup(name string) (Easing, bool) {
	e, ok := easings[name]
	return e, ok
}

// EasingNames returns the registered easing names, sorted.
func EasingNames() []string {
	out := make([]string, 0, len(easings))
	for name := range easings {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lerp interpolates between a and b. t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
