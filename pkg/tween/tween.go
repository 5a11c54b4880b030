package tween

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Tween interpolates a vector from From to To over Duration.
type Tween struct {
	From     mgl64.Vec3
	To       mgl64.Vec3
	Duration time.Duration
	Elapsed  time.Duration
	Ease     Easing
}

// New returns a tween at the start of its run. A negative duration is
// treated as zero and a nil easing as [Linear].
func New(from, to mgl64.Vec3, d time.Duration, ease Easing) Tween {
	if d < 0 {
		d = 0
	}
	if ease == nil {
		ease = Linear
	}
	return Tween{From: from, To: to, Duration: d, Ease: ease}
}

// Done reports whether the tween has reached its end.
func (t Tween) Done() bool { return t.Elapsed >= t.Duration }

// Progress returns the normalized elapsed time in [0, 1]. A zero-length
// tween is always complete.
func (t Tween) Progress() float64 {
	if t.Done() {
		return 1
	}
	return float64(t.Elapsed) / float64(t.Duration)
}

// Value returns the eased value at the current elapsed time. A finished
// tween returns To exactly.
func (t Tween) Value() mgl64.Vec3 {
	if t.Done() {
		return t.To
	}
	ease := t.Ease
	if ease == nil {
		ease = Linear
	}
	k := ease(t.Progress())
	return mgl64.Vec3{
		Lerp(t.From[0], t.To[0], k),
		Lerp(t.From[1], t.To[1], k),
		Lerp(t.From[2], t.To[2], k),
	}
}

// Advance moves the tween forward by dt and returns the new value and
// whether the tween is finished. Negative dt counts as zero and elapsed
// time never exceeds the duration.
func (t *Tween) Advance(dt time.Duration) (mgl64.Vec3, bool) {
	if dt > 0 {
		if dt >= t.Duration-t.Elapsed {
			t.Elapsed = t.Duration
		} else {
			t.Elapsed += dt
		}
	}
	return t.Value(), t.Done()
}
