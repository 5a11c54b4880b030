package scene

import (
	"math/rand/v2"

	"github.com/matzehuels/periodix/pkg/layout"
	"github.com/matzehuels/periodix/pkg/observability"
	"github.com/matzehuels/periodix/pkg/tween"
)

// DefaultScatter is the half-extent of the cube the elements start in.
const DefaultScatter = 2000.0

type options struct {
	rng        func() float64
	ease       tween.Easing
	layoutOpts []layout.Option
	scatter    float64
	count      int
	hooks      observability.TransitionHooks
}

// Option configures a Scene.
type Option func(*options)

// WithSeed makes duration draws and the initial scatter reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeef)).Float64
	}
}

// WithRand sets the source of uniform values in [0, 1).
func WithRand(rng func() float64) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithEasing sets the easing used by every tween.
func WithEasing(e tween.Easing) Option {
	return func(o *options) {
		if e != nil {
			o.ease = e
		}
	}
}

// WithLayoutOptions forwards options to the layout generators.
func WithLayoutOptions(opts ...layout.Option) Option {
	return func(o *options) { o.layoutOpts = append(o.layoutOpts, opts...) }
}

// WithScatter sets the half-extent of the cube in which elements start.
// Zero places every element at the origin.
func WithScatter(extent float64) Option {
	return func(o *options) { o.scatter = max(extent, 0) }
}

// WithCount limits the scene to the first n records of the dataset.
func WithCount(n int) Option {
	return func(o *options) { o.count = n }
}

// WithHooks sets the hooks notified of transitions and ticks. By default the
// scene uses the hooks registered with [observability.SetTransitionHooks] at
// construction time.
func WithHooks(h observability.TransitionHooks) Option {
	return func(o *options) {
		if h != nil {
			o.hooks = h
		}
	}
}
