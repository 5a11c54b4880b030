package scene

import (
	"maps"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/periodix/pkg/dataset"
	"github.com/matzehuels/periodix/pkg/errors"
	"github.com/matzehuels/periodix/pkg/layout"
	"github.com/matzehuels/periodix/pkg/observability"
	"github.com/matzehuels/periodix/pkg/tween"
)

// Channel identifies which half of a transform a tween drives.
type Channel int

const (
	ChannelPosition Channel = iota
	ChannelRotation
)

func (c Channel) String() string {
	if c == ChannelRotation {
		return "rotation"
	}
	return "position"
}

// Element is one displayed record and its live transform.
type Element struct {
	Index     int
	Record    dataset.Record
	Transform layout.Transform
}

// Animation is a running tween and the element channel it writes to.
type Animation struct {
	Element int
	Channel Channel
	Tween   tween.Tween
}

// Scene holds the elements, their precomputed layouts and the running
// animations.
type Scene struct {
	elements []Element
	layouts  map[string]layout.Layout
	anims    []Animation

	current string
	elapsed time.Duration
	pending bool

	rng   func() float64
	ease  tween.Easing
	hooks observability.TransitionHooks
}

// New builds a scene for records. Elements start scattered uniformly in a
// cube around the origin with no rotation and no running animations.
//
// It fails with CONFIGURATION when [WithCount] asks for more records than
// the dataset holds.
func New(records dataset.Dataset, opts ...Option) (*Scene, error) {
	o := options{
		ease:    tween.ExponentialInOut,
		scatter: DefaultScatter,
		count:   -1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.Float64
	}
	if o.hooks == nil {
		o.hooks = observability.Transition()
	}

	if o.count >= 0 {
		var err error
		if records, err = records.Take(o.count); err != nil {
			return nil, err
		}
	}
	if err := records.Validate(); err != nil {
		return nil, err
	}

	s := &Scene{
		elements: make([]Element, len(records)),
		layouts:  layout.All(records, o.layoutOpts...),
		rng:      o.rng,
		ease:     o.ease,
		hooks:    o.hooks,
	}
	for i, r := range records {
		s.elements[i] = Element{
			Index:  i,
			Record: r,
			Transform: layout.Transform{Position: mgl64.Vec3{
				s.scatter(o.scatter),
				s.scatter(o.scatter),
				s.scatter(o.scatter),
			}},
		}
	}
	return s, nil
}

func (s *Scene) scatter(extent float64) float64 {
	return s.rng()*2*extent - extent
}

// TransitionTo starts a transition to the named precomputed layout.
// See [Scene.Start] for the semantics.
func (s *Scene) TransitionTo(name string, base time.Duration) error {
	if err := errors.ValidateDuration(base); err != nil {
		return err
	}
	l, ok := s.layouts[name]
	if !ok {
		return errors.Configuration("unknown layout %q (want one of %v)", name, layout.Names())
	}
	return s.Start(l, base)
}

// Start discards every running animation and animates each element from its
// live transform to l's target over a duration drawn from [base, 2*base).
//
// A negative base fails with INVALID_ARGUMENT and a layout whose target count
// differs from the element count with CONFIGURATION. On failure nothing is
// changed.
func (s *Scene) Start(l layout.Layout, base time.Duration) error {
	if err := errors.ValidateDuration(base); err != nil {
		return err
	}
	if l.Len() != len(s.elements) {
		return errors.Configuration("layout %q has %d targets, scene has %d elements",
			l.Name, l.Len(), len(s.elements))
	}

	next := make([]Animation, 0, 2*len(s.elements))
	for i, el := range s.elements {
		target := l.Targets[i]
		next = append(next,
			Animation{i, ChannelPosition, tween.New(el.Transform.Position, target.Position, s.duration(base), s.ease)},
			Animation{i, ChannelRotation, tween.New(el.Transform.Rotation, target.Rotation, s.duration(base), s.ease)},
		)
	}

	if cancelled := len(s.anims); cancelled > 0 {
		s.hooks.OnTransitionCancel(s.current, cancelled)
	}
	s.anims = next
	s.current = l.Name
	s.elapsed = 0
	s.pending = true
	s.hooks.OnTransitionStart(l.Name, len(s.elements), base)
	return nil
}

func (s *Scene) duration(base time.Duration) time.Duration {
	return base + time.Duration(s.rng()*float64(base))
}

// Tick advances every running animation by dt and writes the results into
// the elements. Finished animations end exactly on their target and are
// dropped. A negative dt counts as zero.
func (s *Scene) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	if s.pending {
		s.elapsed += dt
	}

	kept := s.anims[:0]
	for _, a := range s.anims {
		v, done := a.Tween.Advance(dt)
		s.write(a.Element, a.Channel, v)
		if !done {
			kept = append(kept, a)
		}
	}
	clear(s.anims[len(kept):])
	s.anims = kept

	s.hooks.OnTick(dt, len(s.anims))
	if s.pending && len(s.anims) == 0 {
		s.pending = false
		s.hooks.OnTransitionSettled(s.current, s.elapsed)
	}
}

func (s *Scene) write(i int, ch Channel, v mgl64.Vec3) {
	if ch == ChannelRotation {
		s.elements[i].Transform.Rotation = v
	} else {
		s.elements[i].Transform.Position = v
	}
}

// Len returns the number of elements.
func (s *Scene) Len() int { return len(s.elements) }

// Active returns the number of running animations: zero or twice the
// element count right after a transition starts.
func (s *Scene) Active() int { return len(s.anims) }

// Settled reports whether no animation is running.
func (s *Scene) Settled() bool { return len(s.anims) == 0 }

// Current returns the layout the latest transition is heading to, or "" if
// no transition was ever started.
func (s *Scene) Current() string { return s.current }

// Elapsed returns the time ticked since the latest transition started. It
// stops growing once the transition settles.
func (s *Scene) Elapsed() time.Duration { return s.elapsed }

// Elements returns a copy of every element with its live transform.
func (s *Scene) Elements() []Element {
	out := make([]Element, len(s.elements))
	copy(out, s.elements)
	return out
}

// Element returns element i.
func (s *Scene) Element(i int) (Element, bool) {
	if i < 0 || i >= len(s.elements) {
		return Element{}, false
	}
	return s.elements[i], true
}

// Animations returns a copy of the running animations.
func (s *Scene) Animations() []Animation {
	out := make([]Animation, len(s.anims))
	copy(out, s.anims)
	return out
}

// Layout returns the precomputed layout with the given name. Its targets are
// shared with the scene and must not be modified.
func (s *Scene) Layout(name string) (layout.Layout, bool) {
	l, ok := s.layouts[name]
	return l, ok
}

// Layouts returns every precomputed layout keyed by name.
func (s *Scene) Layouts() map[string]layout.Layout {
	return maps.Clone(s.layouts)
}
