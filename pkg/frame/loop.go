// Package frame drives per-frame work through an ordered list of named
// subscribers.
//
// A [Loop] calls every subscriber once per step, in subscription order, with
// the time elapsed since the previous step. Subscribers are independent: a
// scene's Tick, a renderer and an input poller can all be registered
// without knowing about each other.
//
// [Loop.Run] steps the loop from a ticker until its context ends. Work that
// must happen on the loop goroutine, such as starting a transition on a
// scene that the loop ticks, is handed over with [Loop.Post] or [Loop.Do].
package frame

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/periodix/pkg/errors"
	"github.com/matzehuels/periodix/pkg/observability"
)

// ErrStopped is returned when work is handed to a loop that has exited.
var ErrStopped error = errors.New(errors.ErrCodeInternal, "frame loop stopped")

// TickFunc is called once per frame with the elapsed time.
type TickFunc func(dt time.Duration)

type subscriber struct {
	name string
	fn   TickFunc
}

// Loop is an ordered set of subscribers stepped together.
// Subscribe, Unsubscribe, Post and Do are safe to call from any goroutine.
type Loop struct {
	mu      sync.Mutex
	subs    []subscriber
	frames  int
	running bool

	posts    chan func()
	stopped  chan struct{}
	stopOnce sync.Once

	hooks observability.FrameHooks
}

// Option configures a Loop.
type Option func(*Loop)

// WithHooks reports frames to h instead of the registered frame hooks.
func WithHooks(h observability.FrameHooks) Option {
	return func(l *Loop) {
		if h != nil {
			l.hooks = h
		}
	}
}

// NewLoop returns an empty loop. Unless [WithHooks] is given it reports to
// the frame hooks registered with the observability package.
func NewLoop(opts ...Option) *Loop {
	l := &Loop{
		posts:   make(chan func(), 64),
		stopped: make(chan struct{}),
		hooks:   observability.Frame(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Subscribe adds fn under name at the end of the order. Subscribing an
// existing name replaces its function and keeps its position.
func (l *Loop) Subscribe(name string, fn TickFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.subs {
		if l.subs[i].name == name {
			l.subs[i].fn = fn
			return
		}
	}
	l.subs = append(l.subs, subscriber{name, fn})
}

// Unsubscribe removes name and reports whether it was present.
func (l *Loop) Unsubscribe(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.subs {
		if l.subs[i].name == name {
			l.subs = append(l.subs[:i], l.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns the subscriber names in call order.
func (l *Loop) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	names := make([]string, len(l.subs))
	for i, s := range l.subs {
		names[i] = s.name
	}
	return names
}

// Frames returns the number of steps taken.
func (l *Loop) Frames() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

// Step calls every subscriber once with dt.
func (l *Loop) Step(dt time.Duration) {
	l.mu.Lock()
	subs := append([]subscriber(nil), l.subs...)
	l.frames++
	l.mu.Unlock()

	start := time.Now()
	for _, s := range subs {
		s.fn(dt)
	}
	l.hooks.OnFrame(dt, len(subs), time.Since(start))
}

// Run steps the loop every interval, passing the measured wall-clock time
// since the previous step, and runs posted work in between. It returns the
// context's error once ctx is done. A loop can only be run once.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return errors.InvalidArgument("frame interval must be positive, got %s", interval)
	}
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return errors.New(errors.ErrCodeInternal, "frame loop already running")
	}
	l.running = true
	l.mu.Unlock()
	defer l.stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.posts:
			fn()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			l.Step(dt)
		}
	}
}

func (l *Loop) stop() {
	l.stopOnce.Do(func() {
		close(l.stopped)
		l.hooks.OnLoopStop(l.Frames())
	})
}

// Post queues fn to run on the loop goroutine between frames.
func (l *Loop) Post(ctx context.Context, fn func()) error {
	select {
	case <-l.stopped:
		return ErrStopped
	default:
	}
	select {
	case l.posts <- fn:
		return nil
	case <-l.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do runs fn on the loop goroutine and waits for it to return.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	if err := l.Post(ctx, func() {
		defer close(done)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopped:
		select {
		case <-done:
			return nil
		default:
			return ErrStopped
		}
	}
}
