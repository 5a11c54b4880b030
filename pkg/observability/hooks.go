// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about layout transitions and frame stepping.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The core packages stay free of logging and metrics libraries: the CLI
// registers a logging implementation and the HTTP server a Prometheus one.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTransitionHooks(&myTransitionHooks{})
//	    observability.SetFrameHooks(&myFrameHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Transition().OnTransitionStart(name, n, base)
//	// ... ticks ...
//	observability.Transition().OnTransitionSettled(name, elapsed)
//
// Hook methods are called synchronously from the goroutine that owns the
// scene or frame loop, so implementations must return quickly.
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Transition Hooks
// =============================================================================

// TransitionHooks receives events from scene transitions.
type TransitionHooks interface {
	// OnTransitionStart records a transition to layout for the given number
	// of elements with the given base duration.
	OnTransitionStart(layout string, elements int, base time.Duration)

	// OnTransitionCancel records tweens discarded by a newer transition.
	// previous is the layout they were heading to.
	OnTransitionCancel(previous string, cancelled int)

	// OnTransitionSettled records that every tween of a transition finished.
	// elapsed is the simulated time since the transition started.
	OnTransitionSettled(layout string, elapsed time.Duration)

	// OnTick records one clock step and the number of tweens still active
	// after it.
	OnTick(dt time.Duration, active int)
}

// =============================================================================
// Frame Hooks
// =============================================================================

// FrameHooks receives events from the frame loop.
type FrameHooks interface {
	// OnFrame records one loop step across all subscribers.
	OnFrame(dt time.Duration, subscribers int, took time.Duration)

	// OnLoopStop records that a running loop exited after the given number
	// of frames.
	OnLoopStop(frames int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopTransitionHooks is a no-op implementation of TransitionHooks.
type NoopTransitionHooks struct{}

func (NoopTransitionHooks) OnTransitionStart(string, int, time.Duration) {}
func (NoopTransitionHooks) OnTransitionCancel(string, int)               {}
func (NoopTransitionHooks) OnTransitionSettled(string, time.Duration)    {}
func (NoopTransitionHooks) OnTick(time.Duration, int)                    {}

// NoopFrameHooks is a no-op implementation of FrameHooks.
type NoopFrameHooks struct{}

func (NoopFrameHooks) OnFrame(time.Duration, int, time.Duration) {}
func (NoopFrameHooks) OnLoopStop(int)                            {}

// =============================================================================
// Fan-out
// =============================================================================

// MultiTransitionHooks forwards every event to each hook in order.
type MultiTransitionHooks []TransitionHooks

func (m MultiTransitionHooks) OnTransitionStart(layout string, elements int, base time.Duration) {
	for _, h := range m {
		h.OnTransitionStart(layout, elements, base)
	}
}

func (m MultiTransitionHooks) OnTransitionCancel(previous string, cancelled int) {
	for _, h := range m {
		h.OnTransitionCancel(previous, cancelled)
	}
}

func (m MultiTransitionHooks) OnTransitionSettled(layout string, elapsed time.Duration) {
	for _, h := range m {
		h.OnTransitionSettled(layout, elapsed)
	}
}

func (m MultiTransitionHooks) OnTick(dt time.Duration, active int) {
	for _, h := range m {
		h.OnTick(dt, active)
	}
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	transitionHooks TransitionHooks = NoopTransitionHooks{}
	frameHooks      FrameHooks      = NoopFrameHooks{}
	hooksMu         sync.RWMutex
)

// SetTransitionHooks registers custom transition hooks.
// This should be called once at application startup before any scene is created.
func SetTransitionHooks(h TransitionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		transitionHooks = h
	}
}

// SetFrameHooks registers custom frame hooks.
// This should be called once at application startup before any loop runs.
func SetFrameHooks(h FrameHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		frameHooks = h
	}
}

// Transition returns the registered transition hooks.
func Transition() TransitionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return transitionHooks
}

// Frame returns the registered frame hooks.
func Frame() FrameHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return frameHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	transitionHooks = NoopTransitionHooks{}
	frameHooks = NoopFrameHooks{}
}
