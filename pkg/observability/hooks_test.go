package observability

import (
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	// Transition hooks
	tr := NoopTransitionHooks{}
	tr.OnTransitionStart("table", 118, 2*time.Second)
	tr.OnTransitionCancel("sphere", 236)
	tr.OnTransitionSettled("table", 4*time.Second)
	tr.OnTick(16*time.Millisecond, 236)

	// Frame hooks
	f := NoopFrameHooks{}
	f.OnFrame(16*time.Millisecond, 2, time.Millisecond)
	f.OnLoopStop(600)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Transition().(NoopTransitionHooks); !ok {
		t.Error("Transition() should return NoopTransitionHooks by default")
	}
	if _, ok := Frame().(NoopFrameHooks); !ok {
		t.Error("Frame() should return NoopFrameHooks by default")
	}

	// Set custom hooks
	customTransition := &recordingHooks{}
	SetTransitionHooks(customTransition)
	if Transition() != customTransition {
		t.Error("SetTransitionHooks should set custom hooks")
	}

	customFrame := &testFrameHooks{}
	SetFrameHooks(customFrame)
	if Frame() != customFrame {
		t.Error("SetFrameHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Transition().(NoopTransitionHooks); !ok {
		t.Error("Reset() should restore NoopTransitionHooks")
	}
	if _, ok := Frame().(NoopFrameHooks); !ok {
		t.Error("Reset() should restore NoopFrameHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &recordingHooks{}
	SetTransitionHooks(custom)

	// Setting nil should be ignored
	SetTransitionHooks(nil)

	if Transition() != custom {
		t.Error("SetTransitionHooks(nil) should be ignored")
	}

	Reset()
}

func TestMultiTransitionHooks(t *testing.T) {
	a, b := &recordingHooks{}, &recordingHooks{}
	m := MultiTransitionHooks{a, b}

	m.OnTransitionStart("helix", 10, time.Second)
	m.OnTransitionCancel("table", 20)
	m.OnTick(time.Millisecond, 20)
	m.OnTransitionSettled("helix", 2*time.Second)

	want := []string{"start:helix", "cancel:table", "tick", "settled:helix"}
	for _, h := range []*recordingHooks{a, b} {
		if len(h.events) != len(want) {
			t.Fatalf("events = %v, want %v", h.events, want)
		}
		for i := range want {
			if h.events[i] != want[i] {
				t.Errorf("events[%d] = %q, want %q", i, h.events[i], want[i])
			}
		}
	}
}

// Test implementations
type recordingHooks struct {
	NoopTransitionHooks
	events []string
}

func (r *recordingHooks) OnTransitionStart(layout string, _ int, _ time.Duration) {
	r.events = append(r.events, "start:"+layout)
}

func (r *recordingHooks) OnTransitionCancel(previous string, _ int) {
	r.events = append(r.events, "cancel:"+previous)
}

func (r *recordingHooks) OnTransitionSettled(layout string, _ time.Duration) {
	r.events = append(r.events, "settled:"+layout)
}

func (r *recordingHooks) OnTick(time.Duration, int) {
	r.events = append(r.events, "tick")
}

type testFrameHooks struct{ NoopFrameHooks }
