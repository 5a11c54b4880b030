package tween

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	for _, name := range EasingNames() {
		ease, _ := Lookup(name)
		if got := ease(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := ease(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestEasingMonotonic(t *testing.T) {
	for _, name := range EasingNames() {
		ease, _ := Lookup(name)
		prev := ease(0)
		for i := 1; i <= 1000; i++ {
			v := ease(float64(i) / 1000)
			if v < prev {
				t.Errorf("%s decreases at t=%v: %v < %v", name, float64(i)/1000, v, prev)
				break
			}
			prev = v
		}
	}
}

func TestExponentialInOut(t *testing.T) {
	tests := []struct {
		t    float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.5 * math.Pow(2, -5)},
		{0.5, 0.5},
		{0.75, 1 - 0.5*math.Pow(2, -5)},
		{1, 1},
		{2, 1},
	}

	for _, tt := range tests {
		if got := ExponentialInOut(tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ExponentialInOut(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestExponentialInOutSymmetric(t *testing.T) {
	for i := 1; i < 100; i++ {
		x := float64(i) / 100
		if d := ExponentialInOut(x) + ExponentialInOut(1-x) - 1; math.Abs(d) > 1e-12 {
			t.Errorf("ExponentialInOut(%v) + ExponentialInOut(%v) = 1%+v", x, 1-x, d)
		}
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("exponential-in-out"); !ok {
		t.Error("Lookup(exponential-in-out) not found")
	}
	if _, ok := Lookup("bounce"); ok {
		t.Error("Lookup(bounce) found")
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{-4, 4, 0.25, -2},
	}

	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 0.001 {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}
