package tween_test

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/periodix/pkg/tween"
)

func ExampleTween_Advance() {
	tw := tween.New(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{100, 0, 0}, 2*time.Second, tween.ExponentialInOut)

	for _, dt := range []time.Duration{time.Second, time.Second} {
		v, done := tw.Advance(dt)
		fmt.Printf("x=%.1f done=%v\n", v.X(), done)
	}
	// Output:
	// x=50.0 done=false
	// x=100.0 done=true
}
