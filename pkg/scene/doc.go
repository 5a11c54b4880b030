// Package scene owns the live elements of a periodix display and animates
// them between layouts.
//
// A [Scene] is built once from a dataset with [New]. It computes every
// layout up front, scatters the elements at random positions and then moves
// them only in response to two calls:
//
//   - [Scene.TransitionTo] (or [Scene.Start]) discards every running
//     animation and starts one position and one rotation tween per element,
//     each beginning at the element's current live value
//   - [Scene.Tick] advances all running tweens by the elapsed time, writes
//     the eased values into the elements and drops tweens that finished
//
// Each tween gets its own duration drawn from [base, 2*base) and uses
// [tween.ExponentialInOut] unless [WithEasing] says otherwise. A zero base
// duration makes the next Tick, even Tick(0), snap every element to its
// target.
//
// Failed calls never mutate the scene: an unknown layout name or a layout
// of the wrong size yields a CONFIGURATION error and a negative duration an
// INVALID_ARGUMENT error, with every element and tween left as it was.
//
// # Concurrency
//
// A Scene is not safe for concurrent use. The owner, usually a frame loop,
// must serialize calls to TransitionTo, Tick and the accessors.
package scene
