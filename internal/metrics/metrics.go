// Package metrics summarises a series of arm frames. Every metric is a
// sim.Observer, so it can be handed straight to sim.Run.
package metrics

import "github.com/san-kum/armchain/internal/arm"

type Metric interface {
	Name() string
	OnFrame(t int64, poses []arm.Pose)
	Value() float64
	Reset()
}

// outer returns the chain origin and the outermost tip of a frame.
func outer(poses []arm.Pose) (origin, tip arm.Vec2, ok bool) {
	if len(poses) == 0 {
		return arm.Vec2{}, arm.Vec2{}, false
	}
	return poses[0].Base, poses[len(poses)-1].Tip, true
}

// Observe feeds a recorded series through every metric.
func Observe(times []int64, frames [][]arm.Pose, ms ...Metric) {
	for i, poses := range frames {
		for _, m := range ms {
			m.OnFrame(times[i], poses)
		}
	}
}

// Default returns the metrics reported for a recording, with containment
// measured against radius.
func Default(radius float64) []Metric {
	return []Metric{NewMaxReach(), NewTipPath(), NewContainment(radius)}
}
