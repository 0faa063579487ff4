package sim

import (
	"context"
	"errors"

	"github.com/san-kum/armchain/internal/arm"
	"github.com/san-kum/armchain/internal/render"
)

var ErrNoFrames = errors.New("sim: frame count must be positive")

// Observer is notified of every frame produced by Run.
type Observer interface {
	OnFrame(t int64, poses []arm.Pose)
}

type Result struct {
	Times []int64
	Poses [][]arm.Pose
}

// Tips returns the outermost tip of every recorded frame.
func (r *Result) Tips() []arm.Vec2 {
	tips := make([]arm.Vec2, 0, len(r.Poses))
	for _, p := range r.Poses {
		if len(p) > 0 {
			tips = append(tips, p[len(p)-1].Tip)
		}
	}
	return tips
}

// Run records frames poses starting from the driver's current clock,
// ticking once after each frame.
func Run(ctx context.Context, d *Driver, size render.Size, frames int, observers ...Observer) (*Result, error) {
	if frames <= 0 {
		return nil, ErrNoFrames
	}

	result := &Result{
		Times: make([]int64, 0, frames),
		Poses: make([][]arm.Pose, 0, frames),
	}

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		poses := d.Poses(size)
		result.Times = append(result.Times, d.Clock.T)
		result.Poses = append(result.Poses, poses)
		for _, o := range observers {
			o.OnFrame(d.Clock.T, poses)
		}
		d.Tick()
	}
	return result, nil
}
