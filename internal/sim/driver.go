// Package sim drives the update-then-render cycle shared by every backend.
//
// A [Driver] owns the clock and the fixed arm table. Backends feed it input
// events, call [Driver.Tick] once per update and [Driver.Frame] once per
// draw, then replay the returned commands on their own surface. [Run]
// drives the same cycle headlessly for recording and export.
package sim

import (
	"image/color"

	"github.com/san-kum/armchain/internal/arm"
	"github.com/san-kum/armchain/internal/clock"
	"github.com/san-kum/armchain/internal/config"
	"github.com/san-kum/armchain/internal/input"
	"github.com/san-kum/armchain/internal/render"
)

type Driver struct {
	Clock clock.State

	specs      []arm.Spec
	mode       arm.Mode
	controller *input.Controller
	layout     render.Layout
	background color.RGBA
}

// New builds a driver from cfg. cfg must already have passed
// [config.Config.Validate]: colours that fail to parse are drawn as opaque
// black and an unknown mode falls back to chain. Use [FromConfig] when the
// config has not been checked.
func New(cfg *config.Config) *Driver {
	return &Driver{
		specs:      cfg.Specs(),
		mode:       cfg.ArmMode(),
		controller: input.NewController(cfg.ManualSpeed),
		layout:     cfg.Layout(),
		background: cfg.BackgroundColor(),
	}
}

// FromConfig validates cfg and builds a driver from it.
func FromConfig(cfg *config.Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(cfg), nil
}

func (d *Driver) Specs() []arm.Spec             { return d.specs }
func (d *Driver) Mode() arm.Mode                { return d.mode }
func (d *Driver) Layout() render.Layout         { return d.layout }
func (d *Driver) Background() color.RGBA        { return d.background }
func (d *Driver) Controller() *input.Controller { return d.controller }

// Handle applies one input event to the clock.
func (d *Driver) Handle(ev input.Event) input.Action {
	return d.controller.Handle(ev, &d.Clock)
}

// Tick advances the clock by one update.
func (d *Driver) Tick() {
	d.Clock.Advance()
}

// Poses computes the arms for the current clock, rooted at the canvas centre.
func (d *Driver) Poses(size render.Size) []arm.Pose {
	return arm.Compute(d.mode, size.Center(), d.Clock.Time(), d.specs)
}

// Frame returns the draw commands for the current clock.
func (d *Driver) Frame(size render.Size, fps float64) []render.Command {
	lines := render.DebugLines(d.Clock, len(d.specs), d.mode, fps)
	return render.Emit(d.Poses(size), lines, size, d.layout)
}

// Draw replays the current frame into r.
func (d *Driver) Draw(r render.Rasterizer, size render.Size, fps float64) {
	render.Replay(r, d.background, d.Frame(size, fps))
}
