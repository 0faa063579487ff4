// Package automation replays scripted input against a headless driver and
// sweeps arm parameters.
package automation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/armchain/internal/arm"
	"github.com/san-kum/armchain/internal/config"
	"github.com/san-kum/armchain/internal/input"
	"github.com/san-kum/armchain/internal/metrics"
	"github.com/san-kum/armchain/internal/render"
	"github.com/san-kum/armchain/internal/sim"
)

var (
	ErrEmptyScenario = errors.New("automation: scenario has no frames")
	ErrUnknownParam  = errors.New("automation: unknown sweep parameter")
	ErrSweepSteps    = errors.New("automation: sweep needs at least 2 steps")
)

// Scenario is a scripted sequence of input events applied to a recording.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Preset      string         `yaml:"preset"`
	Frames      int            `yaml:"frames"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep fires one event before the given frame is computed. Click
// takes precedence over Key.
type ScenarioStep struct {
	Frame int      `yaml:"frame"`
	Key   string   `yaml:"key"`
	Mods  []string `yaml:"mods"`
	Click bool     `yaml:"click"`
}

// Event converts the step into an input event.
func (s ScenarioStep) Event() (input.Event, error) {
	if s.Click {
		return input.MouseClick{}, nil
	}
	key, err := input.ParseKey(s.Key)
	if err != nil {
		return nil, err
	}
	mods, err := input.ParseMods(s.Mods)
	if err != nil {
		return nil, err
	}
	return input.KeyPress{Key: key, Mods: mods}, nil
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// ScenarioResult is the recording produced by a scenario. QuitFrame is the
// frame at which a quit action stopped playback, or -1.
type ScenarioResult struct {
	*sim.Result
	QuitFrame int
}

// RunScenario drives d for scenario.Frames frames, handling each step's
// event before its frame. A quit action ends playback early.
func RunScenario(ctx context.Context, scenario *Scenario, d *sim.Driver, size render.Size) (*ScenarioResult, error) {
	if scenario.Frames <= 0 {
		return nil, ErrEmptyScenario
	}

	steps := append([]ScenarioStep(nil), scenario.Steps...)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Frame < steps[j].Frame })

	events := make([]input.Event, len(steps))
	for i, step := range steps {
		ev, err := step.Event()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		events[i] = ev
	}

	res := &ScenarioResult{
		Result: &sim.Result{
			Times: make([]int64, 0, scenario.Frames),
			Poses: make([][]arm.Pose, 0, scenario.Frames),
		},
		QuitFrame: -1,
	}

	next := 0
	for frame := 0; frame < scenario.Frames; frame++ {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		for next < len(steps) && steps[next].Frame <= frame {
			action := d.Handle(events[next])
			next++
			if action == input.ActionQuit {
				res.QuitFrame = frame
				return res, nil
			}
		}

		res.Times = append(res.Times, d.Clock.T)
		res.Poses = append(res.Poses, d.Poses(size))
		d.Tick()
	}

	return res, nil
}

// SweepParams lists the arm parameters a sweep can vary.
var SweepParams = map[string]func(*config.ArmsConfig, float64){
	"width_multiply":  func(a *config.ArmsConfig, v float64) { a.WidthMultiply = v },
	"width_minimum":   func(a *config.ArmsConfig, v float64) { a.WidthMinimum = v },
	"length_multiply": func(a *config.ArmsConfig, v float64) { a.LengthMultiply = v },
	"length_minimum":  func(a *config.ArmsConfig, v float64) { a.LengthMinimum = v },
	"speed_exponent":  func(a *config.ArmsConfig, v float64) { a.SpeedExponent = v },
	"speed_multiply":  func(a *config.ArmsConfig, v float64) { a.SpeedMultiply = v },
}

// ParameterSweep runs the same recording across a range of one arm parameter
type ParameterSweep struct {
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
	Frames    int
}

// SweepResult holds the metric values for one parameter value.
type SweepResult struct {
	ParamValue float64
	Metrics    map[string]float64
}

// RunSweep records sweep.Frames frames of base for each parameter value and
// reports the default metrics.
func RunSweep(ctx context.Context, sweep *ParameterSweep, base *config.Config) ([]SweepResult, error) {
	set, ok := SweepParams[sweep.ParamName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParam, sweep.ParamName)
	}
	if sweep.NumSteps < 2 {
		return nil, ErrSweepSteps
	}

	size := base.CanvasSize()
	radius := size.W
	if size.H < radius {
		radius = size.H
	}
	radius /= 2

	paramStep := (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)
	results := make([]SweepResult, 0, sweep.NumSteps)

	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep

		cfg := base.Clone()
		set(&cfg.Arms, paramVal)
		if err := cfg.Validate(); err != nil {
			return results, fmt.Errorf("%s=%.4f: %w", sweep.ParamName, paramVal, err)
		}

		ms := metrics.Default(radius)
		observers := make([]sim.Observer, len(ms))
		for j, m := range ms {
			observers[j] = m
		}

		if _, err := sim.Run(ctx, sim.New(cfg), size, sweep.Frames, observers...); err != nil {
			return results, err
		}

		values := make(map[string]float64, len(ms))
		for _, m := range ms {
			values[m.Name()] = m.Value()
		}
		results = append(results, SweepResult{ParamValue: paramVal, Metrics: values})
	}

	return results, nil
}
