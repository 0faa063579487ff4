// Package clock holds the animation clock and the pause and debug flags.
//
// The zero State is the start state: t=0, running, debug overlay hidden.
// A State is owned by the run loop and is not safe for concurrent use.
package clock

import "fmt"

type State struct {
	T         int64
	Paused    bool
	ShowDebug bool
}

// Advance moves the clock forward one tick unless paused.
func (s *State) Advance() {
	if !s.Paused {
		s.T++
	}
}

// Nudge offsets the clock by delta, paused or not. The offset is permanent
// and composes with automatic advancing.
func (s *State) Nudge(delta int64) {
	s.T += delta
}

func (s *State) TogglePause() {
	s.Paused = !s.Paused
}

func (s *State) ToggleDebug() {
	s.ShowDebug = !s.ShowDebug
}

// Time is the clock as the real-valued input to the arm model.
func (s State) Time() float64 {
	return float64(s.T)
}

func (s State) String() string {
	status := "running"
	if s.Paused {
		status = "paused"
	}
	return fmt.Sprintf("t=%d %s", s.T, status)
}
