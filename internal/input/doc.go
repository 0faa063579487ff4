// Package input maps keyboard and mouse events to clock mutations.
//
// Backends translate their native events into [KeyPress] and [MouseClick]
// values and pass them to [Controller.Handle]:
//
//	F3            - toggle debug overlay
//	Space         - pause/resume
//	Left / Right  - nudge the clock by the manual step
//	Escape, Q     - quit
//	Mouse click   - quit
//
// Handle never exits the process. A quit request is returned as
// [ActionQuit] and the caller decides how to stop.
package input
