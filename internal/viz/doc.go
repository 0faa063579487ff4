// Package viz renders the arm animation in a terminal.
//
// The TUI is built on Bubble Tea. Arms are drawn into a braille [Canvas]
// where each character cell holds 2x4 dots, and the debug overlay is shown
// as a coloured panel beside the canvas together with a plot of the
// outermost tip's distance from the origin.
//
// # Key Bindings
//
//	Space      - Pause/Resume
//	F3         - Toggle debug panel
//	Left/Right - Nudge the clock
//	Q, Esc     - Quit
//	Click      - Quit
package viz
