// Package gui runs the arm animation in a raylib window.
//
// This is the default backend. Each frame it polls the fixed key set and
// mouse buttons, advances the shared driver and replays the driver's
// commands through [Raster].
package gui
