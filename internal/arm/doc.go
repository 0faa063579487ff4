// Package arm computes the geometry of a chain of rotating arms.
//
// An arm is a line segment with round end caps. Arms are configured once
// from a fixed table and posed every frame from a single animation clock:
//
//   - [Spec]: immutable per-arm parameters (colour, width, length, speed)
//   - [Pose]: the base, tip, width and colour of one arm at one instant
//   - [ComputeChain]: each arm's base is the previous arm's tip
//   - [ComputeIndependent]: every arm rotates about the same origin
//
// # Example
//
//	specs := arm.BuildSpecs(colors, arm.DefaultParams())
//	poses := arm.ComputeChainFrom(center, clk.Time(), specs)
//
// All functions are pure. Identical inputs produce identical output.
//
// # Precision
//
// Rotation angles grow without bound as the clock advances. cos and sin
// lose precision for very large arguments; this is not corrected.
package arm
