// Package render turns arm poses and debug text into draw commands.
//
// Geometry and drawing are separate steps. [Emit] produces an ordered
// command list from pure data; a backend then hands that list to its own
// [Rasterizer] through [Replay]:
//
//	poses := arm.ComputeChainFrom(center, clk.Time(), specs)
//	cmds := render.Emit(poses, lines, size, render.DefaultLayout())
//	render.Replay(raster, background, cmds)
//
// Each arm becomes a line followed by two filled circles acting as round
// caps. The optional debug panel is a filled rectangle along the bottom
// margin followed by one text command per line.
package render
