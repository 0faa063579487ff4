package viz

import (
	"image/color"
	"math"

	"github.com/san-kum/armchain/internal/arm"
	"github.com/san-kum/armchain/internal/render"
)

// raster maps window-space commands onto a braille canvas, scaled to fit
// and centred. Text and the debug panel are collected for the side panel
// instead of being drawn as dots.
type raster struct {
	canvas  *Canvas
	scale   float64
	offset  arm.Vec2
	lines   []string
	panel   color.RGBA
	text    color.RGBA
	hasRect bool
}

func newRaster(c *Canvas, space render.Size) *raster {
	dw, dh := float64(c.DotWidth()), float64(c.DotHeight())
	scale := math.Min(dw/space.W, dh/space.H)
	return &raster{
		canvas: c,
		scale:  scale,
		offset: arm.Vec2{X: (dw - space.W*scale) / 2, Y: (dh - space.H*scale) / 2},
	}
}

func (r *raster) dot(v arm.Vec2) (int, int) {
	p := v.Scale(r.scale).Add(r.offset)
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func (r *raster) Clear(color.RGBA) {
	r.canvas.Clear()
	r.lines = r.lines[:0]
	r.hasRect = false
}

func (r *raster) Line(from, to arm.Vec2, width float64, c color.RGBA) {
	x0, y0 := r.dot(from)
	x1, y1 := r.dot(to)
	radius := width * r.scale / 2
	if radius < 1 {
		r.canvas.DrawLine(x0, y0, x1, y1, c)
		return
	}
	steps := max(absInt(x1-x0), absInt(y1-y0), 1)
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		x := int(math.Round(float64(x0) + f*float64(x1-x0)))
		y := int(math.Round(float64(y0) + f*float64(y1-y0)))
		r.canvas.FillCircle(x, y, radius, c)
	}
}

func (r *raster) Circle(center arm.Vec2, radius float64, c color.RGBA) {
	x, y := r.dot(center)
	r.canvas.FillCircle(x, y, radius*r.scale, c)
}

func (r *raster) Rect(_, _, _, _ float64, c color.RGBA) {
	r.hasRect = true
	r.panel = c
}

func (r *raster) Text(_ arm.Vec2, text string, _ float64, c color.RGBA) {
	r.lines = append(r.lines, text)
	r.text = c
}
