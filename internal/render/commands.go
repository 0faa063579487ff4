package render

import (
	"image/color"

	"github.com/san-kum/armchain/internal/arm"
)

// Command is one draw primitive. The concrete types are Line, Circle,
// Rect and Text.
type Command interface {
	apply(r Rasterizer)
}

type Line struct {
	From, To arm.Vec2
	Width    float64
	Color    color.RGBA
}

// Circle is filled.
type Circle struct {
	Center arm.Vec2
	Radius float64
	Color  color.RGBA
}

// Rect is filled; X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// Text is drawn with its top-left corner at Pos.
type Text struct {
	Pos   arm.Vec2
	Text  string
	Size  float64
	Color color.RGBA
}

func (c Line) apply(r Rasterizer)   { r.Line(c.From, c.To, c.Width, c.Color) }
func (c Circle) apply(r Rasterizer) { r.Circle(c.Center, c.Radius, c.Color) }
func (c Rect) apply(r Rasterizer)   { r.Rect(c.X, c.Y, c.W, c.H, c.Color) }
func (c Text) apply(r Rasterizer)   { r.Text(c.Pos, c.Text, c.Size, c.Color) }

// Rasterizer draws primitives to a surface. Implementations live with the
// window or terminal backend that owns the surface.
type Rasterizer interface {
	Clear(bg color.RGBA)
	Line(from, to arm.Vec2, width float64, c color.RGBA)
	Circle(center arm.Vec2, radius float64, c color.RGBA)
	Rect(x, y, w, h float64, c color.RGBA)
	Text(pos arm.Vec2, text string, size float64, c color.RGBA)
}

// Replay clears the surface and draws cmds in order.
func Replay(r Rasterizer, bg color.RGBA, cmds []Command) {
	r.Clear(bg)
	for _, c := range cmds {
		c.apply(r)
	}
}

// Size is the canvas size in pixels.
type Size struct {
	W, H float64
}

func (s Size) Center() arm.Vec2 {
	return arm.Vec2{X: s.W / 2, Y: s.H / 2}
}
