package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/armchain/internal/arm"
)

// Raster draws render commands with raylib. It must be used between
// rl.BeginDrawing and rl.EndDrawing.
type Raster struct {
	Font rl.Font
}

func vec(v arm.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func (r *Raster) Clear(bg color.RGBA) {
	rl.ClearBackground(bg)
}

func (r *Raster) Line(from, to arm.Vec2, width float64, c color.RGBA) {
	rl.DrawLineEx(vec(from), vec(to), float32(width), c)
}

func (r *Raster) Circle(center arm.Vec2, radius float64, c color.RGBA) {
	rl.DrawCircleV(vec(center), float32(radius), c)
}

func (r *Raster) Rect(x, y, w, h float64, c color.RGBA) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), c)
}

func (r *Raster) Text(pos arm.Vec2, text string, size float64, c color.RGBA) {
	rl.DrawTextEx(r.Font, text, vec(pos), float32(size), 1, c)
}
