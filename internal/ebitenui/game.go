// Package ebitenui runs the arm animation on ebiten.
//
// ebiten calls Update at a fixed tick rate and Draw once per frame, which
// maps directly onto the driver's tick and frame steps. Quitting returns
// ebiten.Termination from Update.
package ebitenui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/armchain/internal/arm"
	"github.com/san-kum/armchain/internal/config"
	"github.com/san-kum/armchain/internal/input"
	"github.com/san-kum/armchain/internal/render"
	"github.com/san-kum/armchain/internal/sim"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyF3:         input.KeyF3,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeyQ:          input.KeyQ,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

type game struct {
	driver *sim.Driver
	size   render.Size
}

func newGame(cfg *config.Config) *game {
	return &game{
		driver: sim.New(cfg),
		size:   cfg.CanvasSize(),
	}
}

func modifiers() input.Mod {
	var m input.Mod
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= input.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= input.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= input.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= input.ModSuper
	}
	return m
}

func (g *game) events() []input.Event {
	var events []input.Event
	mods := modifiers()
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if key, ok := keyMap[k]; ok {
			events = append(events, input.KeyPress{Key: key, Mods: mods})
		}
	}
	for i, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			x, y := ebiten.CursorPosition()
			events = append(events, input.MouseClick{Button: i, X: float64(x), Y: float64(y)})
		}
	}
	return events
}

func (g *game) Update() error {
	for _, ev := range g.events() {
		if g.driver.Handle(ev) == input.ActionQuit {
			return ebiten.Termination
		}
	}
	g.driver.Tick()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.driver.Draw(&raster{dst: screen}, g.size, ebiten.ActualFPS())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.size = render.Size{W: float64(outsideWidth), H: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// raster draws render commands onto an ebiten image.
type raster struct {
	dst *ebiten.Image
}

func (r *raster) Clear(bg color.RGBA) {
	r.dst.Fill(bg)
}

func (r *raster) Line(from, to arm.Vec2, width float64, c color.RGBA) {
	vector.StrokeLine(r.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), c, true)
}

func (r *raster) Circle(center arm.Vec2, radius float64, c color.RGBA) {
	vector.DrawFilledCircle(r.dst, float32(center.X), float32(center.Y), float32(radius), c, true)
}

func (r *raster) Rect(x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(r.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// Text uses ebiten's fixed debug font; size and colour are ignored.
func (r *raster) Text(pos arm.Vec2, text string, _ float64, _ color.RGBA) {
	ebitenutil.DebugPrintAt(r.dst, text, int(pos.X), int(pos.Y))
}

// Run opens a window and blocks until it is closed or the user quits.
func Run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.FPS)

	g := newGame(cfg)
	fmt.Printf("armchain: %d arms, %s mode, ebiten backend\n", len(g.driver.Specs()), g.driver.Mode())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
