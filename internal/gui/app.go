package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/armchain/internal/config"
	"github.com/san-kum/armchain/internal/input"
	"github.com/san-kum/armchain/internal/render"
	"github.com/san-kum/armchain/internal/sim"
)

type App struct {
	Driver *sim.Driver
	Raster *Raster
	Done   bool
}

// initWindow opens a resizable window at the configured size and rate and
// disables raylib's built-in exit key so Escape goes through the input
// controller.
func initWindow(w config.WindowConfig) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	rl.SetTargetFPS(int32(w.FPS))
	rl.SetExitKey(0)
}

func NewApp(cfg *config.Config) *App {
	return &App{
		Driver: sim.New(cfg),
		Raster: &Raster{Font: rl.GetFontDefault()},
	}
}

// Run opens the window and blocks until it is closed or the user quits.
func Run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	initWindow(cfg.Window)
	defer rl.CloseWindow()

	app := NewApp(cfg)
	fmt.Printf("armchain: %d arms, %s mode, raylib backend\n", len(app.Driver.Specs()), app.Driver.Mode())
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !a.Done && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	for _, ev := range pollEvents() {
		if a.Driver.Handle(ev) == input.ActionQuit {
			a.Done = true
			return
		}
	}
	a.Driver.Tick()
}

func (a *App) Draw() {
	size := render.Size{W: float64(rl.GetScreenWidth()), H: float64(rl.GetScreenHeight())}

	rl.BeginDrawing()
	a.Driver.Draw(a.Raster, size, float64(rl.GetFPS()))
	rl.EndDrawing()
}
