package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/armchain/internal/input"
)

var keyMap = []struct {
	rl  int32
	key input.Key
}{
	{rl.KeyF3, input.KeyF3},
	{rl.KeySpace, input.KeySpace},
	{rl.KeyEscape, input.KeyEscape},
	{rl.KeyQ, input.KeyQ},
	{rl.KeyLeft, input.KeyLeft},
	{rl.KeyRight, input.KeyRight},
}

var mouseButtons = []rl.MouseButton{
	rl.MouseButtonLeft,
	rl.MouseButtonRight,
	rl.MouseButtonMiddle,
}

func modifiers() input.Mod {
	var m input.Mod
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		m |= input.ModShift
	}
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		m |= input.ModCtrl
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		m |= input.ModAlt
	}
	if rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper) {
		m |= input.ModSuper
	}
	return m
}

// pollEvents collects this frame's key presses and mouse clicks.
func pollEvents() []input.Event {
	var events []input.Event
	mods := modifiers()
	for _, k := range keyMap {
		if rl.IsKeyPressed(k.rl) {
			events = append(events, input.KeyPress{Key: k.key, Mods: mods})
		}
	}
	for i, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b) {
			pos := rl.GetMousePosition()
			events = append(events, input.MouseClick{Button: i, X: float64(pos.X), Y: float64(pos.Y)})
		}
	}
	return events
}
