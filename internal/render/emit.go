package render

import (
	"fmt"
	"image/color"

	"github.com/san-kum/armchain/internal/arm"
	"github.com/san-kum/armchain/internal/clock"
)

// Layout controls the debug panel geometry and colours.
type Layout struct {
	Margin     float64
	Padding    float64
	LineHeight float64
	FontSize   float64
	Panel      color.RGBA
	Text       color.RGBA
}

func DefaultLayout() Layout {
	return Layout{
		Margin:     20,
		Padding:    8,
		LineHeight: 5,
		FontSize:   18,
		Panel:      color.RGBA{128, 0, 0, 128},
		Text:       color.RGBA{255, 255, 255, 255},
	}
}

// PanelRect returns the debug panel bounds for n lines on a canvas.
func (l Layout) PanelRect(n int, canvas Size) (x, y, w, h float64) {
	h = 2*l.Padding + float64(n)*l.FontSize + float64(n-1)*l.LineHeight
	w = canvas.W - 2*l.Margin
	x = l.Margin
	y = canvas.H - l.Margin - h
	return x, y, w, h
}

// Emit returns the commands for one frame. Arms are emitted in index order,
// so later arms overlap earlier ones. An empty debugLines skips the panel.
func Emit(poses []arm.Pose, debugLines []string, canvas Size, l Layout) []Command {
	n := len(debugLines)
	cmds := make([]Command, 0, 3*len(poses)+1+n)

	for _, p := range poses {
		r := p.Width / 2
		cmds = append(cmds,
			Line{From: p.Base, To: p.Tip, Width: p.Width, Color: p.Color},
			Circle{Center: p.Base, Radius: r, Color: p.Color},
			Circle{Center: p.Tip, Radius: r, Color: p.Color},
		)
	}

	if n == 0 {
		return cmds
	}

	x, y, w, h := l.PanelRect(n, canvas)
	cmds = append(cmds, Rect{X: x, Y: y, W: w, H: h, Color: l.Panel})
	stride := l.FontSize + l.LineHeight
	for i, line := range debugLines {
		pos := arm.Vec2{X: x + l.Padding, Y: y + l.Padding + stride*float64(i)}
		cmds = append(cmds, Text{Pos: pos, Text: line, Size: l.FontSize, Color: l.Text})
	}
	return cmds
}

// DebugLines builds the overlay text, or nil when the overlay is hidden.
func DebugLines(s clock.State, arms int, mode arm.Mode, fps float64) []string {
	if !s.ShowDebug {
		return nil
	}
	status := "running"
	if s.Paused {
		status = "paused"
	}
	return []string{
		fmt.Sprintf("Clock: %d", s.T),
		fmt.Sprintf("Arms: %d (%s)  Status: %s", arms, mode, status),
		fmt.Sprintf("FPS: %.0f", fps),
	}
}
