package export

import (
	"image/color"
	"strings"
	"testing"

	"github.com/san-kum/armchain/internal/arm"
	"github.com/san-kum/armchain/internal/render"
)

func TestCommandsToSVG(t *testing.T) {
	poses := []arm.Pose{
		{Base: arm.Vec2{X: 50, Y: 50}, Tip: arm.Vec2{X: 80, Y: 50}, Width: 6, Color: color.RGBA{255, 0, 0, 255}},
	}
	cmds := render.Emit(poses, []string{"a < b"}, render.Size{W: 100, H: 100}, render.DefaultLayout())
	svg := CommandsToSVG(cmds, render.Size{W: 100, H: 100}, color.RGBA{0, 0, 0, 255})

	checks := []struct {
		substr string
		count  int
	}{
		{"<line ", 1},
		{"<circle ", 2},
		{"<rect ", 2},
		{"<text ", 1},
	}
	for _, c := range checks {
		if got := strings.Count(svg, c.substr); got != c.count {
			t.Errorf("%q appears %d times, want %d", c.substr, got, c.count)
		}
	}
	if !strings.Contains(svg, `stroke="#ff0000"`) {
		t.Error("arm colour missing")
	}
	if !strings.Contains(svg, "a &lt; b") {
		t.Error("text not escaped")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("document not closed")
	}
}

func TestTrajectoryToSVG(t *testing.T) {
	if TrajectoryToSVG([]arm.Vec2{{X: 1, Y: 1}}, 100, 100, "#fff") != "" {
		t.Error("single point should produce no SVG")
	}

	svg := TrajectoryToSVG([]arm.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}, 200, 100, "#00ff00")
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("stroke colour missing")
	}
	if strings.Count(svg, " L") != 2 {
		t.Errorf("expected 2 line segments in %s", svg)
	}
	if !strings.Contains(svg, `d="M16.7,8.3`) {
		t.Errorf("unexpected first point in %s", svg)
	}
}
