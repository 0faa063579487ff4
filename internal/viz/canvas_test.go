package viz

import (
	"image/color"
	"strings"
	"testing"
)

var white = color.RGBA{255, 255, 255, 255}

func TestCanvas_SetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	if c.DotWidth() != 8 || c.DotHeight() != 8 {
		t.Fatalf("dot size %dx%d", c.DotWidth(), c.DotHeight())
	}

	c.Set(0, 0, white)
	c.Set(1, 3, white)
	if c.Grid[0][0] != rune(0x2800|0x1|0x80) {
		t.Errorf("unexpected cell %U", c.Grid[0][0])
	}
	if !c.IsSet(1, 3) || c.IsSet(1, 2) {
		t.Error("IsSet disagrees with Set")
	}

	c.Set(-1, 0, white)
	c.Set(100, 100, white)

	c.Clear()
	if c.IsSet(0, 0) || c.Colors[0][0] != (color.RGBA{}) {
		t.Error("clear left dots behind")
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(10, 2)
	c.DrawLine(0, 4, 19, 4, white)
	for x := 0; x < 20; x++ {
		if !c.IsSet(x, 4) {
			t.Errorf("dot %d not set", x)
		}
	}
	if c.IsSet(0, 3) {
		t.Error("line spilled to neighbouring row")
	}
}

func TestCanvas_FillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(10, 10, 3, white)
	if !c.IsSet(10, 10) || !c.IsSet(13, 10) || !c.IsSet(10, 7) {
		t.Error("circle missing expected dots")
	}
	if c.IsSet(13, 13) {
		t.Error("circle filled a corner outside the radius")
	}

	c.Clear()
	c.FillCircle(4, 4, 0.2, white)
	if !c.IsSet(4, 4) {
		t.Error("tiny circle should light its centre")
	}
}

func TestCanvas_String(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 2 || len([]rune(lines[0])) != 3 {
		t.Errorf("unexpected canvas string %q", c.String())
	}
}

func TestCanvas_RenderKeepsDots(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Set(0, 0, color.RGBA{255, 0, 0, 255})
	out := c.Render()
	if !strings.ContainsRune(out, rune(0x2801)) {
		t.Errorf("rendered canvas lost the lit cell: %q", out)
	}
}
