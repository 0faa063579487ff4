package export

import (
	"fmt"
	"html"
	"image/color"
	"strings"

	"github.com/san-kum/armchain/internal/arm"
	"github.com/san-kum/armchain/internal/render"
)

func svgColor(c color.RGBA) string {
	return fmt.Sprintf(`fill="#%02x%02x%02x" fill-opacity="%.3f"`, c.R, c.G, c.B, float64(c.A)/255)
}

func svgStroke(c color.RGBA) string {
	return fmt.Sprintf(`stroke="#%02x%02x%02x" stroke-opacity="%.3f"`, c.R, c.G, c.B, float64(c.A)/255)
}

// svgWriter implements render.Rasterizer by appending SVG elements.
type svgWriter struct {
	sb strings.Builder
}

func (w *svgWriter) Clear(bg color.RGBA) {
	w.sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" %s/>
`, svgColor(bg)))
}

func (w *svgWriter) Line(from, to arm.Vec2, width float64, c color.RGBA) {
	w.sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke-width="%.2f" %s/>
`, from.X, from.Y, to.X, to.Y, width, svgStroke(c)))
}

func (w *svgWriter) Circle(center arm.Vec2, radius float64, c color.RGBA) {
	w.sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" %s/>
`, center.X, center.Y, radius, svgColor(c)))
}

func (w *svgWriter) Rect(x, y, width, height float64, c color.RGBA) {
	w.sb.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" %s/>
`, x, y, width, height, svgColor(c)))
}

func (w *svgWriter) Text(pos arm.Vec2, text string, size float64, c color.RGBA) {
	// SVG text is positioned by its baseline.
	w.sb.WriteString(fmt.Sprintf(`<text x="%.2f" y="%.2f" font-family="monospace" font-size="%.2f" %s>%s</text>
`, pos.X, pos.Y+size, size, svgColor(c), html.EscapeString(text)))
}

// CommandsToSVG renders one frame of draw commands as an SVG document.
func CommandsToSVG(cmds []render.Command, size render.Size, bg color.RGBA) string {
	w := &svgWriter{}
	w.sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, size.W, size.H, size.W, size.H))
	render.Replay(w, bg, cmds)
	w.sb.WriteString("</svg>")
	return w.sb.String()
}

// TrajectoryToSVG creates an SVG path from trajectory points, fitted to the
// image with a 10% margin.
func TrajectoryToSVG(points []arm.Vec2, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	// Find bounds
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	// Screen space: y grows downward, same as the window.
	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := (p.Y - minY) / rangeY * float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
