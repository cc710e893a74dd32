package twod

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/hull/geom"
)

const drawPadding = 10

// DrawPNG renders the hull boundary and the given candidate points to a
// PNG file. Mostly useful for eyeballing what the filter and the chain
// builder did to a point cloud.
func (h *Hull) DrawPNG(path string, points []geom.Vec2, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range append(append([]geom.Vec2{}, points...), h.vertices...) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetRGB(0.5, 0.5, 0.5)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}

	if len(h.vertices) >= 2 {
		c.SetLineWidth(2)
		c.MoveTo(h.vertices[0].X, h.vertices[0].Y)
		for _, p := range h.vertices[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}
	c.SetRGB(1, 0.5, 0)
	for _, p := range h.vertices {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	return c.SavePNG(path)
}

// dbgDraw is for debugging purposes only: render to a scratch file and cat
// it inline in the terminal.
func (h *Hull) dbgDraw(points []geom.Vec2, scale float64) {
	if err := h.DrawPNG("/tmp/hull.png", points, scale); err != nil {
		return
	}
	imgcat.CatFile("/tmp/hull.png", os.Stdout)
}
