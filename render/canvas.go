package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rayvehicle/parameter"
)

// Canvas rasterizes world-space lines onto a tcell screen through a View
// Implements physics.LineDrawer
type Canvas struct {
	screen tcell.Screen
	view   View
	width  int
	height int
	top    int // rows reserved above the drawing area
}

// NewCanvas draws below the first top rows of screen
func NewCanvas(screen tcell.Screen, view View, top int) *Canvas {
	c := &Canvas{screen: screen, view: view, top: top}
	c.width, c.height = screen.Size()
	return c
}

func (c *Canvas) View() View { return c.view }

// SetView switches projection, keeping the current center
func (c *Canvas) SetView(v View) {
	v.Center = c.view.Center
	v.Scale = c.view.Scale
	c.view = v
}

func (c *Canvas) Zoom(factor float64) { c.view.Zoom(factor) }

// Follow centers the view on p
func (c *Canvas) Follow(p mgl64.Vec3) { c.view.Center = p }

// Clear blanks the screen and picks up size changes
func (c *Canvas) Clear() {
	c.screen.Clear()
	c.width, c.height = c.screen.Size()
}

func (c *Canvas) Show() { c.screen.Show() }

// Project returns the cell of a world point; ok is false outside the drawing area
func (c *Canvas) Project(p mgl64.Vec3) (x, y int, ok bool) {
	fx, fy := c.project(p)
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	return x, y, c.inside(x, y)
}

func (c *Canvas) project(p mgl64.Vec3) (float64, float64) {
	fx, fy := c.view.Project(p, c.width, c.height-c.top)
	return fx, fy + float64(c.top)
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.width && y >= c.top && y < c.height
}

// DrawLine rasterizes from→to with a slope glyph; color components are in [0,1]
func (c *Canvas) DrawLine(from, to, color mgl64.Vec3) {
	fx0, fy0 := c.project(from)
	fx1, fy1 := c.project(to)
	x0, y0 := int(math.Floor(fx0)), int(math.Floor(fy0))
	x1, y1 := int(math.Floor(fx1)), int(math.Floor(fy1))

	style := tcell.StyleDefault.Foreground(RGB(color))
	glyph := lineGlyph(fx1-fx0, fy1-fy0)

	// Bresenham
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for range parameter.MaxLineSteps {
		if c.inside(x0, y0) {
			c.screen.SetContent(x0, y0, glyph, nil, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawText writes s starting at cell x,y, clipped to the screen
func (c *Canvas) DrawText(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= c.height {
		return
	}
	for _, r := range s {
		if x >= c.width {
			return
		}
		if x >= 0 {
			c.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// RGB converts a [0,1] color to a tcell true color
func RGB(color mgl64.Vec3) tcell.Color {
	ch := func(v float64) int32 {
		return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return tcell.NewRGBColor(ch(color[0]), ch(color[1]), ch(color[2]))
}

// lineGlyph picks a character approximating the screen slope; screen y grows downward
func lineGlyph(dx, dy float64) rune {
	// Cells are twice as tall as wide
	ax, ay := math.Abs(dx), math.Abs(dy)*parameter.CellAspect
	switch {
	case ax == 0 && ay == 0:
		return '+'
	case ay < ax*0.5:
		return '-'
	case ax < ay*0.5:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
