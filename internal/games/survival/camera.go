package survival

import (
	"math"

	"github.com/vovakirdan/deadzone/internal/core"
)

// One terminal cell covers CellW x CellH world units. Cells are roughly
// twice as tall as they are wide, so the vertical scale is doubled.
const (
	CellW = 20.0
	CellH = 40.0
)

// Camera maps world coordinates to the map viewport and back. The
// viewport starts at screen row Top and spans Rows rows.
type Camera struct {
	Center core.Vec
	Offset core.Vec // shake offset in world units
	Cols   int
	Rows   int
	Top    int
}

// ToScreen returns the cell containing the world point p.
func (c Camera) ToScreen(p core.Vec) (x, y int) {
	origin := c.origin()
	x = int(math.Floor((p.X - origin.X) / CellW))
	y = int(math.Floor((p.Y-origin.Y)/CellH)) + c.Top
	return x, y
}

// ToWorld returns the world point at the center of cell (x, y).
func (c Camera) ToWorld(x, y int) core.Vec {
	origin := c.origin()
	return core.V(
		origin.X+(float64(x)+0.5)*CellW,
		origin.Y+(float64(y-c.Top)+0.5)*CellH,
	)
}

// Visible reports whether cell (x, y) lies inside the viewport.
func (c Camera) Visible(x, y int) bool {
	return x >= 0 && x < c.Cols && y >= c.Top && y < c.Top+c.Rows
}

func (c Camera) origin() core.Vec {
	return core.V(
		c.Center.X+c.Offset.X-float64(c.Cols)*CellW/2,
		c.Center.Y+c.Offset.Y-float64(c.Rows)*CellH/2,
	)
}
