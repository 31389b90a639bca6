package ui

import (
	"math"

	"github.com/olivier-w/linkage/internal/mech"
)

const (
	marginLeft = 2
	headerRows = 3 // blank, title, blank
	footerRows = 5 // blank, status, message, blank, help
)

// viewport maps world coordinates onto canvas dots with a uniform scale,
// centring the world inside the canvas. Braille dots are close enough to
// square that no aspect correction is applied.
type viewport struct {
	left, top  int
	cols, rows int
	scale      float64
	offX, offY float64
}

func newViewport(termW, termH int, worldW, worldH float64) viewport {
	v := viewport{
		left: marginLeft,
		top:  headerRows,
		cols: max(termW-2*marginLeft, 8),
		rows: max(termH-headerRows-footerRows, 4),
	}
	dotW := float64(v.cols * 2)
	dotH := float64(v.rows * 4)
	v.scale = math.Min(dotW/worldW, dotH/worldH)
	v.offX = (dotW - worldW*v.scale) / 2
	v.offY = (dotH - worldH*v.scale) / 2
	return v
}

// toDot returns the canvas dot for a world position.
func (v viewport) toDot(p mech.Vec) (int, int) {
	return int(math.Round(v.offX + p.X*v.scale)), int(math.Round(v.offY + p.Y*v.scale))
}

// cellToWorld maps a terminal cell to the world position under the centre
// of that cell. inside reports whether the cell lies on the canvas.
func (v viewport) cellToWorld(x, y int) (p mech.Vec, inside bool) {
	cx, cy := x-v.left, y-v.top
	inside = cx >= 0 && cy >= 0 && cx < v.cols && cy < v.rows
	dx := float64(cx*2) + 1
	dy := float64(cy*4) + 2
	return mech.V((dx-v.offX)/v.scale, (dy-v.offY)/v.scale), inside
}
