// Package canvas rasterises line segments onto a grid of Unicode Braille
// cells. Each cell is a 2x4 dot grid, so a canvas of cols x rows cells has
// cols*2 x rows*4 addressable dots.
package canvas

import "strings"

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Canvas is a braille dot buffer. A cell takes the colour of the last dot
// drawn into it.
type Canvas struct {
	cols, rows int
	bits       []uint8
	colors     []RGB
	profile    colorProfile
	seqs       map[RGB]string // escape sequences for colours drawn so far
}

func New(cols, rows int) *Canvas {
	c := &Canvas{profile: currentColorProfile(), seqs: make(map[RGB]string)}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell dimensions and clears the canvas.
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 1)
	c.rows = max(rows, 1)
	c.bits = make([]uint8, c.cols*c.rows)
	c.colors = make([]RGB, c.cols*c.rows)
}

// Cells returns the canvas size in terminal cells.
func (c *Canvas) Cells() (cols, rows int) {
	return c.cols, c.rows
}

// Size returns the canvas size in dots.
func (c *Canvas) Size() (w, h int) {
	return c.cols * 2, c.rows * 4
}

func (c *Canvas) Clear() {
	clear(c.bits)
	clear(c.colors)
}

// Set lights the dot at (x, y). Dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col RGB) {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return
	}
	i := (y/4)*c.cols + x/2
	c.bits[i] |= 1 << brailleBits[x%2][y%4]
	c.colors[i] = col
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return false
	}
	return c.bits[(y/4)*c.cols+x/2]&(1<<brailleBits[x%2][y%4]) != 0
}

// Line draws a segment between two dots with Bresenham's algorithm.
// Off-canvas parts are clipped dot by dot.
func (c *Canvas) Line(x0, y0, x1, y1 int, col RGB) {
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
	for {
		c.Set(x0, y0, col)
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

// Disc lights every dot within r of (x, y).
func (c *Canvas) Disc(x, y, r int, col RGB) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(x+dx, y+dy, col)
			}
		}
	}
}

// String renders the canvas as rows of braille runes separated by newlines.
// Empty cells are spaces so the terminal background shows through.
func (c *Canvas) String() string {
	var out strings.Builder
	for row := range c.rows {
		if row > 0 {
			out.WriteByte('\n')
		}
		var cur RGB
		colored := false
		for col := range c.cols {
			i := row*c.cols + col
			if c.bits[i] == 0 {
				out.WriteByte(' ')
				continue
			}
			if c.profile != colorNone && (!colored || c.colors[i] != cur) {
				out.WriteString(c.sequence(c.colors[i]))
				cur, colored = c.colors[i], true
			}
			out.WriteRune(rune(0x2800 + uint(c.bits[i])))
		}
		if colored {
			out.WriteString("\x1b[0m")
		}
	}
	return out.String()
}

func (c *Canvas) sequence(col RGB) string {
	if seq, ok := c.seqs[col]; ok {
		return seq
	}
	if c.seqs == nil {
		c.seqs = make(map[RGB]string)
	}
	seq := escape(c.profile, col)
	c.seqs[col] = seq
	return seq
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
