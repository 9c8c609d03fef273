// This file is part of paintgadget.
//
// paintgadget is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// paintgadget is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with paintgadget.  If not, see <https://www.gnu.org/licenses/>.

package artwork

import "github.com/jetsetilly/paintgadget/errors"

// Dot is one on-cell coordinate as received from the API boundary. Colour
// is accepted but discarded - the core does not paint colour (Non-goal).
type Dot struct {
	X, Y int
}

// Canvas is a fixed 320x120 grid of one-bit cells. It is immutable once
// constructed by NewCanvas.
type Canvas struct {
	cells [Height][Width]bool
}

// NewCanvas builds a Canvas from a declared width/height and a set of
// on-cell coordinates. It rejects any width/height other than exactly
// Width x Height, and any dot falling outside that grid, both with
// InvalidDimensions - per the design, dimension mismatches are the one
// thing this layer refuses rather than clamps.
func NewCanvas(width, height int, dots []Dot) (*Canvas, error) {
	if width != Width || height != Height {
		return nil, errors.Errorf(errors.InvalidDimensions, Width, Height, width, height)
	}

	c := &Canvas{}
	for _, d := range dots {
		if d.X < 0 || d.X >= Width || d.Y < 0 || d.Y >= Height {
			return nil, errors.Errorf(errors.InvalidDimensions, Width, Height, width, height)
		}
		c.cells[d.Y][d.X] = true
	}
	return c, nil
}

// On reports whether the cell at (x, y) is painted. Coordinates outside
// the canvas are always off.
func (c *Canvas) On(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return c.cells[y][x]
}

// Count returns the number of on-cells.
func (c *Canvas) Count() int {
	n := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if c.cells[y][x] {
				n++
			}
		}
	}
	return n
}

// OnCells returns every on-cell in row-major order: all of row 0
// left-to-right, then row 1, and so on. This is the natural iteration
// order the Raster strategy consumes directly.
func (c *Canvas) OnCells() []Dot {
	dots := make([]Dot, 0, c.Count())
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if c.cells[y][x] {
				dots = append(dots, Dot{X: x, Y: y})
			}
		}
	}
	return dots
}
