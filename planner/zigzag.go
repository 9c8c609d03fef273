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

package planner

import "github.com/jetsetilly/paintgadget/artwork"

// ZigZag visits on-cells row by row like Raster, but reverses the
// left-right direction on every other row (boustrophedon), so the
// transition between two rows costs one vertical Move instead of a long
// horizontal return to the left margin.
func ZigZag(c *artwork.Canvas) Path {
	var path Path

	forward := true
	for y := 0; y < artwork.Height; y++ {
		var row []int
		for x := 0; x < artwork.Width; x++ {
			if c.On(x, y) {
				row = append(row, x)
			}
		}
		if len(row) == 0 {
			continue
		}
		if !forward {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
		for _, x := range row {
			path = append(path, Point{X: x, Y: y})
		}
		forward = !forward
	}

	return path
}
