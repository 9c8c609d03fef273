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

// Raster visits on-cells row-major, left-to-right, top-to-bottom.
func Raster(c *artwork.Canvas) Path {
	dots := c.OnCells()
	path := make(Path, len(dots))
	for i, d := range dots {
		path[i] = Point{X: d.X, Y: d.Y}
	}
	return path
}
