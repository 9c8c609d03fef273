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

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// NearestNeighbour starts from the top-left on-cell (the first in raster
// order) and repeatedly jumps to the closest remaining on-cell under
// Manhattan distance. Ties are broken by lower-y then lower-x, matching
// the natural raster ordering of the remaining set.
func NearestNeighbour(c *artwork.Canvas) Path {
	remaining := Raster(c)
	if len(remaining) == 0 {
		return nil
	}

	path := make(Path, 0, len(remaining))
	current := remaining[0]
	path = append(path, current)
	remaining = remaining[1:]

	for len(remaining) > 0 {
		best := 0
		bestDist := manhattan(current, remaining[0])
		for i := 1; i < len(remaining); i++ {
			d := manhattan(current, remaining[i])
			if d < bestDist || (d == bestDist && less(remaining[i], remaining[best])) {
				best = i
				bestDist = d
			}
		}
		current = remaining[best]
		path = append(path, current)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return path
}

// less implements the tie-break order: lower-y then lower-x.
func less(a, b Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
