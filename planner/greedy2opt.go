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

// twoOptMaxPasses bounds the 2-opt improvement loop by a fixed number of
// full passes over the path, per the design's requirement to document
// whichever budget is chosen (a pass budget here, rather than a
// wall-clock one, keeps the result reproducible independent of host
// speed).
const twoOptMaxPasses = 4

// GreedyTwoOpt seeds with NearestNeighbour, then runs a bounded 2-opt
// improvement pass: repeatedly find a pair of edges whose swap reduces
// total Manhattan length, apply it, until a full pass finds no improving
// swap or twoOptMaxPasses is reached.
func GreedyTwoOpt(c *artwork.Canvas) Path {
	path := NearestNeighbour(c)
	if len(path) < 4 {
		return path
	}

	for pass := 0; pass < twoOptMaxPasses; pass++ {
		improved := false

		for i := 0; i < len(path)-2; i++ {
			for j := i + 2; j < len(path)-1; j++ {
				a, b := path[i], path[i+1]
				d, e := path[j], path[j+1]

				before := manhattan(a, b) + manhattan(d, e)
				after := manhattan(a, d) + manhattan(b, e)

				if after < before {
					reverse(path, i+1, j)
					improved = true
				}
			}
		}

		if !improved {
			break
		}
	}

	return path
}

// reverse reverses path[i:j+1] in place.
func reverse(path Path, i, j int) {
	for i < j {
		path[i], path[j] = path[j], path[i]
		i++
		j--
	}
}
