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

import (
	"github.com/jetsetilly/paintgadget/artwork"
	"github.com/jetsetilly/paintgadget/errors"
)

var plans = map[Strategy]Plan{
	StrategyRaster:           Raster,
	StrategyZigZag:           ZigZag,
	StrategyNearestNeighbour: NearestNeighbour,
	StrategyGreedyTwoOpt:     GreedyTwoOpt,
}

// PlanPath runs the named strategy over c, returning UnknownStrategy if
// strategy is not one of the Strategies this package declares.
func PlanPath(strategy Strategy, c *artwork.Canvas) (Path, error) {
	fn, ok := plans[strategy]
	if !ok {
		return nil, errors.Errorf(errors.UnknownStrategy, string(strategy))
	}
	return fn(c), nil
}

// ManhattanLength returns the total Manhattan distance travelled visiting
// path in order, starting from the anchor (0,0) - the origin the Executor
// sits at after its initialisation handshake.
func ManhattanLength(path Path) int {
	if len(path) == 0 {
		return 0
	}

	total := 0
	current := Point{0, 0}
	for _, p := range path {
		total += manhattan(current, p)
		current = p
	}
	return total
}
