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

// Package planner converts a Canvas into a Path under one of four named
// strategies, and estimates the operation count and wall-clock duration of
// painting that Path under a given timing triple and repeat count. Every
// strategy is a pure function of its Canvas - planning has no failure
// modes of its own and performs no I/O.
package planner

import "github.com/jetsetilly/paintgadget/artwork"

// Point is one grid coordinate.
type Point struct {
	X, Y int
}

// Path is an ordered sequence of on-cell coordinates to visit.
type Path []Point

// Strategy names one of the four traversal algorithms.
type Strategy string

// The four strategies this package implements.
const (
	StrategyRaster            Strategy = "raster"
	StrategyZigZag            Strategy = "zigzag"
	StrategyNearestNeighbour  Strategy = "nearest_neighbour"
	StrategyGreedyTwoOpt      Strategy = "greedy_2opt"
)

// Strategies lists every strategy this package supports, in a stable
// order suitable for the /api/artworks/{id}/strategies response.
var Strategies = []Strategy{
	StrategyRaster,
	StrategyZigZag,
	StrategyNearestNeighbour,
	StrategyGreedyTwoOpt,
}

// Plan is the pure function type every strategy implements: Canvas in,
// Path out.
type Plan func(*artwork.Canvas) Path
