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

package paintengine

import "github.com/jetsetilly/paintgadget/planner"

// expander lazily turns a planner.Path into Move/Draw operations as the
// Executor advances, rather than materialising the whole expansion up
// front - a path of 38,400 cells could otherwise expand into hundreds of
// thousands of in-memory operations. Repeats are not expanded here; the
// Executor loops a Draw's press/release/wait cycle R times itself, so a
// live repeat-count change is visible the instant the current cell's
// cycles finish.
type expander struct {
	path   planner.Path
	cursor planner.Point

	pathIndex int
	pending   []Operation
}

func newExpander(path planner.Path) *expander {
	return &expander{path: path}
}

// next returns the next Operation and true, or a zero Operation and false
// once the path is exhausted.
func (e *expander) next() (Operation, bool) {
	for len(e.pending) == 0 {
		if e.pathIndex >= len(e.path) {
			return Operation{}, false
		}

		target := e.path[e.pathIndex]
		e.pathIndex++
		e.pending = movesTo(e.cursor, target)
		e.pending = append(e.pending, draw())
		e.cursor = target
	}

	op := e.pending[0]
	e.pending = e.pending[1:]
	return op, true
}

// movesTo returns one Move operation per unit of Manhattan distance
// between from and to: all the vertical steps, then all the horizontal
// steps.
func movesTo(from, to planner.Point) []Operation {
	var ops []Operation

	dy := to.Y - from.Y
	dir := DirDown
	if dy < 0 {
		dir = DirUp
		dy = -dy
	}
	for i := 0; i < dy; i++ {
		ops = append(ops, move(dir))
	}

	dx := to.X - from.X
	hdir := DirRight
	if dx < 0 {
		hdir = DirLeft
		dx = -dx
	}
	for i := 0; i < dx; i++ {
		ops = append(ops, move(hdir))
	}

	return ops
}
