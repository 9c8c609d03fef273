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

// homeUpSteps and homeLeftSteps anchor the in-game cursor at (0,0) from
// this deployment's known starting position: centred on the drawing
// surface.
const (
	homeUpSteps   = 60
	homeLeftSteps = 160
)

// handshake is the fixed operation sequence that anchors the in-game
// cursor at a known (0,0) before the first Path operation. It is a
// deployment constant, not executable logic; Run skips the whole table
// when skip-initialisation is requested.
var handshake = buildHandshake()

func buildHandshake() []Operation {
	ops := make([]Operation, 0, homeUpSteps+homeLeftSteps)
	for i := 0; i < homeUpSteps; i++ {
		ops = append(ops, move(DirUp))
	}
	for i := 0; i < homeLeftSteps; i++ {
		ops = append(ops, move(DirLeft))
	}
	return ops
}
