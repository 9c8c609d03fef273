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

import "github.com/jetsetilly/paintgadget/gamepad"

// Direction is one of the four cardinal directions a Move operation shifts
// the in-game cursor.
type Direction int

// The four cardinal directions, mapped onto hat-switch values by hatFor.
const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func hatFor(d Direction) gamepad.HatDirection {
	switch d {
	case DirUp:
		return gamepad.HatNorth
	case DirDown:
		return gamepad.HatSouth
	case DirLeft:
		return gamepad.HatWest
	case DirRight:
		return gamepad.HatEast
	}
	return gamepad.HatNeutral
}

// Kind discriminates the three Operation variants named in the data model:
// Move, Draw, and the PenUp/PenDown toggle used by drag-paint strategies.
// Operation variants are exposed through a tagged discriminator rather
// than subclassing, per the design's planner-variant note generalised to
// this type.
type Kind int

const (
	KindMove Kind = iota
	KindDraw
	KindPenToggle
)

// Operation is one discrete unit the Executor expands a Path into.
type Operation struct {
	Kind      Kind
	Direction Direction // valid when Kind == KindMove
	PenDown   bool      // valid when Kind == KindPenToggle
}

func move(d Direction) Operation  { return Operation{Kind: KindMove, Direction: d} }
func draw() Operation             { return Operation{Kind: KindDraw} }
func penToggle(down bool) Operation {
	return Operation{Kind: KindPenToggle, PenDown: down}
}
