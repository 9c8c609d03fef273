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

package artwork_test

import (
	"testing"

	"github.com/jetsetilly/paintgadget/artwork"
	"github.com/jetsetilly/paintgadget/errors"
	"github.com/jetsetilly/paintgadget/test"
)

func TestNewCanvasRejectsWrongDimensions(t *testing.T) {
	_, err := artwork.NewCanvas(321, 120, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, errors.InvalidDimensions))
}

func TestNewCanvasRejectsOutOfBoundsDot(t *testing.T) {
	_, err := artwork.NewCanvas(artwork.Width, artwork.Height, []artwork.Dot{{X: 400, Y: 0}})
	test.ExpectFailure(t, err)
}

func TestEmptyCanvas(t *testing.T) {
	c, err := artwork.NewCanvas(artwork.Width, artwork.Height, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Count(), 0)
	test.ExpectEquality(t, len(c.OnCells()), 0)
}

func TestOnCellsRowMajorOrder(t *testing.T) {
	dots := []artwork.Dot{{X: 5, Y: 2}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	c, err := artwork.NewCanvas(artwork.Width, artwork.Height, dots)
	test.ExpectSuccess(t, err)

	got := c.OnCells()
	want := []artwork.Dot{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 5, Y: 2}}
	test.ExpectEquality(t, got, want)
}

func TestOnReportsOffForUnsetAndOutOfBounds(t *testing.T) {
	c, err := artwork.NewCanvas(artwork.Width, artwork.Height, []artwork.Dot{{X: 3, Y: 3}})
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, c.On(3, 3))
	test.ExpectFailure(t, c.On(4, 4))
	test.ExpectFailure(t, c.On(-1, 0))
	test.ExpectFailure(t, c.On(artwork.Width, 0))
}
