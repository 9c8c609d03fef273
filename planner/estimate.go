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

import "github.com/jetsetilly/paintgadget/tuning"

// Estimate summarises the cost of painting a Path: the number of Draw and
// Move operations it will expand into, and the estimated wall-clock
// duration under a given timing triple and repeat count.
type Estimate struct {
	DrawOperations int
	MoveOperations int
	SecondsTotal   float64
}

// EstimateFor computes an Estimate for path under timing and repeats. The
// repeat factor multiplies the whole Draw cycle including wait_ms, per the
// S3 worked example. The Move term uses press+release only - a Move never
// incurs the settle wait that follows a Draw, per the S2/S3 worked
// examples, which are authoritative over the estimation formula's prose
// statement of the Move term.
//
//	duration = A*(press+release+wait)/1000*R + D*(press+release)/1000
//
// where A is the number of Draw operations and D is the total Manhattan
// path length (the number of Move operations).
func EstimateFor(path Path, timing tuning.Timing, repeats int) Estimate {
	a := len(path)
	d := ManhattanLength(path)

	drawCycle := float64(timing.PressMS+timing.ReleaseMS+timing.WaitMS) / 1000.0
	moveCycle := float64(timing.PressMS+timing.ReleaseMS) / 1000.0

	seconds := drawCycle*float64(a)*float64(repeats) + moveCycle*float64(d)

	return Estimate{
		DrawOperations: a,
		MoveOperations: d,
		SecondsTotal:   seconds,
	}
}
