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

package tuning

// SpeedMin and SpeedMax bound the user-facing speed slider. Lower is
// slower (larger holds); higher is faster (shorter holds).
const (
	SpeedMin = 50
	SpeedMax = 1000
)

// speedTimingMin and speedTimingMax are the press/release bounds the
// slider maps onto; they sit well inside [TimingMin, TimingMax] so a
// slider-derived Timing always passes Validate.
const (
	speedTimingMin = 20
	speedTimingMax = 200
)

// SpeedToTiming maps a slider value in [SpeedMin, SpeedMax] onto a Timing
// triple. The mapping is the one explicit, documented resolution of the
// design's first open question: it is monotonic and piecewise-linear,
// clamping out-of-range input rather than erroring, since the slider is a
// UI convenience and never the sole source of a session's timing.
//
// press_ms and release_ms both fall linearly from speedTimingMax at
// SpeedMin to speedTimingMin at SpeedMax - a slower slider setting means a
// longer hold. wait_ms is held at a smaller fixed fraction (40%) of
// press_ms so the settle pause scales with the rest of the triple instead
// of being an independent third slider.
func SpeedToTiming(speed int) Timing {
	if speed < SpeedMin {
		speed = SpeedMin
	} else if speed > SpeedMax {
		speed = SpeedMax
	}

	span := SpeedMax - SpeedMin
	frac := float64(speed-SpeedMin) / float64(span)

	ms := speedTimingMax - frac*float64(speedTimingMax-speedTimingMin)

	press := int(ms)
	release := int(ms)
	wait := int(ms * 0.4)

	if wait < TimingMin {
		wait = TimingMin
	}

	return Timing{PressMS: press, ReleaseMS: release, WaitMS: wait}
}
