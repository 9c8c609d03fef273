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

package tuning_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/paintgadget/test"
	"github.com/jetsetilly/paintgadget/tuning"
)

func TestSnapshotRoundTrip(t *testing.T) {
	l := tuning.NewLive(tuning.Timing{PressMS: 100, ReleaseMS: 60, WaitMS: 40}, 3)

	timing, repeats := l.Snapshot()
	test.ExpectEquality(t, timing.PressMS, 100)
	test.ExpectEquality(t, timing.ReleaseMS, 60)
	test.ExpectEquality(t, timing.WaitMS, 40)
	test.ExpectEquality(t, repeats, 3)
}

func TestSetIsVisibleImmediately(t *testing.T) {
	l := tuning.NewLive(tuning.Timing{PressMS: 1, ReleaseMS: 1, WaitMS: 1}, 1)

	l.Set(tuning.Timing{PressMS: 200, ReleaseMS: 150, WaitMS: 90})
	l.SetRepeats(5)

	timing, repeats := l.Snapshot()
	test.ExpectEquality(t, timing.PressMS, 200)
	test.ExpectEquality(t, timing.ReleaseMS, 150)
	test.ExpectEquality(t, timing.WaitMS, 90)
	test.ExpectEquality(t, repeats, 5)
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	test.ExpectSuccess(t, tuning.Timing{PressMS: 1, ReleaseMS: 1, WaitMS: 1}.Validate())
	test.ExpectSuccess(t, tuning.Timing{PressMS: 10000, ReleaseMS: 10000, WaitMS: 10000}.Validate())

	test.ExpectFailure(t, tuning.Timing{PressMS: 0, ReleaseMS: 1, WaitMS: 1}.Validate())
	test.ExpectFailure(t, tuning.Timing{PressMS: 1, ReleaseMS: 10001, WaitMS: 1}.Validate())
}

func TestValidateNamesFirstFieldInDeclaredOrderWhenSeveralAreInvalid(t *testing.T) {
	err := tuning.Timing{PressMS: 0, ReleaseMS: 0, WaitMS: 0}.Validate()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, strings.Contains(err.Error(), "press_ms"), true)

	err = tuning.Timing{PressMS: 1, ReleaseMS: 0, WaitMS: 0}.Validate()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, strings.Contains(err.Error(), "release_ms"), true)
}

func TestSpeedToTimingMonotonic(t *testing.T) {
	slow := tuning.SpeedToTiming(tuning.SpeedMin)
	fast := tuning.SpeedToTiming(tuning.SpeedMax)

	if slow.PressMS <= fast.PressMS {
		t.Errorf("expected slow press_ms (%d) > fast press_ms (%d)", slow.PressMS, fast.PressMS)
	}

	test.ExpectSuccess(t, slow.Validate())
	test.ExpectSuccess(t, fast.Validate())
}

func TestSpeedToTimingClamps(t *testing.T) {
	test.ExpectEquality(t, tuning.SpeedToTiming(0), tuning.SpeedToTiming(tuning.SpeedMin))
	test.ExpectEquality(t, tuning.SpeedToTiming(999999), tuning.SpeedToTiming(tuning.SpeedMax))
}
