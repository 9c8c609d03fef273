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

package session_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/paintgadget/artwork"
	"github.com/jetsetilly/paintgadget/errors"
	"github.com/jetsetilly/paintgadget/planner"
	"github.com/jetsetilly/paintgadget/session"
	"github.com/jetsetilly/paintgadget/test"
	"github.com/jetsetilly/paintgadget/tuning"
)

// fakeEndpoint is a no-op HID endpoint - session tests only care about the
// state machine and event fan-out, not the wire bytes.
type fakeEndpoint struct{}

func (fakeEndpoint) Write(report []byte) error { return nil }
func (fakeEndpoint) Reacquire() error           { return nil }

func testArtwork(t *testing.T, dots ...artwork.Dot) *artwork.Artwork {
	t.Helper()
	c, err := artwork.NewCanvas(artwork.Width, artwork.Height, dots)
	test.ExpectSuccess(t, err)
	return &artwork.Artwork{ID: "a1", Name: "test", Canvas: c}
}

func waitForTerminal(t *testing.T, o *session.Observer) session.Terminal {
	t.Helper()
	select {
	case term := <-o.Terminal:
		return term
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for terminal event")
		return session.Terminal{}
	}
}

func TestStartRejectsInvalidTiming(t *testing.T) {
	s := session.NewSupervisor(fakeEndpoint{}, nil)
	art := testArtwork(t, artwork.Dot{X: 0, Y: 0})

	err := s.Start(session.Request{
		Artwork:  art,
		Strategy: planner.StrategyRaster,
		Timing:   tuning.Timing{PressMS: 0, ReleaseMS: 1, WaitMS: 1},
		Repeats:  1,
	})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, errors.InvalidTiming))
	test.ExpectEquality(t, s.State(), session.Idle)
}

func TestStartRunsToCompletion(t *testing.T) {
	s := session.NewSupervisor(fakeEndpoint{}, nil)
	art := testArtwork(t, artwork.Dot{X: 0, Y: 0})
	obs := s.Subscribe()

	err := s.Start(session.Request{
		Artwork:  art,
		Strategy: planner.StrategyRaster,
		Timing:   tuning.Timing{PressMS: 1, ReleaseMS: 1, WaitMS: 1},
		Repeats:  1,
		SkipInit: true,
	})
	test.ExpectSuccess(t, err)

	term := waitForTerminal(t, obs)
	test.ExpectEquality(t, term.Outcome, session.OutcomeCompleted)
	test.ExpectEquality(t, s.State(), session.Idle)
}

func TestStartWhileRunningIsBusy(t *testing.T) {
	s := session.NewSupervisor(fakeEndpoint{}, nil)
	art := testArtwork(t, artwork.Dot{X: 0, Y: 0}, artwork.Dot{X: 1, Y: 0}, artwork.Dot{X: 2, Y: 0})

	err := s.Start(session.Request{
		Artwork:  art,
		Strategy: planner.StrategyRaster,
		Timing:   tuning.Timing{PressMS: 50, ReleaseMS: 50, WaitMS: 50},
		Repeats:  1,
		SkipInit: true,
	})
	test.ExpectSuccess(t, err)

	err = s.Start(session.Request{
		Artwork:  art,
		Strategy: planner.StrategyRaster,
		Timing:   tuning.Timing{PressMS: 1, ReleaseMS: 1, WaitMS: 1},
		Repeats:  1,
		SkipInit: true,
	})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, errors.SessionBusy))

	s.Stop()
}

func TestStopIsIdempotent(t *testing.T) {
	s := session.NewSupervisor(fakeEndpoint{}, nil)
	art := testArtwork(t, artwork.Dot{X: 0, Y: 0}, artwork.Dot{X: 1, Y: 0})
	obs := s.Subscribe()

	err := s.Start(session.Request{
		Artwork:  art,
		Strategy: planner.StrategyRaster,
		Timing:   tuning.Timing{PressMS: 50, ReleaseMS: 50, WaitMS: 50},
		Repeats:  1,
		SkipInit: true,
	})
	test.ExpectSuccess(t, err)

	s.Stop()
	s.Stop()

	term := waitForTerminal(t, obs)
	test.ExpectEquality(t, term.Outcome, session.OutcomeStopped)
}

func TestCompletedSessionDeletesItsArtwork(t *testing.T) {
	reg := artwork.NewRegistry()
	c, err := artwork.NewCanvas(artwork.Width, artwork.Height, []artwork.Dot{{X: 0, Y: 0}})
	test.ExpectSuccess(t, err)
	id := reg.Add("ephemeral", c)
	art, err := reg.Get(id)
	test.ExpectSuccess(t, err)

	s := session.NewSupervisor(fakeEndpoint{}, reg)
	obs := s.Subscribe()

	err = s.Start(session.Request{
		Artwork:  art,
		Strategy: planner.StrategyRaster,
		Timing:   tuning.Timing{PressMS: 1, ReleaseMS: 1, WaitMS: 1},
		Repeats:  1,
		SkipInit: true,
	})
	test.ExpectSuccess(t, err)

	term := waitForTerminal(t, obs)
	test.ExpectEquality(t, term.Outcome, session.OutcomeCompleted)

	_, err = reg.Get(id)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, errors.UnknownArtwork))
}

func TestUpdateTimingAndRepeatsNoopWhenIdle(t *testing.T) {
	s := session.NewSupervisor(fakeEndpoint{}, nil)
	err := s.UpdateTiming(tuning.Timing{PressMS: 10, ReleaseMS: 10, WaitMS: 10})
	test.ExpectSuccess(t, err)
	s.UpdateRepeats(5)
}
