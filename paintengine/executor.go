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

import (
	"time"

	"github.com/jetsetilly/paintgadget/errors"
	"github.com/jetsetilly/paintgadget/gamepad"
	"github.com/jetsetilly/paintgadget/logger"
	"github.com/jetsetilly/paintgadget/planner"
	"github.com/jetsetilly/paintgadget/tuning"
)

// Endpoint is the subset of hid.Endpoint the Executor depends on. Defined
// here, at the consumer, so tests can drive the Executor against an
// in-memory fake instead of a real character device.
type Endpoint interface {
	Write(report []byte) error
	Reacquire() error
}

// sleep is scheduled with a timer rather than a busy loop. time.Sleep may
// wake late but never early, so a press or release hold can run long but
// is never shorter than its nominal duration. A late wake-up is not
// logged.
var sleep = time.Sleep

// Executor walks a planner.Path, translating each Move and Draw into a
// timed button sequence written through enc and ep. It is driven from a
// single goroutine and suspends only at scheduled sleeps, at Endpoint
// writes, and at an explicit pause wait.
type Executor struct {
	enc *gamepad.Encoder
	ep  Endpoint
	live *tuning.Live

	control *Control
}

// NewExecutor returns an Executor that drives enc and ep, reading its
// timing triple and repeat count from live and observing control at every
// operation boundary.
func NewExecutor(enc *gamepad.Encoder, ep Endpoint, live *tuning.Live, control *Control) *Executor {
	return &Executor{enc: enc, ep: ep, live: live, control: control}
}

// Run walks path to completion, emitting Progress and a final Terminal
// event to reporter. skipInit omits the initialisation handshake, for
// calibration testing. It returns once the path is exhausted, a stop was
// honoured, or the reconnect retry budget was exhausted.
func (e *Executor) Run(path planner.Path, skipInit bool, reporter Reporter) {
	if err := e.writeSafeState(); err != nil {
		reporter.Terminal(Terminal{Outcome: OutcomeError, Message: err.Error()})
		return
	}

	if !skipInit {
		if outcome, ok := e.runOperations(handshake, nil, reporter); !ok {
			reporter.Terminal(outcome)
			return
		}
	}

	total := len(path)
	progress := Progress{TotalDots: total}

	exp := newExpander(path)
	for {
		op, more := exp.next()
		if !more {
			break
		}

		if outcome, ok := e.runOneWithRetry(op, &progress, reporter); !ok {
			reporter.Terminal(outcome)
			return
		}

		if e.control.IsStopping() {
			e.finishStop()
			reporter.Terminal(Terminal{Outcome: OutcomeStopped})
			return
		}
	}

	reporter.Terminal(Terminal{Outcome: OutcomeCompleted})
}

// runOperations executes a fixed sequence of operations (the handshake)
// with no progress accounting, returning false if a terminal condition
// was reached.
func (e *Executor) runOperations(ops []Operation, progress *Progress, reporter Reporter) (Terminal, bool) {
	for _, op := range ops {
		if outcome, ok := e.runOneWithRetry(op, progress, reporter); !ok {
			return outcome, false
		}
		if e.control.IsStopping() {
			e.finishStop()
			return Terminal{Outcome: OutcomeStopped}, false
		}
	}
	return Terminal{}, true
}

// runOneWithRetry executes a single operation, retrying through a
// Disconnected error with exponential backoff per the design's section 7
// propagation rule, up to MaxReconnectAttempts.
func (e *Executor) runOneWithRetry(op Operation, progress *Progress, reporter Reporter) (Terminal, bool) {
	for attempt := 1; ; attempt++ {
		e.control.waitIfPaused()
		if e.control.IsStopping() {
			e.finishStop()
			return Terminal{Outcome: OutcomeStopped}, false
		}

		err := e.runOne(op, progress, reporter)
		if err == nil {
			return Terminal{}, true
		}

		if !errors.Has(err, errors.HostDisconnected) {
			return Terminal{Outcome: OutcomeError, Message: err.Error()}, false
		}

		if attempt >= MaxReconnectAttempts {
			return Terminal{Outcome: OutcomeError, Message: errors.Errorf(errors.RetryBudget, attempt).Error()}, false
		}

		sleep(backoff(attempt))
		if err := e.ep.Reacquire(); err != nil && !errors.Has(err, errors.NotBound) {
			return Terminal{Outcome: OutcomeError, Message: err.Error()}, false
		}
	}
}

// runOne executes one operation and, if progress is non-nil, advances and
// reports it.
func (e *Executor) runOne(op Operation, progress *Progress, reporter Reporter) error {
	timing, repeats := e.live.Snapshot()

	switch op.Kind {
	case KindMove:
		if err := e.move(op.Direction, timing); err != nil {
			return err
		}
		if progress != nil {
			progress.DPadOps++
			progress.CursorX, progress.CursorY = advance(progress.CursorX, progress.CursorY, op.Direction)
			reporter.Progress(*progress)
		}
	case KindDraw:
		for r := 0; r < repeats; r++ {
			timing, _ = e.live.Snapshot()
			if err := e.drawOnce(timing); err != nil {
				return err
			}
		}
		if progress != nil {
			progress.CurrentDot++
			progress.AButtonPresses += repeats
			progress.IsPaint = true
			reporter.Progress(*progress)
		}
	case KindPenToggle:
		if err := e.penToggle(op.PenDown, timing); err != nil {
			return err
		}
	}

	return nil
}

func advance(x, y int, d Direction) (int, int) {
	switch d {
	case DirUp:
		return x, y - 1
	case DirDown:
		return x, y + 1
	case DirLeft:
		return x - 1, y
	case DirRight:
		return x + 1, y
	}
	return x, y
}

func (e *Executor) move(d Direction, t tuning.Timing) error {
	e.enc.SetDPad(hatFor(d))
	if err := e.write(); err != nil {
		return err
	}
	sleep(time.Duration(t.PressMS) * time.Millisecond)

	e.enc.SetDPad(gamepad.HatNeutral)
	if err := e.write(); err != nil {
		return err
	}
	sleep(time.Duration(t.ReleaseMS) * time.Millisecond)

	return nil
}

func (e *Executor) drawOnce(t tuning.Timing) error {
	e.enc.Press(gamepad.ButtonA)
	if err := e.write(); err != nil {
		return err
	}
	sleep(time.Duration(t.PressMS) * time.Millisecond)

	e.enc.Release(gamepad.ButtonA)
	if err := e.write(); err != nil {
		return err
	}
	sleep(time.Duration(t.ReleaseMS) * time.Millisecond)
	sleep(time.Duration(t.WaitMS) * time.Millisecond)

	return nil
}

// penModifier is the button combination this deployment's console treats
// as a drag-paint toggle.
const penModifier = gamepad.ButtonL | gamepad.ButtonR

func (e *Executor) penToggle(down bool, t tuning.Timing) error {
	if down {
		e.enc.Press(penModifier)
	} else {
		e.enc.Release(penModifier)
	}
	if err := e.write(); err != nil {
		return err
	}
	sleep(time.Duration(t.PressMS) * time.Millisecond)
	sleep(time.Duration(t.ReleaseMS) * time.Millisecond)

	return nil
}

// finishStop emits one final safe-state report: all buttons released,
// D-pad neutral, sticks centred. The caller is responsible for reporting
// the resulting Terminal event exactly once.
func (e *Executor) finishStop() {
	if err := e.writeSafeState(); err != nil {
		logger.Logf("paintengine", "failed to write final safe-state report: %v", err)
	}
}

func (e *Executor) writeSafeState() error {
	e.enc.Release(gamepad.ButtonA)
	e.enc.Release(penModifier)
	e.enc.SetDPad(gamepad.HatNeutral)
	e.enc.SetStick(gamepad.StickLeft, gamepad.StickCentre, gamepad.StickCentre)
	e.enc.SetStick(gamepad.StickRight, gamepad.StickCentre, gamepad.StickCentre)
	return e.write()
}

func (e *Executor) write() error {
	return e.ep.Write(e.enc.Serialise())
}
