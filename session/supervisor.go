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

package session

import (
	"sync"

	"github.com/jetsetilly/paintgadget/artwork"
	"github.com/jetsetilly/paintgadget/errors"
	"github.com/jetsetilly/paintgadget/gamepad"
	"github.com/jetsetilly/paintgadget/paintengine"
	"github.com/jetsetilly/paintgadget/planner"
	"github.com/jetsetilly/paintgadget/tuning"
)

// Request is everything needed to start a new session.
type Request struct {
	Artwork   *artwork.Artwork
	Strategy  planner.Strategy
	Timing    tuning.Timing
	Repeats   int
	SkipInit  bool
}

// Supervisor owns the single active paint/calibration session slot. Its
// presence is the session's existence - there is no package-level
// singleton, just one owned field guarded by a mutex.
type Supervisor struct {
	mu    sync.Mutex
	state State

	live    *tuning.Live
	control *paintengine.Control

	observers map[*Observer]struct{}
	dropped   map[*Observer]*uint64

	ep       Endpoint
	registry *artwork.Registry
	artID    artwork.ID
}

// Endpoint is the subset of hid.Endpoint the Supervisor needs in order to
// hand a fresh Encoder/Endpoint pair to each new Executor.
type Endpoint = paintengine.Endpoint

// NewSupervisor returns an idle Supervisor that will drive ep. registry is
// used to delete an artwork once its session completes - per spec.md's
// data model, an artwork's lifetime is explicit deletion or the paint
// session that used it finishing, whichever comes first. registry may be
// nil, in which case artworks simply outlive every session (used by tests
// that build an artwork.Artwork directly rather than through a Registry).
func NewSupervisor(ep Endpoint, registry *artwork.Registry) *Supervisor {
	return &Supervisor{
		state:     Idle,
		observers: make(map[*Observer]struct{}),
		dropped:   make(map[*Observer]*uint64),
		ep:        ep,
		registry:  registry,
	}
}

// State returns the Supervisor's current state.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start plans req's artwork under its strategy and spawns an Executor.
// It rejects with Busy if a session already exists.
func (s *Supervisor) Start(req Request) error {
	if err := req.Timing.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.state != Idle {
		s.mu.Unlock()
		return errors.Errorf(errors.SessionBusy)
	}

	path, err := planner.PlanPath(req.Strategy, req.Artwork.Canvas)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.live = tuning.NewLive(req.Timing, req.Repeats)
	s.control = paintengine.NewControl()
	s.state = Running
	s.artID = req.Artwork.ID
	s.mu.Unlock()

	exec := paintengine.NewExecutor(gamepad.NewEncoder(), s.ep, s.live, s.control)

	go func() {
		exec.Run(path, req.SkipInit, s)
	}()

	return nil
}

// Pause sets the pause flag observed by the running Executor. Pausing an
// idle or already-paused Supervisor is a harmless no-op.
func (s *Supervisor) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Running {
		return
	}
	s.state = Paused
	s.control.Pause()
}

// Resume clears the pause flag. Resuming a Supervisor that is not paused
// is a harmless no-op.
func (s *Supervisor) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Paused {
		return
	}
	s.state = Running
	s.control.Resume()
}

// Stop requests that the running Executor wind down. Stopping an idle
// Supervisor, or one already stopping, is a harmless no-op - this makes
// two stops in succession observationally identical to one.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Running && s.state != Paused {
		return
	}
	s.state = Stopping
	s.control.Stop()
}

// UpdateTiming publishes a new timing triple for the active session. It
// is a no-op if no session is active.
func (s *Supervisor) UpdateTiming(t tuning.Timing) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live == nil {
		return nil
	}
	s.live.Set(t)
	return nil
}

// UpdateRepeats publishes a new repeat count for the active session. It is
// a no-op if no session is active.
func (s *Supervisor) UpdateRepeats(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live == nil {
		return
	}
	s.live.SetRepeats(n)
}

// Subscribe attaches a new Observer and returns it. Call Unsubscribe when
// the caller is done to stop the drop-count bookkeeping from growing
// without bound.
func (s *Supervisor) Subscribe() *Observer {
	o := newObserver()

	s.mu.Lock()
	s.observers[o] = struct{}{}
	var n uint64
	s.dropped[o] = &n
	s.mu.Unlock()

	return o
}

// Unsubscribe detaches o.
func (s *Supervisor) Unsubscribe(o *Observer) {
	s.mu.Lock()
	delete(s.observers, o)
	delete(s.dropped, o)
	s.mu.Unlock()
}

// Dropped returns the number of Progress events dropped for o because its
// queue was full.
func (s *Supervisor) Dropped(o *Observer) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.dropped[o]; ok {
		return *n
	}
	return 0
}

// Progress implements paintengine.Reporter: fan out to every observer,
// dropping rather than blocking when a queue is full.
func (s *Supervisor) Progress(p paintengine.Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for o := range s.observers {
		select {
		case o.Progress <- p:
		default:
			*s.dropped[o]++
		}
	}
}

// Terminal implements paintengine.Reporter: publish the terminal event to
// every observer, delete the artwork the finished session painted (spec's
// ephemeral-by-default rule - a session's end is the other half of an
// artwork's deletion trigger, alongside explicit deletion), and return the
// Supervisor to Idle.
func (s *Supervisor) Terminal(term paintengine.Terminal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for o := range s.observers {
		select {
		case o.Terminal <- term:
		default:
		}
	}

	if s.registry != nil {
		s.registry.Delete(s.artID)
	}

	s.state = Idle
	s.live = nil
	s.control = nil
	s.artID = ""
}
