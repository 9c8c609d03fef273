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
	"sync"
	"sync/atomic"
)

// Control carries the pause/stop flags the Supervisor sets and the
// Executor observes at operation boundaries only - never mid-operation.
type Control struct {
	paused   atomic.Bool
	stopping atomic.Bool

	mu     sync.Mutex
	resume chan struct{}
}

// NewControl returns a Control in the running, unpaused state.
func NewControl() *Control {
	return &Control{resume: make(chan struct{})}
}

// Pause requests that the Executor block at the next boundary until
// Resume is called.
func (c *Control) Pause() {
	c.paused.Store(true)
}

// Resume releases an Executor blocked by a prior Pause. Calling Resume
// when not paused is a harmless no-op.
func (c *Control) Resume() {
	if !c.paused.CompareAndSwap(true, false) {
		return
	}
	c.mu.Lock()
	close(c.resume)
	c.resume = make(chan struct{})
	c.mu.Unlock()
}

// Stop requests that the Executor release all buttons, neutralise the
// D-pad, and return at the next boundary. If the Executor is currently
// blocked in a pause wait, Stop wakes it so the stop is observed
// immediately rather than only on the next Resume.
func (c *Control) Stop() {
	c.stopping.Store(true)

	c.mu.Lock()
	select {
	case <-c.resume:
		// already closed
	default:
		close(c.resume)
		c.resume = make(chan struct{})
	}
	c.mu.Unlock()
}

// IsStopping reports whether Stop has been requested.
func (c *Control) IsStopping() bool {
	return c.stopping.Load()
}

// waitIfPaused blocks the calling goroutine while paused is set, waking
// when Resume is called or stop is requested.
func (c *Control) waitIfPaused() {
	for {
		c.mu.Lock()
		if !c.paused.Load() || c.stopping.Load() {
			c.mu.Unlock()
			return
		}
		ch := c.resume
		c.mu.Unlock()
		<-ch
	}
}
