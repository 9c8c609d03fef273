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

import "github.com/jetsetilly/paintgadget/paintengine"

// Progress, Terminal and Outcome are the Executor's own event shapes -
// aliased here because the Supervisor is the thing client code actually
// subscribes to, and importing paintengine just to name its event types
// would be an odd thing to ask of an HTTP handler.
type (
	Progress = paintengine.Progress
	Terminal = paintengine.Terminal
	Outcome  = paintengine.Outcome
)

// The possible terminal outcomes of a session, re-exported from
// paintengine for the same reason as the type aliases above.
const (
	OutcomeCompleted = paintengine.OutcomeCompleted
	OutcomeStopped   = paintengine.OutcomeStopped
	OutcomeError     = paintengine.OutcomeError
)

// ObserverQueueCapacity is the bounded channel size offered to every
// observer. A slow observer is dropped from rather than allowed to stall
// the Executor.
const ObserverQueueCapacity = 64

// Observer receives Progress events and a single Terminal event marking
// the end of a session, each over its own bounded channel.
type Observer struct {
	Progress chan Progress
	Terminal chan Terminal
}

func newObserver() *Observer {
	return &Observer{
		Progress: make(chan Progress, ObserverQueueCapacity),
		Terminal: make(chan Terminal, 1),
	}
}
