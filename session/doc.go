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

// Package session owns the singleton paint/calibration session. At most
// one exists at a time; its presence is the session's existence, held as
// an owned slot inside the Supervisor rather than expressed as a
// package-level singleton pattern. The state names and ordering mirror
// the teacher's own emulation-state enumeration in debugger/govern.
package session

// State is the lifecycle of the one session the Supervisor may own.
type State int

// The four states a session passes through.
const (
	Idle State = iota
	Running
	Paused
	Stopping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopping:
		return "stopping"
	}
	return "unknown"
}
