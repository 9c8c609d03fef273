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

// Package wsobserver serves /ws/logs: every connected client gets its own
// session.Observer, fanned out over a bounded per-client send channel so
// one slow browser tab can never stall another client or the
// session.Supervisor itself. Hub.BroadcastLog sends a log message to every
// client; the process logger does not call it, so process log entries are
// not forwarded to clients.
package wsobserver
