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

import "time"

// Reconnect backoff bounds: start at 100ms, double each attempt, cap at
// 2s. MaxReconnectAttempts is this deployment's documented retry budget
// (design section 7 leaves the attempt count to be fixed per deployment).
const (
	reconnectInitial = 100 * time.Millisecond
	reconnectCap     = 2 * time.Second

	MaxReconnectAttempts = 8
)

// backoff returns the delay before reconnect attempt n (1-indexed),
// doubling from reconnectInitial and clamping at reconnectCap.
func backoff(attempt int) time.Duration {
	d := reconnectInitial
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= reconnectCap {
			return reconnectCap
		}
	}
	return d
}
