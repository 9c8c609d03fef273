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

import (
	"sync/atomic"

	"github.com/jetsetilly/paintgadget/errors"
)

// TimingMin and TimingMax bound every field of a Timing triple, in
// milliseconds.
const (
	TimingMin = 1
	TimingMax = 10000
)

// DefaultRepeats is the repeat count a session starts with unless the
// caller specifies otherwise.
const DefaultRepeats = 1

// Timing is the (press_ms, release_ms, wait_ms) triple.
type Timing struct {
	PressMS   int
	ReleaseMS int
	WaitMS    int
}

// Validate returns an InvalidInput error naming the first out-of-range
// field, checked in the order press_ms, release_ms, wait_ms, or nil if
// every field is within [TimingMin, TimingMax].
func (t Timing) Validate() error {
	fields := [...]struct {
		name string
		v    int
	}{
		{"press_ms", t.PressMS},
		{"release_ms", t.ReleaseMS},
		{"wait_ms", t.WaitMS},
	}
	for _, f := range fields {
		if f.v < TimingMin || f.v > TimingMax {
			return errors.Errorf(errors.InvalidTiming, f.name, f.v)
		}
	}
	return nil
}

// Live holds the current timing triple and repeat count for one session,
// each field published independently through an atomic. Readers observe
// each field independently; the design tolerates slight cross-field skew
// because every operation boundary re-snapshots all four values together.
type Live struct {
	pressMS   atomic.Int64
	releaseMS atomic.Int64
	waitMS    atomic.Int64
	repeats   atomic.Int32
}

// NewLive returns a Live initialised with timing and repeats. It does not
// validate them - validation happens at the API boundary before a session
// starts.
func NewLive(timing Timing, repeats int) *Live {
	l := &Live{}
	l.Set(timing)
	l.SetRepeats(repeats)
	return l
}

// Snapshot returns the current timing triple and repeat count as of the
// moment of the call. Each of the four underlying values is loaded
// independently, so the result may combine a just-updated field with three
// slightly older ones; this is deliberate (design §9) and harmless because
// the Executor only ever snapshots at an operation boundary.
func (l *Live) Snapshot() (Timing, int) {
	t := Timing{
		PressMS:   int(l.pressMS.Load()),
		ReleaseMS: int(l.releaseMS.Load()),
		WaitMS:    int(l.waitMS.Load()),
	}
	return t, int(l.repeats.Load())
}

// Set publishes a new timing triple. No lock is held.
func (l *Live) Set(t Timing) {
	l.pressMS.Store(int64(t.PressMS))
	l.releaseMS.Store(int64(t.ReleaseMS))
	l.waitMS.Store(int64(t.WaitMS))
}

// SetRepeats publishes a new repeat count. No lock is held.
func (l *Live) SetRepeats(n int) {
	l.repeats.Store(int32(n))
}
