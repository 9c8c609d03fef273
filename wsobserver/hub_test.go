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

package wsobserver

import (
	"encoding/json"
	"testing"

	"github.com/jetsetilly/paintgadget/session"
	"github.com/jetsetilly/paintgadget/test"
)

func TestBroadcastLogReachesAllClients(t *testing.T) {
	h := NewHub()
	a := newClient()
	b := newClient()
	h.register(a)
	h.register(b)

	h.BroadcastLog("hid", "endpoint opened")

	for _, c := range []*client{a, b} {
		data := <-c.send
		var msg logMsg
		test.ExpectSuccess(t, json.Unmarshal(data, &msg))
		test.ExpectEquality(t, msg.Type, "log")
		test.ExpectEquality(t, msg.Tag, "hid")
	}
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	h := NewHub()
	c := newClient()
	h.register(c)
	h.unregister(c)

	_, ok := <-c.send
	test.ExpectEquality(t, ok, false)
}

func TestBroadcastDropsRatherThanBlocksFullQueue(t *testing.T) {
	h := NewHub()
	c := newClient()
	h.register(c)

	for i := 0; i < sendQueueCapacity+10; i++ {
		h.BroadcastLog("tag", "detail")
	}

	test.ExpectEquality(t, len(c.send), sendQueueCapacity)
}

func TestProgressToMsgFieldMapping(t *testing.T) {
	p := session.Progress{
		CurrentDot: 3, TotalDots: 10, CursorX: 4, CursorY: 5,
		DPadOps: 7, AButtonPresses: 3, IsPaint: true,
	}
	msg := progressToMsg(p)
	test.ExpectEquality(t, msg.Type, "progress")
	test.ExpectEquality(t, msg.Current, 3)
	test.ExpectEquality(t, msg.Total, 10)
	test.ExpectEquality(t, msg.X, 4)
	test.ExpectEquality(t, msg.Y, 5)
	test.ExpectEquality(t, msg.DPadOperations, 7)
	test.ExpectEquality(t, msg.AButtonPresses, 3)
	test.ExpectEquality(t, msg.IsPaint, true)
}

func TestTerminalToMsgStatusMapping(t *testing.T) {
	cases := []struct {
		outcome session.Outcome
		status  string
	}{
		{session.OutcomeCompleted, "ok"},
		{session.OutcomeStopped, "stopped"},
		{session.OutcomeError, "error"},
	}
	for _, c := range cases {
		msg := terminalToMsg(session.Terminal{Outcome: c.outcome, Message: "x"})
		test.ExpectEquality(t, msg.Status, c.status)
		test.ExpectEquality(t, msg.Type, "calibration_complete")
	}
}
