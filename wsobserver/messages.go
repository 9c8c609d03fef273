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

import "github.com/jetsetilly/paintgadget/session"

// logMsg carries a single process log entry to every client.
type logMsg struct {
	Type   string `json:"type"` // always "log"
	Tag    string `json:"tag"`
	Detail string `json:"detail"`
}

// progressMsg mirrors session.Progress for the /ws/logs wire format.
type progressMsg struct {
	Type           string `json:"type"` // always "progress"
	Current        int    `json:"current"`
	Total          int    `json:"total"`
	X              int    `json:"x"`
	Y              int    `json:"y"`
	DPadOperations int    `json:"dpad_operations"`
	AButtonPresses int    `json:"a_button_presses"`
	IsPaint        bool   `json:"is_paint"`
}

// calibrationCompleteMsg reports the terminal outcome of any session -
// painting or calibration alike, per the design's single terminal-event
// shape.
type calibrationCompleteMsg struct {
	Type    string `json:"type"` // always "calibration_complete"
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func progressToMsg(p session.Progress) progressMsg {
	return progressMsg{
		Type:           "progress",
		Current:        p.CurrentDot,
		Total:          p.TotalDots,
		X:              p.CursorX,
		Y:              p.CursorY,
		DPadOperations: p.DPadOps,
		AButtonPresses: p.AButtonPresses,
		IsPaint:        p.IsPaint,
	}
}

func terminalStatus(o session.Outcome) string {
	switch o {
	case session.OutcomeCompleted:
		return "ok"
	case session.OutcomeStopped:
		return "stopped"
	case session.OutcomeError:
		return "error"
	}
	return "unknown"
}

func terminalToMsg(t session.Terminal) calibrationCompleteMsg {
	return calibrationCompleteMsg{
		Type:    "calibration_complete",
		Status:  terminalStatus(t.Outcome),
		Message: t.Message,
	}
}
