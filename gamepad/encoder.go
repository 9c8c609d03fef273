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

package gamepad

import "github.com/jetsetilly/paintgadget/errors"

// Encoder accumulates button, hat and stick state between calls to
// Serialise. It is not safe for concurrent use - the Paint Executor owns a
// single Encoder and drives it from one goroutine, per the design's
// cooperative single-goroutine executor.
type Encoder struct {
	buttonsLow  uint16
	buttonsHigh uint16
	hat         HatDirection

	leftX, leftY   int
	rightX, rightY int

	// connection and battery bytes are fixed for the lifetime of the
	// encoder - they are written once here and copied into every report
	// unchanged.
	connection [connectionLength]byte
}

const connectionLength = ReportLength - offsetConnection

// NewEncoder returns an Encoder in its neutral state: no buttons pressed,
// hat centred, both sticks centred, and a constant connection-info/battery
// tail appropriate for a permanently wired, fully charged controller.
func NewEncoder() *Encoder {
	e := &Encoder{
		hat:    HatNeutral,
		leftX:  StickCentre,
		leftY:  StickCentre,
		rightX: StickCentre,
		rightY: StickCentre,
	}

	// byte 0 of the connection block signals wired/full-battery; the
	// remainder is padding that the host ignores.
	e.connection[0] = 0x8e

	return e
}

// Press sets b in the appropriate button mask. Pressing an already-pressed
// button is a no-op.
func (e *Encoder) Press(b Button) {
	mask, bit := split(b)
	if mask == 0 {
		e.buttonsLow |= bit
	} else {
		e.buttonsHigh |= bit
	}
}

// Release clears b in the appropriate button mask. Releasing an
// already-released button is a no-op.
func (e *Encoder) Release(b Button) {
	mask, bit := split(b)
	if mask == 0 {
		e.buttonsLow &^= bit
	} else {
		e.buttonsHigh &^= bit
	}
}

// Pressed reports whether b is currently held.
func (e *Encoder) Pressed(b Button) bool {
	mask, bit := split(b)
	if mask == 0 {
		return e.buttonsLow&bit != 0
	}
	return e.buttonsHigh&bit != 0
}

// SetDPad sets the hat switch to dir.
func (e *Encoder) SetDPad(dir HatDirection) {
	e.hat = dir
}

// SetStick sets the axis position of which, clamping x and y to
// [StickMin, StickMax]. Values outside that range are a programming error
// in the caller - paths are constructed entirely within this range - so
// clamping rather than erroring keeps Serialise infallible for anything
// other than a short buffer.
func (e *Encoder) SetStick(which Stick, x, y int) {
	if x < StickMin {
		x = StickMin
	} else if x > StickMax {
		x = StickMax
	}
	if y < StickMin {
		y = StickMin
	} else if y > StickMax {
		y = StickMax
	}

	switch which {
	case StickLeft:
		e.leftX, e.leftY = x, y
	case StickRight:
		e.rightX, e.rightY = x, y
	}
}

// pack12 packs two 12-bit values into the standard 3-byte interleaved form
// used by the HID gamepad descriptor: byte0 = x low 8 bits, byte1 = (y low
// nibble)<<4 | (x high nibble), byte2 = y high 8 bits.
func pack12(x, y int) [3]byte {
	var b [3]byte
	b[0] = byte(x & 0xff)
	b[1] = byte((x>>8)&0x0f) | byte((y&0x0f)<<4)
	b[2] = byte((y >> 4) & 0xff)
	return b
}

// Serialise returns the current state as a fixed-length HID input report.
// Every fixed-offset field is written exactly as the descriptor requires
// and every unused bit is zero. The returned slice always has length
// ReportLength; a shorter result anywhere in the pipeline is a Fatal error,
// never a value this method itself can produce.
func (e *Encoder) Serialise() []byte {
	report := make([]byte, ReportLength)

	report[offsetReportID] = reportID

	report[offsetButtonsLow] = byte(e.buttonsLow)
	report[offsetButtonsLow+1] = byte(e.buttonsLow >> 8)
	report[offsetButtonsHigh] = byte(e.buttonsHigh)
	report[offsetButtonsHigh+1] = byte(e.buttonsHigh >> 8)

	report[offsetHat] = byte(e.hat)

	left := pack12(e.leftX, e.leftY)
	copy(report[offsetLeftStick:offsetLeftStick+3], left[:])

	right := pack12(e.rightX, e.rightY)
	copy(report[offsetRightStick:offsetRightStick+3], right[:])

	copy(report[offsetConnection:], e.connection[:])

	if len(report) != ReportLength {
		panic(errors.Errorf(errors.ShortSerialise, len(report), ReportLength))
	}

	return report
}
