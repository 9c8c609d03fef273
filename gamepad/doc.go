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

// Package gamepad implements the protocol-encoder half of the emulated
// first-party gamepad: it holds the live controller report (buttons, D-pad,
// sticks) as a bitfield and serialises it into the wire format the console's
// USB HID driver expects.
//
// Mutating the report (Press, Release, SetDPad, SetStick) never touches the
// network or the filesystem - it only flips bits in memory. Exactly one
// Serialise() call is expected per report actually written to the HID
// endpoint (see the hid package), so the cost of building the byte slice is
// paid once per transition, not once per field mutation.
//
// The report layout below is modelled on the input report format used by
// contemporary first-party Joy-Con/Pro Controller style gamepads: a report
// ID, two 16-bit button masks, a 4-bit hat switch, two analogue sticks each
// packed as a pair of 12-bit values into three bytes, and a fixed block of
// connection/battery bytes that never change once the encoder is created.
package gamepad
