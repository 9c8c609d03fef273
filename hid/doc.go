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

// Package hid opens and writes to a kernel-exported USB-gadget HID endpoint
// character device (typically /dev/hidg0). It knows nothing about the
// gamepad wire protocol carried inside a report - see package gamepad for
// that - and presents one operation to its caller: write a complete report
// frame, blocking until the kernel has accepted it for delivery to the
// host side of the USB link.
package hid
