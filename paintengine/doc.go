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

// Package paintengine walks a planner.Path, translating each Move and Draw
// into timed button sequences through the gamepad Encoder and the hid
// Endpoint. It is a single cooperative task: it suspends only at scheduled
// sleeps between operations, at write_report, and at an explicit pause
// wait - never in the middle of a press/release hold.
package paintengine
