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

package errors

// Message patterns for the error taxonomy of spec section 7. Each constant
// is a curated.Errorf pattern; categories.go maps each one to a Category.
const (
	// transport (C1: HID Transport)
	NotAvailable   = "hid: endpoint not available (%s)"
	NotBound       = "hid: endpoint exists but no host is attached (%s)"
	PermissionDenied = "hid: permission denied opening endpoint (%s)"
	ShortWrite     = "hid: short write to endpoint (%d of %d bytes)"
	TransportError = "hid: transport error: %v"

	// disconnected (C1/C4: recoverable mid-stream detach)
	HostDisconnected = "hid: host detached mid-write: %v"
	RetryBudget      = "hid: reconnect retry budget exhausted after %d attempts"

	// busy (C5: session supervisor)
	SessionBusy = "session: a paint or calibration session is already active"

	// invalid input (API boundary)
	InvalidDimensions = "canvas: dimensions must be exactly %dx%d, got %dx%d"
	InvalidTiming     = "timing: %s must be in [1, 10000]ms, got %d"
	UnknownStrategy   = "planner: unknown strategy %q"
	UnknownArtwork    = "artwork: no artwork with id %q"

	// fatal (implementation invariant violations)
	ShortSerialise = "gamepad: serialise produced %d bytes, want %d"
)
