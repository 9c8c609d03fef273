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

package hid

import (
	"os"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/jetsetilly/paintgadget/errors"
)

// state is the lifecycle of an Endpoint: Closed -> Open -> Closed. A
// Disconnected error during Write transitions Open back to Closed
// automatically.
type state int

const (
	stateClosed state = iota
	stateOpen
)

// Endpoint represents exclusive write access to a single kernel-exported
// HID endpoint node. It is not safe for concurrent use by more than one
// writer - the design reserves the endpoint to the Paint Executor alone.
type Endpoint struct {
	mu sync.Mutex

	path  string
	file  *os.File
	state state
}

// NewEndpoint returns an Endpoint bound to path but not yet opened.
func NewEndpoint(path string) *Endpoint {
	return &Endpoint{path: path, state: stateClosed}
}

// Open acquires exclusive write access to the endpoint. It classifies the
// open failure per the design: NotAvailable when the node does not exist,
// PermissionDenied when it exists but this process cannot write to it,
// NotBound when the open fails with ENODEV or ENXIO (the node exists but no
// host is attached to the gadget's UDC), and TransportError for any other
// failure. Some kernels open an unbound gadget cleanly, so a nil error does
// not mean a host is attached - callers that need to reject an unbound
// gadget should inspect Probe() before calling Open().
func (e *Endpoint) Open() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, err := os.OpenFile(e.path, os.O_WRONLY, 0)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return errors.Errorf(errors.NotAvailable, e.path)
		case os.IsPermission(err):
			return errors.Errorf(errors.PermissionDenied, e.path)
		default:
			if wrapped := wrapErrno(err); errors.Is(wrapped, errors.NotBound) {
				return wrapped
			}
			return errors.Errorf(errors.TransportError, err)
		}
	}

	e.file = f
	e.state = stateOpen

	return nil
}

// wrapErrno inspects err for the specific errno values that indicate the
// endpoint exists but has no host attached (ENODEV/ENXIO), returning a
// NotBound curated error in that case, or err unchanged otherwise.
func wrapErrno(err error) error {
	var errno unix.Errno
	if pe, ok := err.(*os.PathError); ok {
		if e, ok := pe.Err.(unix.Errno); ok {
			errno = e
		}
	}
	switch errno {
	case unix.ENODEV, unix.ENXIO:
		return errors.Errorf(errors.NotBound, err)
	default:
		return err
	}
}

// Write writes exactly one report frame. It is atomic at the frame
// boundary: either the whole frame is accepted by the kernel or an error
// is returned and the endpoint transitions to Closed.
func (e *Endpoint) Write(report []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateOpen {
		return errors.Errorf(errors.NotAvailable, e.path)
	}

	n, err := e.file.Write(report)
	if err != nil {
		e.closeLocked()

		var errno unix.Errno
		if pe, ok := err.(*os.PathError); ok {
			if en, ok := pe.Err.(unix.Errno); ok {
				errno = en
			}
		}

		switch errno {
		case unix.EPIPE, unix.ENODEV, unix.ESHUTDOWN, unix.ECONNRESET:
			return errors.Errorf(errors.HostDisconnected, err)
		default:
			return errors.Errorf(errors.TransportError, err)
		}
	}

	if n != len(report) {
		return errors.Errorf(errors.ShortWrite, n, len(report))
	}

	return nil
}

// Reacquire closes the endpoint (if open) and opens it again. It is the
// recovery step the paint executor's retry loop invokes after a
// Disconnected error.
func (e *Endpoint) Reacquire() error {
	e.Close()
	return e.Open()
}

// Close releases the endpoint. Closing an already-closed endpoint is a
// no-op.
func (e *Endpoint) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closeLocked()
}

func (e *Endpoint) closeLocked() {
	if e.state == stateClosed {
		return
	}
	e.file.Close()
	e.file = nil
	e.state = stateClosed
}

// IsOpen reports whether the endpoint currently holds an open file
// descriptor.
func (e *Endpoint) IsOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == stateOpen
}
