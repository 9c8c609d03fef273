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

package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"unsafe"

	"github.com/pkg/term/termios"
)

// Geometry is a terminal's dimensions, in characters and pixels.
type Geometry struct {
	Rows, Cols uint16
	X, Y       uint16
}

// Terminal wraps the input/output files of a posix terminal, switching
// between canonical and cbreak modes so a caller can read single keypresses
// without waiting for a newline.
type Terminal struct {
	input  *os.File
	output *os.File

	Geometry Geometry

	canonicalAttr syscall.Termios
	cbreakAttr    syscall.Termios

	terminateSig chan bool
	terminateAck chan bool

	mu sync.Mutex
}

// Open prepares term to read from in and write to out, and starts a
// background handler that keeps Geometry current across SIGWINCH.
func (term *Terminal) Open(in, out *os.File) error {
	if in == nil {
		return fmt.Errorf("easyterm: terminal requires an input file")
	}
	if out == nil {
		return fmt.Errorf("easyterm: terminal requires an output file")
	}

	term.input = in
	term.output = out

	termios.Tcgetattr(term.input.Fd(), &term.canonicalAttr)
	termios.Cfmakecbreak(&term.cbreakAttr)

	term.terminateSig = make(chan bool)
	term.terminateAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() { term.terminateAck <- true }()

		for {
			select {
			case <-sigwinch:
				_ = term.updateGeometry()
			case <-term.terminateSig:
				return
			}
		}
	}()

	return term.updateGeometry()
}

// Close stops the SIGWINCH handler started by Open. It does not restore
// canonical mode - call CanonicalMode first if the terminal was left in
// cbreak mode.
func (term *Terminal) Close() {
	term.mu.Lock()
	defer term.mu.Unlock()

	term.terminateSig <- true
	<-term.terminateAck
}

func (term *Terminal) updateGeometry() error {
	term.mu.Lock()
	defer term.mu.Unlock()

	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, term.output.Fd(),
		uintptr(syscall.TIOCGWINSZ),
		uintptr(unsafe.Pointer(&term.Geometry)))
	if errno != 0 {
		return fmt.Errorf("easyterm: updating geometry: %d", errno)
	}
	return nil
}

// CanonicalMode restores normal line-buffered terminal behaviour.
func (term *Terminal) CanonicalMode() {
	term.mu.Lock()
	defer term.mu.Unlock()
	termios.Tcsetattr(term.input.Fd(), termios.TCIFLUSH, &term.canonicalAttr)
}

// CBreakMode switches to single-keypress, unbuffered input.
func (term *Terminal) CBreakMode() {
	term.mu.Lock()
	defer term.mu.Unlock()
	termios.Tcsetattr(term.input.Fd(), termios.TCIFLUSH, &term.cbreakAttr)
}

// Print writes s to the terminal's output file.
func (term *Terminal) Print(s string) {
	term.output.WriteString(s)
}
