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

package test

import "strings"

// Writer is an io.Writer that accumulates everything written to it, for
// comparison in tests (eg. capturing logger.Write() output).
type Writer struct {
	buf strings.Builder
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// String returns everything written so far.
func (w *Writer) String() string {
	return w.buf.String()
}

// Compare reports whether s equals everything written so far.
func (w *Writer) Compare(s string) bool {
	return w.buf.String() == s
}

// Clear resets the writer to empty.
func (w *Writer) Clear() {
	w.buf.Reset()
}
