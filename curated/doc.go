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

// Package curated is a helper package for the plain Go language error type.
// Errors built with Errorf implement the error interface but remember the
// pattern and values they were constructed from, so that the Is() and Has()
// functions can later ask "was this particular failure involved?" without
// string matching against a formatted message.
//
// The Error() implementation also normalises the causal chain: when the same
// message part repeats back to back (the common result of wrapping an error
// at every call site on its way up) the duplicate is collapsed. A chain like
//
//	hid: hid: disconnected
//
// is reported as
//
//	hid: disconnected
package curated
