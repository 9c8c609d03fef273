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

import "github.com/jetsetilly/paintgadget/curated"

// Errno classifies a message pattern into one of the error categories
// from the design's error handling section. An unrecognised pattern
// classifies as CategoryUnknown - this should not happen for any pattern
// defined in messages.go.
type Errno int

// The error categories.
const (
	CategoryUnknown Errno = iota
	CategoryTransport
	CategoryDisconnected
	CategoryBusy
	CategoryInvalidInput
	CategoryPlanner
	CategoryFatal
)

func (c Errno) String() string {
	switch c {
	case CategoryTransport:
		return "transport"
	case CategoryDisconnected:
		return "disconnected"
	case CategoryBusy:
		return "busy"
	case CategoryInvalidInput:
		return "invalid input"
	case CategoryPlanner:
		return "planner"
	case CategoryFatal:
		return "fatal"
	}
	return "unknown"
}

var categoryOf = map[string]Errno{
	NotAvailable:      CategoryTransport,
	NotBound:          CategoryTransport,
	PermissionDenied:  CategoryTransport,
	ShortWrite:        CategoryTransport,
	TransportError:    CategoryTransport,
	HostDisconnected:  CategoryDisconnected,
	SessionBusy:       CategoryBusy,
	InvalidDimensions: CategoryInvalidInput,
	InvalidTiming:     CategoryInvalidInput,
	UnknownStrategy:   CategoryInvalidInput,
	UnknownArtwork:    CategoryInvalidInput,
	ShortSerialise:    CategoryFatal,
	RetryBudget:       CategoryDisconnected,
}

// Category returns the category of err if it is one of this package's
// curated errors, and CategoryUnknown otherwise.
func Category(err error) Errno {
	if err == nil {
		return CategoryUnknown
	}
	head := curated.Head(err)
	if c, ok := categoryOf[head]; ok {
		return c
	}
	return CategoryUnknown
}
