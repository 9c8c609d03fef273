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

// Errorf constructs a curated error using one of this package's message
// patterns. It is a thin re-export of curated.Errorf so call sites only need
// to import this package.
func Errorf(pattern string, values ...interface{}) error {
	return curated.Errorf(pattern, values...)
}

// Is reports whether err was built from the given pattern.
func Is(err error, pattern string) bool {
	return curated.Is(err, pattern)
}

// Has reports whether pattern appears anywhere in err's causal chain.
func Has(err error, pattern string) bool {
	return curated.Has(err, pattern)
}
