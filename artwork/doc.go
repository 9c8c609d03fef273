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

// Package artwork holds the 320x120 one-bit Canvas type and an in-memory,
// process-local Registry of named Artworks. Nothing here is persisted -
// painting is ephemeral by design, and the registry is discarded with the
// process.
package artwork

// Width and Height are the fixed dimensions every Canvas must have.
const (
	Width  = 320
	Height = 120
)
