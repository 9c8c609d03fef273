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

package artwork

import "time"

// ID is an opaque, process-local handle identifying one Artwork.
type ID string

// Artwork is an identified Canvas plus metadata. Artworks live only as
// long as the process - there is no durable store.
type Artwork struct {
	ID      ID
	Name    string
	Created time.Time
	Canvas  *Canvas
}
