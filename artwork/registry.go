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

import (
	"sync"
	"time"

	"github.com/jetsetilly/paintgadget/errors"
)

// Registry is a keyed, in-memory store of Artworks. Concurrent reads are
// allowed; inserts and deletes are exclusive.
type Registry struct {
	mu    sync.RWMutex
	byID  map[ID]*Artwork
	nextN int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[ID]*Artwork)}
}

// Add stores canvas under name and returns the new Artwork's ID.
func (r *Registry) Add(name string, canvas *Canvas) ID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextN++
	id := ID(generateID(r.nextN))

	r.byID[id] = &Artwork{
		ID:      id,
		Name:    name,
		Created: time.Now(),
		Canvas:  canvas,
	}

	return id
}

// Get returns the Artwork with the given id, or UnknownArtwork if none
// exists.
func (r *Registry) Get(id ID) (*Artwork, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, errors.Errorf(errors.UnknownArtwork, string(id))
	}
	return a, nil
}

// Delete removes the Artwork with the given id, if present. Deleting an
// unknown id is a no-op - callers that need to know whether it existed
// should Get first.
func (r *Registry) Delete(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}

// List returns every stored Artwork, in no particular order.
func (r *Registry) List() []*Artwork {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Artwork, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out
}

func generateID(n int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{alphabet[n%len(alphabet)]}, b...)
		n /= len(alphabet)
	}
	return "art-" + string(b)
}
