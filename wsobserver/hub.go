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

package wsobserver

import (
	"encoding/json"
	"sync"
)

// sendQueueCapacity bounds each client's outgoing message queue. A client
// that can't keep up is dropped from, rather than allowed to stall, the
// broadcast.
const sendQueueCapacity = 64

type client struct {
	send chan []byte
}

func newClient() *client {
	return &client{send: make(chan []byte, sendQueueCapacity)}
}

// Hub tracks every connected /ws/logs client and fans log lines out to all
// of them. Progress and terminal events are not broadcast through Hub -
// each connection subscribes to its own session.Observer independently, so
// a client that connects mid-session still gets every event from then on
// without Hub needing to replay anything.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// BroadcastLog sends a log entry to every connected client.
func (h *Hub) BroadcastLog(tag, detail string) {
	h.broadcast(logMsg{Type: "log", Tag: tag, Detail: detail})
}

func (h *Hub) broadcast(msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

func (h *Hub) send(c *client, msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
