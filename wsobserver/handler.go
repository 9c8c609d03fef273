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
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jetsetilly/paintgadget/logger"
	"github.com/jetsetilly/paintgadget/session"
)

// writeWait bounds how long a single frame write may take before the
// connection is considered dead.
const writeWait = 5 * time.Second

// upgrader is permissive about origin - this system is deployed as a LAN
// appliance the browser reaches directly, with github.com/rs/cors already
// gating the JSON API on the same mux.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler upgrades /ws/logs connections and pumps session.Supervisor
// events to each one. Log messages reach a client only through
// Hub.BroadcastLog.
type Handler struct {
	hub *Hub
	sup *session.Supervisor
}

// NewHandler returns a Handler serving clients out of hub, subscribing
// each one to sup for progress and terminal events.
func NewHandler(hub *Hub, sup *session.Supervisor) *Handler {
	return &Handler{hub: hub, sup: sup}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf("wsobserver", "upgrade failed: %v", err)
		return
	}

	c := newClient()
	h.hub.register(c)

	obs := h.sup.Subscribe()

	done := make(chan struct{})
	go h.writePump(conn, c, done)
	go h.observerPump(c, obs, done)

	// readPump blocks until the client disconnects; clients never send
	// anything meaningful, but reading keeps gorilla's control-frame
	// handling (ping/pong, close) alive.
	h.readPump(conn)

	close(done)
	h.sup.Unsubscribe(obs)
	h.hub.unregister(c)
	conn.Close()
}

func (h *Handler) readPump(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writePump(conn *websocket.Conn, c *client, done chan struct{}) {
	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// observerPump translates one session.Observer's events into wire messages
// and queues them on c, for as long as the connection is alive.
func (h *Handler) observerPump(c *client, obs *session.Observer, done chan struct{}) {
	for {
		select {
		case p := <-obs.Progress:
			h.hub.send(c, progressToMsg(p))
		case t := <-obs.Terminal:
			h.hub.send(c, terminalToMsg(t))
		case <-done:
			return
		}
	}
}
