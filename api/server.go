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

package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/cors"

	"github.com/jetsetilly/paintgadget/artwork"
	"github.com/jetsetilly/paintgadget/errors"
	"github.com/jetsetilly/paintgadget/logger"
	"github.com/jetsetilly/paintgadget/probe"
	"github.com/jetsetilly/paintgadget/session"
)

// Server wires the JSON HTTP surface to an artwork.Registry, a
// session.Supervisor, and a probe.Prober.
type Server struct {
	registry *artwork.Registry
	sup      *session.Supervisor
	prober   *probe.Prober
}

// NewServer returns a Server backed by registry, sup and prober.
func NewServer(registry *artwork.Registry, sup *session.Supervisor, prober *probe.Prober) *Server {
	return &Server{registry: registry, sup: sup, prober: prober}
}

// Routes returns the complete /api mux, wrapped with a permissive CORS
// policy suitable for a browser on the same LAN as the gadget host.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/artworks", s.handleCreateArtwork)
	mux.HandleFunc("GET /api/artworks/{id}/path", s.handleArtworkPath)
	mux.HandleFunc("GET /api/artworks/{id}/strategies", s.handleArtworkStrategies)
	mux.HandleFunc("POST /api/artworks/{id}/paint", s.handlePaint)
	mux.HandleFunc("POST /api/painting/pause", s.handlePause)
	mux.HandleFunc("POST /api/painting/stop", s.handleStop)
	mux.HandleFunc("POST /api/painting/timing", s.handleTiming)
	mux.HandleFunc("POST /api/painting/repeats", s.handleRepeats)
	mux.HandleFunc("POST /api/calibration/start", s.handleCalibrationStart)
	mux.HandleFunc("GET /api/hardware/status", s.handleHardwareStatus)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(mux)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Logf("api", "response encode failed: %v", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return false
	}
	return true
}

// writeError maps a curated error to the HTTP status spec.md's error
// handling design calls for: Invalid Input and Busy are synchronous API
// boundary rejections, everything else is an unexpected server failure.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.Category(err) {
	case errors.CategoryInvalidInput:
		status = http.StatusBadRequest
	case errors.CategoryBusy:
		status = http.StatusConflict
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
