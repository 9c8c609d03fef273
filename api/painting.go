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
	"net/http"

	"github.com/jetsetilly/paintgadget/artwork"
	"github.com/jetsetilly/paintgadget/planner"
	"github.com/jetsetilly/paintgadget/session"
)

// handlePaint plans req's strategy over the named artwork and, unless
// Preview is set, starts a session to paint it. Preview lets the UI show
// the estimate that a paint call would commit to without consuming the
// single session slot.
func (s *Server) handlePaint(w http.ResponseWriter, r *http.Request) {
	art, err := s.registry.Get(artwork.ID(r.PathValue("id")))
	if err != nil {
		writeError(w, err)
		return
	}

	var req paintRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	strategy := planner.Strategy(req.Strategy)

	if req.Preview {
		path, err := planner.PlanPath(strategy, art.Canvas)
		if err != nil {
			writeError(w, err)
			return
		}
		est := planner.EstimateFor(path, req.toTiming(), req.Repeats)
		writeJSON(w, http.StatusOK, paintResponse{
			Started:          false,
			Path:             toPoints(path),
			EstimatedTimeSec: est.SecondsTotal,
		})
		return
	}

	err = s.sup.Start(session.Request{
		Artwork:  art,
		Strategy: strategy,
		Timing:   req.toTiming(),
		Repeats:  req.Repeats,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paintResponse{Started: true})
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	s.sup.Pause()
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	s.sup.Stop()
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) handleTiming(w http.ResponseWriter, r *http.Request) {
	var req timingJSON
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.sup.UpdateTiming(req.toTiming()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) handleRepeats(w http.ResponseWriter, r *http.Request) {
	var req repeatsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s.sup.UpdateRepeats(req.Repeats)
	writeJSON(w, http.StatusOK, struct{}{})
}
