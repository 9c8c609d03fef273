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

// handleCalibrationStart runs the Executor's fixed initialisation
// handshake against an empty canvas - there is nothing to paint, so the
// only operations that run are the safe-state report written before it and
// the handshake itself (unless skipped).
func (s *Server) handleCalibrationStart(w http.ResponseWriter, r *http.Request) {
	var req calibrationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	canvas, err := artwork.NewCanvas(artwork.Width, artwork.Height, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	art := &artwork.Artwork{ID: "calibration", Name: "calibration", Canvas: canvas}

	err = s.sup.Start(session.Request{
		Artwork:  art,
		Strategy: planner.StrategyRaster,
		Timing:   req.toTiming(),
		Repeats:  1,
		SkipInit: req.SkipInitialization,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paintResponse{Started: true})
}
