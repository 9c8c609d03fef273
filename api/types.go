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

import "github.com/jetsetilly/paintgadget/tuning"

type dotJSON struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Color int `json:"color"` // accepted, discarded - the core paints one bit
}

type createArtworkRequest struct {
	Name   string    `json:"name"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Dots   []dotJSON `json:"dots"`
}

type createArtworkResponse struct {
	ID string `json:"id"`
}

type pointJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type pathResponse struct {
	Path              []pointJSON `json:"path"`
	EstimatedTimeSec  float64     `json:"estimated_time_sec"`
}

type strategySummary struct {
	Strategy       string `json:"strategy"`
	DPadOperations int    `json:"dpad_operations"`
	AButtonPresses int    `json:"a_button_presses"`
}

type timingJSON struct {
	PressMS   int `json:"press_ms"`
	ReleaseMS int `json:"release_ms"`
	WaitMS    int `json:"wait_ms"`
}

func (t timingJSON) toTiming() tuning.Timing {
	return tuning.Timing{PressMS: t.PressMS, ReleaseMS: t.ReleaseMS, WaitMS: t.WaitMS}
}

type paintRequest struct {
	timingJSON
	Strategy string `json:"strategy"`
	Repeats  int    `json:"repeats"`
	Preview  bool   `json:"preview,omitempty"`
}

type paintResponse struct {
	Started          bool        `json:"started"`
	Path             []pointJSON `json:"path,omitempty"`
	EstimatedTimeSec float64     `json:"estimated_time_sec,omitempty"`
}

type repeatsRequest struct {
	Repeats int `json:"repeats"`
}

type calibrationRequest struct {
	timingJSON
	SkipInitialization bool `json:"skip_initialization"`
}

type errorResponse struct {
	Error string `json:"error"`
}
