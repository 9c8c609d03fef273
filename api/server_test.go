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

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jetsetilly/paintgadget/api"
	"github.com/jetsetilly/paintgadget/artwork"
	"github.com/jetsetilly/paintgadget/probe"
	"github.com/jetsetilly/paintgadget/session"
	"github.com/jetsetilly/paintgadget/test"
)

type fakeEndpoint struct{}

func (fakeEndpoint) Write(report []byte) error { return nil }
func (fakeEndpoint) Reacquire() error           { return nil }

func newTestServer() (*api.Server, *artwork.Registry) {
	reg := artwork.NewRegistry()
	sup := session.NewSupervisor(fakeEndpoint{}, reg)
	prober := &probe.Prober{HIDGlob: "/nonexistent/*", UDCBindingPath: "/nonexistent", ModulesPath: "/nonexistent"}
	return api.NewServer(reg, sup, prober), reg
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		test.ExpectSuccess(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateArtworkRejectsWrongDimensions(t *testing.T) {
	s, _ := newTestServer()
	rec := doJSON(t, s.Routes(), http.MethodPost, "/api/artworks", map[string]any{
		"name": "bad", "width": 10, "height": 10, "dots": []any{},
	})
	test.ExpectEquality(t, rec.Code, http.StatusBadRequest)
}

func TestCreateArtworkAndFetchPath(t *testing.T) {
	s, _ := newTestServer()
	h := s.Routes()

	rec := doJSON(t, h, http.MethodPost, "/api/artworks", map[string]any{
		"name": "dot", "width": artwork.Width, "height": artwork.Height,
		"dots": []map[string]int{{"x": 0, "y": 0}},
	})
	test.ExpectEquality(t, rec.Code, http.StatusOK)

	var created struct{ ID string }
	test.ExpectSuccess(t, json.Unmarshal(rec.Body.Bytes(), &created))
	test.ExpectInequality(t, created.ID, "")

	rec = doJSON(t, h, http.MethodGet, "/api/artworks/"+created.ID+"/path?strategy=raster", nil)
	test.ExpectEquality(t, rec.Code, http.StatusOK)

	var pathResp struct {
		Path             []map[string]int
		EstimatedTimeSec float64 `json:"estimated_time_sec"`
	}
	test.ExpectSuccess(t, json.Unmarshal(rec.Body.Bytes(), &pathResp))
	test.ExpectEquality(t, len(pathResp.Path), 1)
}

func TestFetchPathUnknownArtworkIsBadRequest(t *testing.T) {
	s, _ := newTestServer()
	rec := doJSON(t, s.Routes(), http.MethodGet, "/api/artworks/art-missing/path?strategy=raster", nil)
	test.ExpectEquality(t, rec.Code, http.StatusBadRequest)
}

func TestStrategiesSummary(t *testing.T) {
	s, _ := newTestServer()
	h := s.Routes()

	rec := doJSON(t, h, http.MethodPost, "/api/artworks", map[string]any{
		"name": "row", "width": artwork.Width, "height": artwork.Height,
		"dots": []map[string]int{{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 2, "y": 0}},
	})
	var created struct{ ID string }
	test.ExpectSuccess(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, h, http.MethodGet, "/api/artworks/"+created.ID+"/strategies", nil)
	test.ExpectEquality(t, rec.Code, http.StatusOK)

	var summaries []map[string]any
	test.ExpectSuccess(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	test.ExpectEquality(t, len(summaries), 4)
}

func TestPaintStartsSessionAndRejectsBusy(t *testing.T) {
	s, _ := newTestServer()
	h := s.Routes()

	rec := doJSON(t, h, http.MethodPost, "/api/artworks", map[string]any{
		"name": "dot", "width": artwork.Width, "height": artwork.Height,
		"dots": []map[string]int{{"x": 0, "y": 0}},
	})
	var created struct{ ID string }
	test.ExpectSuccess(t, json.Unmarshal(rec.Body.Bytes(), &created))

	paintBody := map[string]any{
		"press_ms": 50, "release_ms": 50, "wait_ms": 50,
		"strategy": "raster", "repeats": 1,
	}
	rec = doJSON(t, h, http.MethodPost, "/api/artworks/"+created.ID+"/paint", paintBody)
	test.ExpectEquality(t, rec.Code, http.StatusOK)

	rec = doJSON(t, h, http.MethodPost, "/api/artworks/"+created.ID+"/paint", paintBody)
	test.ExpectEquality(t, rec.Code, http.StatusConflict)

	doJSON(t, h, http.MethodPost, "/api/painting/stop", nil)
}

func TestPaintPreviewDoesNotStartSession(t *testing.T) {
	s, _ := newTestServer()
	h := s.Routes()

	rec := doJSON(t, h, http.MethodPost, "/api/artworks", map[string]any{
		"name": "dot", "width": artwork.Width, "height": artwork.Height,
		"dots": []map[string]int{{"x": 0, "y": 0}},
	})
	var created struct{ ID string }
	test.ExpectSuccess(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, h, http.MethodPost, "/api/artworks/"+created.ID+"/paint", map[string]any{
		"press_ms": 100, "release_ms": 60, "wait_ms": 40,
		"strategy": "raster", "repeats": 1, "preview": true,
	})
	test.ExpectEquality(t, rec.Code, http.StatusOK)

	var resp struct {
		Started bool
	}
	test.ExpectSuccess(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	test.ExpectEquality(t, resp.Started, false)
}

func TestPauseStopAreIdempotentWhenIdle(t *testing.T) {
	s, _ := newTestServer()
	h := s.Routes()
	test.ExpectEquality(t, doJSON(t, h, http.MethodPost, "/api/painting/pause", nil).Code, http.StatusOK)
	test.ExpectEquality(t, doJSON(t, h, http.MethodPost, "/api/painting/stop", nil).Code, http.StatusOK)
}

func TestTimingRejectsOutOfRange(t *testing.T) {
	s, _ := newTestServer()
	rec := doJSON(t, s.Routes(), http.MethodPost, "/api/painting/timing", map[string]int{
		"press_ms": 0, "release_ms": 1, "wait_ms": 1,
	})
	test.ExpectEquality(t, rec.Code, http.StatusBadRequest)
}

func TestHardwareStatusReportsAllUnavailable(t *testing.T) {
	s, _ := newTestServer()
	rec := doJSON(t, s.Routes(), http.MethodGet, "/api/hardware/status", nil)
	test.ExpectEquality(t, rec.Code, http.StatusOK)

	var status struct {
		ConsoleConnected   bool `json:"console_connected"`
		GadgetAvailable    bool `json:"gadget_available"`
		HIDDeviceAvailable bool `json:"hid_device_available"`
	}
	test.ExpectSuccess(t, json.Unmarshal(rec.Body.Bytes(), &status))
	test.ExpectEquality(t, status.ConsoleConnected, false)
	test.ExpectEquality(t, status.GadgetAvailable, false)
	test.ExpectEquality(t, status.HIDDeviceAvailable, false)
}

func TestCalibrationStartRunsAndCompletes(t *testing.T) {
	s, _ := newTestServer()
	h := s.Routes()

	rec := doJSON(t, h, http.MethodPost, "/api/calibration/start", map[string]any{
		"press_ms": 1, "release_ms": 1, "wait_ms": 1, "skip_initialization": true,
	})
	test.ExpectEquality(t, rec.Code, http.StatusOK)
}
