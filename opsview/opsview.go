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

package opsview

import (
	"fmt"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/paintgadget/logger"
)

// DefaultPort is statsview's own default dashboard port.
const DefaultPort = 18066

// Start brings up the statsview dashboard on its own listener at
// 0.0.0.0:port, independent of the main API server. statsview owns its
// internal router rather than exposing a handler this package could graft
// onto the main mux, so "mounting" here means running it alongside the API
// server and logging where it landed.
func Start(port int) {
	if port <= 0 {
		port = DefaultPort
	}

	viewer.SetConfiguration(viewer.WithAddr(fmt.Sprintf("0.0.0.0:%d", port)))
	mgr := statsview.New()

	logger.Logf("opsview", "dashboard starting at http://0.0.0.0:%d/debug/statsview", port)

	go func() {
		if err := mgr.Start(); err != nil {
			logger.Logf("opsview", "dashboard stopped: %v", err)
		}
	}()
}
