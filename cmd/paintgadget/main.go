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

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/jetsetilly/paintgadget/api"
	"github.com/jetsetilly/paintgadget/artwork"
	"github.com/jetsetilly/paintgadget/hid"
	"github.com/jetsetilly/paintgadget/logger"
	"github.com/jetsetilly/paintgadget/modalflag"
	"github.com/jetsetilly/paintgadget/opsview"
	"github.com/jetsetilly/paintgadget/probe"
	"github.com/jetsetilly/paintgadget/session"
	"github.com/jetsetilly/paintgadget/wsobserver"
)

func main() {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("serve", "probe")

	if p, err := md.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else if p == modalflag.ParseHelp {
		return
	}

	var err error
	switch md.Mode() {
	case "serve":
		err = serve(&md)
	case "probe":
		err = runProbe()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(md *modalflag.Modes) error {
	md.NewArgs(md.RemainingArgs())
	addr := md.AddString("addr", ":8080", "HTTP listen address")
	device := md.AddString("device", "/dev/hidg0", "HID gadget character device")
	dashboard := md.AddInt("dashboard-port", 0, "statsview dashboard port (0 disables)")

	if p, err := md.Parse(); err != nil {
		return err
	} else if p == modalflag.ParseHelp {
		return nil
	}

	ep := hid.NewEndpoint(*device)
	if err := ep.Open(); err != nil {
		logger.Logf("paintgadget", "HID endpoint not yet available: %v", err)
	}

	registry := artwork.NewRegistry()
	sup := session.NewSupervisor(ep, registry)
	prober := probe.NewProber()

	mux := http.NewServeMux()
	mux.Handle("/", api.NewServer(registry, sup, prober).Routes())
	mux.Handle("/ws/logs", wsobserver.NewHandler(wsobserver.NewHub(), sup))

	if *dashboard != 0 {
		opsview.Start(*dashboard)
	}

	logger.Logf("paintgadget", "listening on %s", *addr)
	return http.ListenAndServe(*addr, mux)
}

func runProbe() error {
	status := probe.NewProber().Probe()
	fmt.Printf("console connected:   %v\n", status.ConsoleConnected)
	fmt.Printf("gadget available:    %v\n", status.GadgetAvailable)
	fmt.Printf("HID device present:  %v\n", status.HIDDeviceAvailable)
	if status.Details != "" {
		fmt.Printf("details: %s\n", status.Details)
	}
	return nil
}
