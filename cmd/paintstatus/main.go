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

// Command paintstatus is a terminal dashboard for a running paintgadget
// server. It dials the server's /ws/logs feed and redraws a single status
// line in place, using cbreak mode so 'q' quits without waiting for a
// newline.
package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"

	"github.com/gorilla/websocket"

	"github.com/jetsetilly/paintgadget/easyterm"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "paintgadget server address")
	flag.Parse()

	if err := run(*addr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// wireMsg is loosely typed because paintstatus only cares about a handful
// of fields shared between the progress, log and calibration_complete
// shapes wsobserver emits.
type wireMsg struct {
	Type           string `json:"type"`
	Current        int    `json:"current"`
	Total          int    `json:"total"`
	X              int    `json:"x"`
	Y              int    `json:"y"`
	DPadOperations int    `json:"dpad_operations"`
	Status         string `json:"status"`
	Tag            string `json:"tag"`
	Detail         string `json:"detail"`
	Message        string `json:"message"`
}

func run(addr string) error {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws/logs"}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("paintstatus: connecting to %s: %w", u.String(), err)
	}
	defer conn.Close()

	term := &easyterm.Terminal{}
	if err := term.Open(os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("paintstatus: opening terminal: %w", err)
	}
	defer term.Close()

	term.CBreakMode()
	defer term.CanonicalMode()

	term.Print(fmt.Sprintf("connected to %s - press 'q' to quit\n", u.String()))

	quit := make(chan struct{})
	go watchQuit(os.Stdin, quit)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	messages := make(chan wireMsg)
	readErr := make(chan error, 1)
	go func() {
		for {
			var msg wireMsg
			if err := conn.ReadJSON(&msg); err != nil {
				readErr <- err
				return
			}
			messages <- msg
		}
	}()

	var drops uint64
	for {
		select {
		case msg := <-messages:
			drawLine(term, msg, drops)
		case err := <-readErr:
			term.Print(fmt.Sprintf("\nconnection closed: %v\n", err))
			return nil
		case <-quit:
			term.Print("\n")
			return nil
		case <-interrupt:
			term.Print("\n")
			return nil
		}
	}
}

func drawLine(term *easyterm.Terminal, msg wireMsg, drops uint64) {
	switch msg.Type {
	case "progress":
		term.Print(fmt.Sprintf("\rdot %d/%d, cursor (%d,%d), dpad ops %d, drops: %d   ",
			msg.Current, msg.Total, msg.X, msg.Y, msg.DPadOperations, drops))
	case "calibration_complete":
		term.Print(fmt.Sprintf("\rrun finished: %s %s\n", msg.Status, msg.Message))
	case "log":
		term.Print(fmt.Sprintf("\n[%s] %s\n", msg.Tag, msg.Detail))
	}
}

// watchQuit reads single bytes from in and signals quit when it sees 'q'
// or 'Q'. It returns without signalling when reading in fails, for
// instance once in is closed.
func watchQuit(in *os.File, quit chan<- struct{}) {
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		if buf[0] == 'q' || buf[0] == 'Q' {
			close(quit)
			return
		}
	}
}
