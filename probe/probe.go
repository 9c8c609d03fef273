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

package probe

import (
	"os"
	"path/filepath"
	"strings"
)

// Status is the result of one hardware probe, matching the
// /api/hardware/status response shape.
type Status struct {
	ConsoleConnected  bool   `json:"console_connected"`
	GadgetAvailable   bool   `json:"gadget_available"`
	HIDDeviceAvailable bool  `json:"hid_device_available"`
	Details           string `json:"details"`
}

// Prober holds the filesystem paths a probe reads. The zero value is not
// usable; construct with NewProber, which fills in the real system paths -
// tests substitute their own temporary paths instead.
type Prober struct {
	HIDGlob       string // e.g. "/dev/hidg*"
	UDCBindingPath string // e.g. "/sys/kernel/config/usb_gadget/paintgadget/UDC"
	ModulesPath   string // e.g. "/proc/modules"
}

// NewProber returns a Prober pointed at the real system paths a gadget-mode
// Linux host exposes.
func NewProber() *Prober {
	return &Prober{
		HIDGlob:        "/dev/hidg*",
		UDCBindingPath: "/sys/kernel/config/usb_gadget/paintgadget/UDC",
		ModulesPath:    "/proc/modules",
	}
}

// Probe runs every check and returns a combined Status. No check is fatal
// to the others; a missing path simply reads as "not available".
func (p *Prober) Probe() Status {
	var details []string

	hidAvailable := p.hidDeviceAvailable()
	if !hidAvailable {
		details = append(details, "no /dev/hidg* node present")
	}

	gadgetAvailable := p.gadgetAvailable()
	if !gadgetAvailable {
		details = append(details, "required kernel modules (dwc2, libcomposite) not loaded")
	}

	consoleConnected := p.consoleConnected()
	if !consoleConnected {
		details = append(details, "UDC not bound to a host")
	}

	return Status{
		ConsoleConnected:   consoleConnected,
		GadgetAvailable:    gadgetAvailable,
		HIDDeviceAvailable: hidAvailable,
		Details:            strings.Join(details, "; "),
	}
}

func (p *Prober) hidDeviceAvailable() bool {
	matches, err := filepath.Glob(p.HIDGlob)
	return err == nil && len(matches) > 0
}

// consoleConnected reads the UDC binding node; a gadget is bound to an
// attached host exactly when the file exists and holds a non-empty,
// non-whitespace UDC name.
func (p *Prober) consoleConnected() bool {
	data, err := os.ReadFile(p.UDCBindingPath)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) != ""
}

func (p *Prober) gadgetAvailable() bool {
	data, err := os.ReadFile(p.ModulesPath)
	if err != nil {
		return false
	}
	hasDwc2 := false
	hasLibcomposite := false
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "dwc2":
			hasDwc2 = true
		case "libcomposite":
			hasLibcomposite = true
		}
	}
	return hasDwc2 && hasLibcomposite
}
