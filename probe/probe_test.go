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

package probe_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/paintgadget/probe"
	"github.com/jetsetilly/paintgadget/test"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	test.ExpectSuccess(t, os.WriteFile(path, []byte(content), 0644))
}

func TestProbeAllAbsent(t *testing.T) {
	dir := t.TempDir()
	p := &probe.Prober{
		HIDGlob:        filepath.Join(dir, "hidg*"),
		UDCBindingPath: filepath.Join(dir, "UDC"),
		ModulesPath:    filepath.Join(dir, "modules"),
	}
	s := p.Probe()
	test.ExpectEquality(t, s.HIDDeviceAvailable, false)
	test.ExpectEquality(t, s.GadgetAvailable, false)
	test.ExpectEquality(t, s.ConsoleConnected, false)
	test.ExpectInequality(t, s.Details, "")
}

func TestProbeAllPresent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hidg0"), "")
	writeFile(t, filepath.Join(dir, "UDC"), "20980000.usb\n")
	writeFile(t, filepath.Join(dir, "modules"), "dwc2 32768 0 - Live 0x0\nlibcomposite 49152 1 dwc2, Live 0x0\n")

	p := &probe.Prober{
		HIDGlob:        filepath.Join(dir, "hidg*"),
		UDCBindingPath: filepath.Join(dir, "UDC"),
		ModulesPath:    filepath.Join(dir, "modules"),
	}
	s := p.Probe()
	test.ExpectEquality(t, s.HIDDeviceAvailable, true)
	test.ExpectEquality(t, s.GadgetAvailable, true)
	test.ExpectEquality(t, s.ConsoleConnected, true)
	test.ExpectEquality(t, s.Details, "")
}

func TestProbeUDCBoundButEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "UDC"), "\n")

	p := &probe.Prober{
		HIDGlob:        filepath.Join(dir, "hidg*"),
		UDCBindingPath: filepath.Join(dir, "UDC"),
		ModulesPath:    filepath.Join(dir, "modules"),
	}
	s := p.Probe()
	test.ExpectEquality(t, s.ConsoleConnected, false)
}

func TestProbeOnlyOneModuleLoaded(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "modules"), "dwc2 32768 0 - Live 0x0\n")

	p := &probe.Prober{
		HIDGlob:        filepath.Join(dir, "hidg*"),
		UDCBindingPath: filepath.Join(dir, "UDC"),
		ModulesPath:    filepath.Join(dir, "modules"),
	}
	s := p.Probe()
	test.ExpectEquality(t, s.GadgetAvailable, false)
}
