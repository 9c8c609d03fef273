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

// Package modalflag is a small wrapper around the standard library's flag
// package that adds the notion of a "mode": a sub-command selected by the
// first non-flag argument, with its own flags layered on top of the parent's.
// A program built on modalflag looks like:
//
//	prog -verbose serve -addr :8080
//	prog probe
//
// where "-verbose" is a top-level flag and "serve"/"probe" are modes, each
// free to define their own flags ("-addr" above belongs to "serve").
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ParseResult indicates what a program should do after calling Parse().
type ParseResult int

// The possible results of Parse().
const (
	// ParseContinue indicates that flags were parsed successfully and the
	// program should continue as normal.
	ParseContinue ParseResult = iota

	// ParseHelp indicates that help text was requested (and has already
	// been written to Modes.Output). The program should exit cleanly.
	ParseHelp
)

// Modes wraps a flag.FlagSet with sub-mode dispatch. The zero value, once
// Output is set, is ready to use.
type Modes struct {
	// Output receives help text. Required.
	Output io.Writer

	args []string

	flagSet *flag.FlagSet

	subModes    []string
	defaultMode string
	mode        string
	path        string

	remaining []string
}

// NewArgs resets the Modes with a new argument list (normally os.Args[1:]).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.flagSet = flag.NewFlagSet("", flag.ContinueOnError)
	md.flagSet.SetOutput(io.Discard)
	md.flagSet.Usage = func() {}
}

func (md *Modes) ensure() {
	if md.flagSet == nil {
		md.NewArgs(nil)
	}
}

// AddBool defines a boolean flag for this mode level, identical in spirit to
// flag.Bool.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	md.ensure()
	return md.flagSet.Bool(name, value, usage)
}

// AddInt defines an integer flag for this mode level.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	md.ensure()
	return md.flagSet.Int(name, value, usage)
}

// AddString defines a string flag for this mode level.
func (md *Modes) AddString(name string, value string, usage string) *string {
	md.ensure()
	return md.flagSet.String(name, value, usage)
}

// AddSubModes declares the names of the sub-modes available at this level.
// The first name is the default, selected when no mode is named on the
// command line.
func (md *Modes) AddSubModes(modes ...string) {
	md.subModes = modes
	if len(modes) > 0 {
		md.defaultMode = modes[0]
	}
}

// Mode returns the sub-mode selected by the most recent Parse(), or the
// empty string if no sub-modes were declared.
func (md *Modes) Mode() string {
	return md.mode
}

// Path returns the sub-mode selected by the most recent Parse(); it holds a
// single mode name, not a path of nested modes. Empty if no sub-modes were
// declared.
func (md *Modes) Path() string {
	return md.path
}

// RemainingArgs returns the arguments left over after flags (and, if
// present, the mode name) have been consumed.
func (md *Modes) RemainingArgs() []string {
	return md.remaining
}

// userFlags is a FlagSet containing every flag except the built-in -help,
// used so PrintDefaults() never mentions -help itself.
func (md *Modes) userFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	md.flagSet.VisitAll(func(f *flag.Flag) {
		if f.Name == "help" {
			return
		}
		fs.Var(f.Value, f.Name, f.Usage)
	})
	return fs
}

func (md *Modes) writeHelp() {
	fs := md.userFlags()

	hasFlags := false
	fs.VisitAll(func(*flag.Flag) { hasFlags = true })

	if !hasFlags && len(md.subModes) == 0 {
		fmt.Fprint(md.Output, "No help available\n")
		return
	}

	fmt.Fprint(md.Output, "Usage:\n")

	if hasFlags {
		fs.SetOutput(md.Output)
		fs.PrintDefaults()
	}

	if len(md.subModes) > 0 {
		if hasFlags {
			fmt.Fprint(md.Output, "\n")
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.defaultMode)
	}
}

// Parse parses the arguments supplied to NewArgs, consuming flags for this
// level and, if sub-modes were declared, the mode name that follows them.
func (md *Modes) Parse() (ParseResult, error) {
	md.ensure()

	helpRequested := false
	md.flagSet.BoolVar(&helpRequested, "help", false, "show this help")

	if err := md.flagSet.Parse(md.args); err != nil {
		if helpRequested {
			md.writeHelp()
			return ParseHelp, nil
		}
		return ParseContinue, err
	}

	if helpRequested {
		md.writeHelp()
		return ParseHelp, nil
	}

	args := md.flagSet.Args()

	if len(md.subModes) > 0 {
		md.mode = md.defaultMode
		if len(args) > 0 {
			for _, m := range md.subModes {
				if strings.EqualFold(m, args[0]) {
					md.mode = m
					args = args[1:]
					break
				}
			}
		}
		md.path = md.mode
	}

	md.remaining = args

	return ParseContinue, nil
}
