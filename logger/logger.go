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

// Package logger implements a small, ring-buffered process logger. Entries
// are (tag, detail) pairs; detail accepts errors, fmt.Stringer values, or
// anything %v can format. A Permission gate lets a caller of Logger.Log or
// Logger.Logf silence logging for a particular entry without touching the
// log call site. The package-level Log and Logf always log, using Allow.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission instances decide, at the moment of logging, whether a call to
// Log/Logf should actually be recorded.
type Permission interface {
	AllowLogging() bool
}

// Allow is a Permission that always allows logging.
const Allow = alwaysAllow(true)

type alwaysAllow bool

func (a alwaysAllow) AllowLogging() bool {
	return bool(a)
}

type entry struct {
	tag    string
	detail string
}

// Logger is a capped, append-only log of entries. The zero value is not
// usable; construct with NewLogger.
type Logger struct {
	mu       sync.Mutex
	entries  []entry
	capacity int
}

// NewLogger creates a Logger that retains at most capacity entries, dropping
// the oldest entry once capacity is reached.
func NewLogger(capacity int) *Logger {
	return &Logger{
		entries:  make([]entry, 0, capacity),
		capacity: capacity,
	}
}

func formatDetail(detail interface{}) string {
	switch d := detail.(type) {
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	case string:
		return d
	default:
		return fmt.Sprintf("%v", d)
	}
}

// Log appends a new entry if permission allows it.
func (l *Logger) Log(permission Permission, tag string, detail interface{}) {
	if !permission.AllowLogging() {
		return
	}
	l.append(tag, formatDetail(detail))
}

// Logf is like Log but the detail is built with fmt.Sprintf.
func (l *Logger) Logf(permission Permission, tag string, format string, args ...interface{}) {
	if !permission.AllowLogging() {
		return
	}
	l.append(tag, fmt.Sprintf(format, args...))
}

func (l *Logger) append(tag, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry{tag: tag, detail: detail})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

// Write dumps every entry, oldest first, to w as "tag: detail\n" lines.
func (l *Logger) Write(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(e.tag)
		b.WriteString(": ")
		b.WriteString(e.detail)
		b.WriteString("\n")
	}
	io.WriteString(w, b.String())
}

// Tail dumps the last n entries, oldest first. Asking for more entries than
// exist, or for zero entries, is not an error.
func (l *Logger) Tail(w io.Writer, n int) {
	l.mu.Lock()
	entries := l.entries
	if n < len(entries) {
		entries = entries[len(entries)-n:]
	}
	if n <= 0 {
		entries = nil
	}
	l.mu.Unlock()

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.tag)
		b.WriteString(": ")
		b.WriteString(e.detail)
		b.WriteString("\n")
	}
	io.WriteString(w, b.String())
}

// def is the process-wide logger used by the package-level functions.
var def = NewLogger(1000)

// Log appends to the process-wide logger.
func Log(tag string, detail interface{}) {
	def.Log(Allow, tag, detail)
}

// Logf appends to the process-wide logger using fmt.Sprintf formatting.
func Logf(tag string, format string, args ...interface{}) {
	def.Logf(Allow, tag, format, args...)
}

// Write dumps the process-wide logger to w.
func Write(w io.Writer) {
	def.Write(w)
}

// Tail dumps the last n entries of the process-wide logger to w.
func Tail(w io.Writer, n int) {
	def.Tail(w, n)
}
