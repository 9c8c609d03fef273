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

// Package opsview is a thin wrapper around go-echarts/statsview, giving an
// unattended single-board deployment a live goroutine/heap/GC dashboard.
// It is pure operational surface: nothing under C1-C5 imports it, and a
// paint session runs identically whether or not Start has been called.
package opsview
