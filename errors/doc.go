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

// Package errors defines the error taxonomy of the paint execution engine:
// Transport, Disconnected, Busy, InvalidInput, Planner and Fatal. Each
// category is a group of message patterns; construct an error with Errorf
// and classify it later with Category(). The underlying error type is the
// same de-duplicating curated.Errorf used throughout the rest of the
// repository - this package only adds a taxonomy on top.
package errors
