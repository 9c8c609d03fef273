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

// Package tuning holds the live-mutable parameters of a paint session: the
// timing triple and the repeat count. Values are published through atomics
// so the Paint Executor can snapshot them at an operation boundary without
// ever blocking the HTTP handlers that adjust them mid-session, and vice
// versa. No lock is ever held longer than a single assignment.
package tuning
