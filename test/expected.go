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

package test

import (
	"fmt"
	"math"
	"testing"
)

// ExpectSuccess fails the test unless v is a "successful" value: a boolean
// true, a nil error, or a nil interface/pointer.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()

	switch vv := v.(type) {
	case bool:
		if !vv {
			t.Errorf("expected success, got false")
		}
	case error:
		if vv != nil {
			t.Errorf("expected success, got error: %v", vv)
		}
	case nil:
		// a literal nil is a success
	default:
		t.Errorf("unsupported type in ExpectSuccess: %T", v)
	}
}

// ExpectFailure fails the test unless v is a "failing" value: a boolean
// false or a non-nil error.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()

	switch vv := v.(type) {
	case bool:
		if vv {
			t.Errorf("expected failure, got true")
		}
	case error:
		if vv == nil {
			t.Errorf("expected failure, got nil error")
		}
	default:
		t.Errorf("unsupported type in ExpectFailure: %T", v)
	}
}

// ExpectEquality fails the test unless got and want compare equal with %v.
func ExpectEquality(t *testing.T, got interface{}, want interface{}) {
	t.Helper()

	if fmt.Sprintf("%v", got) != fmt.Sprintf("%v", want) {
		t.Errorf("expected equality: got %v, want %v", got, want)
	}
}

// ExpectInequality fails the test if got and want compare equal with %v.
func ExpectInequality(t *testing.T, got interface{}, want interface{}) {
	t.Helper()

	if fmt.Sprintf("%v", got) == fmt.Sprintf("%v", want) {
		t.Errorf("expected inequality: got %v, want %v", got, want)
	}
}

// ExpectApproximate fails the test unless got is within tolerance (expressed
// as a fraction of want, eg. 0.05 for 5%) of want.
func ExpectApproximate(t *testing.T, got float64, want float64, tolerance float64) {
	t.Helper()

	diff := math.Abs(got - want)
	limit := math.Abs(want) * tolerance
	if diff > limit {
		t.Errorf("expected %v to be within %v%% of %v (diff %v, limit %v)", got, tolerance*100, want, diff, limit)
	}
}
