// This file is part of LearnOpenGL.
//
// LearnOpenGL is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// LearnOpenGL is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with LearnOpenGL.  If not, see <https://www.gnu.org/licenses/>.


package test

import "testing"

// The Demand functions are the Expect functions with a fatal outcome. Use them
// when the value is needed by later tests, for example the length of a slice
// that is about to be indexed.

// DemandEquality is the fatal form of ExpectEquality().
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if !ExpectEquality(t, v, expectedValue, tags...) {
		t.FailNow()
	}
}

// DemandInequality is the fatal form of ExpectInequality().
func DemandInequality[T comparable](t *testing.T, v T, notExpectedValue T, tags ...any) {
	t.Helper()
	if !ExpectInequality(t, v, notExpectedValue, tags...) {
		t.FailNow()
	}
}

// DemandWithin is the fatal form of ExpectWithin().
func DemandWithin[T ~float32 | ~float64](t *testing.T, v T, expectedValue T, delta float64, tags ...any) {
	t.Helper()
	if !ExpectWithin(t, v, expectedValue, delta, tags...) {
		t.FailNow()
	}
}

// DemandSuccess is the fatal form of ExpectSuccess().
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !ExpectSuccess(t, v, tags...) {
		t.FailNow()
	}
}

// DemandFailure is the fatal form of ExpectFailure().
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !ExpectFailure(t, v, tags...) {
		t.FailNow()
	}
}
