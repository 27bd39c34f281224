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

package renderer_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/learnopengl/renderer"
	"github.com/jetsetilly/learnopengl/test"
)

// source returns a time function that reads the times in order. the final
// time is repeated once the list is exhausted.
func source(times ...time.Duration) func() time.Time {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var i int
	return func() time.Time {
		t := base.Add(times[min(i, len(times)-1)])
		i++
		return t
	}
}

func TestClock(t *testing.T) {
	clk := renderer.NewClockWithSource(source(0, 100*time.Millisecond, 250*time.Millisecond))

	test.ExpectWithin(t, clk.Tick(), 0.1, 0.0001)
	test.ExpectWithin(t, clk.Delta(), 0.1, 0.0001)
	test.ExpectWithin(t, clk.Elapsed(), 0.1, 0.0001)

	test.ExpectWithin(t, clk.Tick(), 0.15, 0.0001)
	test.ExpectWithin(t, clk.Elapsed(), 0.25, 0.0001)

	// time source has stopped
	test.ExpectWithin(t, clk.Tick(), 0, 0.0001)
	test.ExpectWithin(t, clk.Elapsed(), 0.25, 0.0001)
}

func TestClockBackwards(t *testing.T) {
	clk := renderer.NewClockWithSource(source(time.Second, 2*time.Second, time.Second, 3*time.Second))

	test.ExpectWithin(t, clk.Tick(), 1, 0.0001)

	// delta is never negative and elapsed never decreases
	test.ExpectWithin(t, clk.Tick(), 0, 0.0001)
	test.ExpectWithin(t, clk.Elapsed(), 1, 0.0001)

	test.ExpectWithin(t, clk.Tick(), 1, 0.0001)
	test.ExpectWithin(t, clk.Elapsed(), 2, 0.0001)
}
