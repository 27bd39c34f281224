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

package renderer

import "time"

// Clock measures the time since the start of the loop and the time between
// frames.
type Clock struct {
	now   func() time.Time
	start time.Time

	current time.Duration
	delta   time.Duration
}

// NewClock is the preferred method of initialisation for the Clock type. The
// clock starts immediately.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource creates a clock that reads the time with the supplied
// function.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{
		now:   now,
		start: now(),
	}
}

// Tick advances the clock to the current time and returns the time since the
// previous tick in seconds. The returned value is never negative, even if the
// time source goes backwards.
func (c *Clock) Tick() float32 {
	current := c.now().Sub(c.start)
	c.delta = max(0, current-c.current)
	c.current = max(c.current, current)
	return float32(c.delta.Seconds())
}

// Delta returns the value returned by the most recent call to Tick().
func (c *Clock) Delta() float32 {
	return float32(c.delta.Seconds())
}

// Elapsed returns the number of seconds between the start of the clock and
// the most recent call to Tick().
func (c *Clock) Elapsed() float32 {
	return float32(c.current.Seconds())
}
