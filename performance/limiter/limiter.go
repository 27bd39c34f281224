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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Close()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderFrame()
//	}
package limiter

import (
	"time"

	"github.com/jetsetilly/learnopengl/curated"
)

// Sentinel error patterns.
const (
	InvalidRate = "limiter: invalid rate: %d"
)

// this is a really rough attempt at frame rate limiting. probably only any
// good if base performance of the machine is well above the required rate.

// FpsLimiter will trigger at the requested number of frames per second.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(InvalidRate, framesPerSecond)
	}

	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
		tick:            make(chan bool),
		quit:            make(chan bool),
	}

	go func() {
		// the sleep period is adjusted by how much the previous sleep
		// overran
		adjusted := lim.secondsPerFrame
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			time.Sleep(max(adjusted, 0))
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim, nil
}

// Rate returns the number of frames per second the limiter is set to.
func (lim *FpsLimiter) Rate() int {
	return lim.framesPerSecond
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Close stops the limiter. Wait() must not be called after Close().
func (lim *FpsLimiter) Close() {
	close(lim.quit)
}
