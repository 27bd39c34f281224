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

// Package renderer drives the per-frame loop of a lesson: input handling,
// camera update, clearing, texture binding, matrix uniforms and drawing.
//
// A Renderer is created from a Config that describes what to draw. All
// uniform locations are resolved when the Renderer is created so any
// mismatch between the program and the Config is reported before the first
// frame. Once running, frames never return an error.
//
// The window system is abstracted by the Platform interface. The main loop
// is simply:
//
//	rnd.Run(platform)
//
// which returns when the platform sends a quit event. Frame() can be used
// instead of Run() to step the loop one frame at a time.
//
// The following keys are handled by the renderer rather than the camera:
//
//	F1		toggle overlay
//	F2		toggle wireframe
//	F12		save screenshot
//	Escape	release the mouse (click the window to capture it again)
//
// The renderer MUST ONLY be used from the #mainthread.
package renderer
