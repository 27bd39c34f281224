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

// Package loader binds the opengl.Functions interface to a real GL driver
// using the go-gl bindings for OpenGL 3.3 Core.
//
// The GL context must have been created and made current before Load() is
// called. The function that resolves entry points is provided by the window
// system:
//
//	fn, err := loader.Load(sdl.GL_GetProcAddress)
//
// The functions of the returned value MUST ONLY be called from the #mainthread.
package loader
