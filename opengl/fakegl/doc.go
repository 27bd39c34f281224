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

// Package fakegl is a deterministic, in-memory implementation of the
// opengl.Functions interface. It needs no GPU and no window and so is useful
// for testing code that uses the opengl package.
//
// Every call is recorded in order and the object state (buffers, textures,
// shaders, programs, etc.) that a real driver would hold is emulated closely
// enough to check that the binding contracts of the opengl package are
// honoured. Misuse raises a GL error exactly as a real driver would and the
// errors are available through GetError().
//
// Names are allocated from 1 upwards. Setting FailAllocation causes every
// Gen/Create function to return the reserved name 0.
//
// Shader compilation fails if the source contains an "#error" directive. The
// info log names the line of the directive and the text that follows it.
// Linking fails if any attached shader has not compiled successfully or if
// FailLink is set. Uniform locations are assigned, in order of declaration,
// for every "uniform <type> <name>;" found in the attached sources.
//
// The fake does not rasterise. Draw calls are recorded with a snapshot of the
// bindings and uniform values at the time of the draw. Clearing a framebuffer
// fills its color attachment with the clear color and reading pixels returns
// the contents of the color attachment, which means texture data can be read
// back through a framebuffer exactly as it would be with a real driver.
package fakegl
