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

// Package opengl is a thin resource management layer over the GL 3.3 Core
// API. It provides wrappers for vertex arrays, buffers, vertex attributes,
// shaders, shader programs, 2D textures and framebuffers.
//
// The package makes no GL calls directly. Every operation goes through an
// implementation of the Functions interface. The native implementation is
// returned by the opengl/loader package; the opengl/fakegl package provides a
// recording implementation that needs no GPU, which is useful for testing.
//
// Each wrapper type exclusively owns one GL name. The name is checked to be
// nonzero immediately after creation and is released exactly once by the
// Delete() function. Copying a wrapper value is not supported; always use the
// pointer returned by the constructor.
//
// Binding is context wide state and is not recorded by the wrappers. Where a
// function acts on "the currently bound" object it is the responsibility of
// the caller to have bound the correct object first.
//
// Errors returned by this package are curated errors. The pattern constants in
// errors.go can be used with curated.Is() and curated.Has() to identify them.
//
// All functions in this package MUST ONLY be called from the #mainthread.
package opengl
