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

package opengl

// Sentinel error patterns for errors returned by the package.
const (
	// the GL driver returned a zero name for a new object
	ResourceAllocation = "opengl: could not allocate %v"

	// the first value is the Stage of the shader, the second value is the
	// driver's info log
	ShaderCompile = "%v Compile Error: %v"

	// the value is the driver's info log
	ProgramLink = "Program Link Error: %v"

	// the uniform name could not be found in the linked program
	UniformMissing = "opengl: uniform not found: %v"

	// pixel data does not match the dimensions and format of the image
	InvalidPixels = "opengl: invalid pixel data: %v"

	// framebuffer status was not FRAMEBUFFER_COMPLETE
	FramebufferIncomplete = "opengl: framebuffer incomplete: %#x"
)
