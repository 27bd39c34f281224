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

// Functions is the set of GL entry points used by the package. The function
// shapes are friendlier to Go than the C API: strings rather than C strings,
// byte slices rather than pointers and single names rather than arrays of
// names.
//
// A nil or empty slice may be passed wherever a slice of pixel or buffer data
// is expected.
type Functions interface {
	GenVertexArray() uint32
	DeleteVertexArray(name uint32)
	BindVertexArray(name uint32)

	GenBuffer() uint32
	DeleteBuffer(name uint32)
	BindBuffer(target Enum, name uint32)
	BufferData(target Enum, data []byte, usage Enum)

	VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)

	CreateShader(xtype Enum) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int32

	// the returned value is the number of bytes written to the buffer, not
	// including any terminating NUL
	GetShaderInfoLog(shader uint32, buf []byte) int32
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int32

	// the returned value is the number of bytes written to the buffer, not
	// including any terminating NUL
	GetProgramInfoLog(program uint32, buf []byte) int32
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform4f(location int32, x, y, z, w float32)

	// matrix is in column-major order
	UniformMatrix4fv(location int32, matrix [16]float32)

	GenTexture() uint32
	DeleteTexture(name uint32)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, name uint32)
	TexParameteri(target Enum, pname Enum, param int32)
	TexImage2D(target Enum, level int32, internalFormat Enum, width, height int32, format Enum, xtype Enum, pixels []byte)
	GenerateMipmap(target Enum)
	PixelStorei(pname Enum, param int32)

	GenFramebuffer() uint32
	DeleteFramebuffer(name uint32)
	BindFramebuffer(target Enum, name uint32)
	FramebufferTexture2D(target Enum, attachment Enum, textarget Enum, texture uint32, level int32)
	CheckFramebufferStatus(target Enum) Enum
	ReadPixels(x, y, width, height int32, format Enum, xtype Enum, pixels []byte)

	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Enable(capability Enum)
	Disable(capability Enum)
	IsEnabled(capability Enum) bool
	PolygonMode(face Enum, mode Enum)
	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)
	BlendEquation(mode Enum)
	BlendEquationSeparate(modeRGB Enum, modeAlpha Enum)
	BlendFunc(sfactor Enum, dfactor Enum)
	BlendFuncSeparate(srcRGB Enum, dstRGB Enum, srcAlpha Enum, dstAlpha Enum)

	DrawArrays(mode Enum, first int32, count int32)

	// offset is the byte offset into the bound element buffer
	DrawElements(mode Enum, count int32, xtype Enum, offset int)

	// the data slice must be large enough for the number of values returned
	// by the query
	GetIntegerv(pname Enum, data []int32)
	GetString(name Enum) string
	GetError() Enum
}
