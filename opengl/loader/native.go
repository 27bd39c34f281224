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

package loader

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/jetsetilly/learnopengl/opengl"
)

// native implements opengl.Functions by calling the go-gl bindings. The type
// has no state of its own. The bindings are initialised by Load().
type native struct{}

// ptr returns a pointer to the first element of the slice or nil if the slice
// is empty.
func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return gl.Ptr(b)
}

func (native) GenVertexArray() uint32 {
	var name uint32
	gl.GenVertexArrays(1, &name)
	return name
}

func (native) DeleteVertexArray(name uint32) {
	gl.DeleteVertexArrays(1, &name)
}

func (native) BindVertexArray(name uint32) {
	gl.BindVertexArray(name)
}

func (native) GenBuffer() uint32 {
	var name uint32
	gl.GenBuffers(1, &name)
	return name
}

func (native) DeleteBuffer(name uint32) {
	gl.DeleteBuffers(1, &name)
}

func (native) BindBuffer(target opengl.Enum, name uint32) {
	gl.BindBuffer(uint32(target), name)
}

func (native) BufferData(target opengl.Enum, data []byte, usage opengl.Enum) {
	gl.BufferData(uint32(target), len(data), ptr(data), uint32(usage))
}

func (native) VertexAttribPointer(index uint32, size int32, xtype opengl.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(xtype), normalized, stride, uintptr(offset))
}

func (native) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (native) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (native) CreateShader(xtype opengl.Enum) uint32 {
	return gl.CreateShader(uint32(xtype))
}

func (native) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csource, nil)
}

func (native) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (native) GetShaderi(shader uint32, pname opengl.Enum) int32 {
	var v int32
	gl.GetShaderiv(shader, uint32(pname), &v)
	return v
}

func (native) GetShaderInfoLog(shader uint32, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var written int32
	gl.GetShaderInfoLog(shader, int32(len(buf)), &written, &buf[0])
	return written
}

func (native) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (native) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (native) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (native) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (native) GetProgrami(program uint32, pname opengl.Enum) int32 {
	var v int32
	gl.GetProgramiv(program, uint32(pname), &v)
	return v
}

func (native) GetProgramInfoLog(program uint32, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var written int32
	gl.GetProgramInfoLog(program, int32(len(buf)), &written, &buf[0])
	return written
}

func (native) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (native) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (native) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (native) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (native) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (native) Uniform4f(location int32, x, y, z, w float32) {
	gl.Uniform4f(location, x, y, z, w)
}

func (native) UniformMatrix4fv(location int32, matrix [16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &matrix[0])
}

func (native) GenTexture() uint32 {
	var name uint32
	gl.GenTextures(1, &name)
	return name
}

func (native) DeleteTexture(name uint32) {
	gl.DeleteTextures(1, &name)
}

func (native) ActiveTexture(unit opengl.Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (native) BindTexture(target opengl.Enum, name uint32) {
	gl.BindTexture(uint32(target), name)
}

func (native) TexParameteri(target opengl.Enum, pname opengl.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (native) TexImage2D(target opengl.Enum, level int32, internalFormat opengl.Enum, width, height int32, format opengl.Enum, xtype opengl.Enum, pixels []byte) {
	gl.TexImage2D(uint32(target), level, int32(internalFormat), width, height, 0, uint32(format), uint32(xtype), ptr(pixels))
}

func (native) GenerateMipmap(target opengl.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (native) PixelStorei(pname opengl.Enum, param int32) {
	gl.PixelStorei(uint32(pname), param)
}

func (native) GenFramebuffer() uint32 {
	var name uint32
	gl.GenFramebuffers(1, &name)
	return name
}

func (native) DeleteFramebuffer(name uint32) {
	gl.DeleteFramebuffers(1, &name)
}

func (native) BindFramebuffer(target opengl.Enum, name uint32) {
	gl.BindFramebuffer(uint32(target), name)
}

func (native) FramebufferTexture2D(target opengl.Enum, attachment opengl.Enum, textarget opengl.Enum, texture uint32, level int32) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(textarget), texture, level)
}

func (native) CheckFramebufferStatus(target opengl.Enum) opengl.Enum {
	return opengl.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (native) ReadPixels(x, y, width, height int32, format opengl.Enum, xtype opengl.Enum, pixels []byte) {
	gl.ReadPixels(x, y, width, height, uint32(format), uint32(xtype), ptr(pixels))
}

func (native) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (native) Clear(mask opengl.Enum) {
	gl.Clear(uint32(mask))
}

func (native) Enable(capability opengl.Enum) {
	gl.Enable(uint32(capability))
}

func (native) Disable(capability opengl.Enum) {
	gl.Disable(uint32(capability))
}

func (native) IsEnabled(capability opengl.Enum) bool {
	return gl.IsEnabled(uint32(capability))
}

func (native) PolygonMode(face opengl.Enum, mode opengl.Enum) {
	gl.PolygonMode(uint32(face), uint32(mode))
}

func (native) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (native) Scissor(x, y, width, height int32) {
	gl.Scissor(x, y, width, height)
}

func (native) BlendEquation(mode opengl.Enum) {
	gl.BlendEquation(uint32(mode))
}

func (native) BlendEquationSeparate(modeRGB opengl.Enum, modeAlpha opengl.Enum) {
	gl.BlendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

func (native) BlendFunc(sfactor opengl.Enum, dfactor opengl.Enum) {
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (native) BlendFuncSeparate(srcRGB opengl.Enum, dstRGB opengl.Enum, srcAlpha opengl.Enum, dstAlpha opengl.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (native) DrawArrays(mode opengl.Enum, first int32, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (native) DrawElements(mode opengl.Enum, count int32, xtype opengl.Enum, offset int) {
	gl.DrawElementsWithOffset(uint32(mode), count, uint32(xtype), uintptr(offset))
}

func (native) GetIntegerv(pname opengl.Enum, data []int32) {
	if len(data) == 0 {
		return
	}
	gl.GetIntegerv(uint32(pname), &data[0])
}

func (native) GetString(name opengl.Enum) string {
	return gl.GoStr(gl.GetString(uint32(name)))
}

func (native) GetError() opengl.Enum {
	return opengl.Enum(gl.GetError())
}
