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

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/learnopengl/curated"
)

// Program owns a shader program name.
type Program struct {
	fn Functions
	id uint32
}

// NewProgram allocates a new program object. Prefer ProgramFromVertFrag().
func NewProgram(fn Functions) (*Program, error) {
	id := fn.CreateProgram()
	if id == 0 {
		return nil, curated.Errorf(ResourceAllocation, "program")
	}
	return &Program{fn: fn, id: id}, nil
}

// ID returns the GL name of the program. Returns zero if the program has been
// deleted.
func (p *Program) ID() uint32 {
	return p.id
}

// Attach a compiled shader to the program.
func (p *Program) Attach(sh *Shader) {
	p.fn.AttachShader(p.id, sh.id)
}

// Link the attached shaders into a usable program.
func (p *Program) Link() {
	p.fn.LinkProgram(p.id)
}

// LinkSuccess returns true if the most recent Link() was successful.
func (p *Program) LinkSuccess() bool {
	return p.fn.GetProgrami(p.id, LINK_STATUS) != 0
}

// Use makes this the current program for drawing and for the uniform setter
// functions.
func (p *Program) Use() {
	p.fn.UseProgram(p.id)
}

// UnuseProgram clears the current program.
func UnuseProgram(fn Functions) {
	fn.UseProgram(0)
}

// InfoLog returns the info log of the most recent link.
func (p *Program) InfoLog() string {
	return InfoLog(p.fn, ProgramLog, p.id)
}

// Delete marks the program for deletion. If the program is in use it will
// not be deleted by the driver until it is no longer in use. Calling Delete
// more than once has no effect.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	p.fn.DeleteProgram(p.id)
	p.id = 0
}

// ProgramFromVertFrag compiles the vertex and fragment sources and links them
// into a new program. The shader objects are deleted once the program has
// been linked. On any error every object created is released.
//
// Compilation errors have the pattern ShaderCompile. Link errors have the
// pattern ProgramLink.
func ProgramFromVertFrag(fn Functions, vert string, frag string) (*Program, error) {
	p, err := NewProgram(fn)
	if err != nil {
		return nil, err
	}

	vs, err := ShaderFromSource(fn, VertexStage, vert)
	if err != nil {
		p.Delete()
		return nil, err
	}

	fs, err := ShaderFromSource(fn, FragmentStage, frag)
	if err != nil {
		vs.Delete()
		p.Delete()
		return nil, err
	}

	p.Attach(vs)
	p.Attach(fs)
	p.Link()

	// shaders remain alive until they are detached when the program is
	// deleted
	vs.Delete()
	fs.Delete()

	if !p.LinkSuccess() {
		log := p.InfoLog()
		p.Delete()
		return nil, curated.Errorf(ProgramLink, log)
	}

	return p, nil
}

// UniformLocation returns the location of the named uniform. A uniform that
// can't be found, including one that has been optimised out by the driver,
// is an error.
func (p *Program) UniformLocation(name string) (int32, error) {
	loc := p.fn.GetUniformLocation(p.id, name)
	if loc < 0 {
		return -1, curated.Errorf(UniformMissing, name)
	}
	return loc, nil
}

// The uniform setters act on the program that is currently in use. They do
// not call Use().

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(loc int32, v int32) {
	p.fn.Uniform1i(loc, v)
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(loc int32, v float32) {
	p.fn.Uniform1f(loc, v)
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(loc int32, x, y, z, w float32) {
	p.fn.Uniform4f(loc, x, y, z, w)
}

// SetMat4 sets a mat4 uniform. The mgl32.Mat4 type is column-major, as
// expected by GL.
func (p *Program) SetMat4(loc int32, m mgl32.Mat4) {
	p.fn.UniformMatrix4fv(loc, m)
}
