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

package fakegl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jetsetilly/learnopengl/opengl"
)

var uniformDecl = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*;`)

// CreateShader implements the opengl.Functions interface.
func (g *GL) CreateShader(xtype opengl.Enum) uint32 {
	g.record("CreateShader", xtype)
	switch xtype {
	case opengl.VERTEX_SHADER, opengl.FRAGMENT_SHADER:
	default:
		g.raise(opengl.INVALID_ENUM)
		return 0
	}
	name := g.allocate()
	if name != 0 {
		g.Shaders[name] = &Shader{Type: xtype}
	}
	return name
}

func (g *GL) shader(name uint32) (*Shader, bool) {
	sh, ok := g.Shaders[name]
	if !ok || sh.Deleted {
		g.raise(opengl.INVALID_VALUE)
		return nil, false
	}
	return sh, true
}

// ShaderSource implements the opengl.Functions interface.
func (g *GL) ShaderSource(shader uint32, source string) {
	g.record("ShaderSource", shader, source)
	if sh, ok := g.shader(shader); ok {
		sh.Source = source
	}
}

// CompileShader implements the opengl.Functions interface.
func (g *GL) CompileShader(shader uint32) {
	g.record("CompileShader", shader)
	sh, ok := g.shader(shader)
	if !ok {
		return
	}

	sh.Compiled = true
	sh.Log = ""

	for i, l := range strings.Split(sh.Source, "\n") {
		l = strings.TrimSpace(l)
		if msg, ok := strings.CutPrefix(l, "#error"); ok {
			sh.Compiled = false
			sh.Log = fmt.Sprintf("0:%d(1): error: %s", i+1, strings.TrimSpace(msg))
			return
		}
	}

	if !strings.Contains(sh.Source, "main") {
		sh.Compiled = false
		sh.Log = "0:1(1): error: no main function"
	}
}

// GetShaderi implements the opengl.Functions interface.
func (g *GL) GetShaderi(shader uint32, pname opengl.Enum) int32 {
	g.record("GetShaderi", shader, pname)
	sh, ok := g.Shaders[shader]
	if !ok {
		g.raise(opengl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case opengl.COMPILE_STATUS:
		if sh.Compiled {
			return 1
		}
		return 0
	case opengl.INFO_LOG_LENGTH:
		return logLength(sh.Log)
	}
	g.raise(opengl.INVALID_ENUM)
	return 0
}

// GetShaderInfoLog implements the opengl.Functions interface.
func (g *GL) GetShaderInfoLog(shader uint32, buf []byte) int32 {
	g.record("GetShaderInfoLog", shader, len(buf))
	sh, ok := g.Shaders[shader]
	if !ok {
		g.raise(opengl.INVALID_VALUE)
		return 0
	}
	return copyLog(buf, sh.Log)
}

// DeleteShader implements the opengl.Functions interface.
func (g *GL) DeleteShader(shader uint32) {
	g.record("DeleteShader", shader)
	if sh, ok := g.Shaders[shader]; ok {
		sh.Deleted = true
	}
}

// CreateProgram implements the opengl.Functions interface.
func (g *GL) CreateProgram() uint32 {
	g.record("CreateProgram")
	name := g.allocate()
	if name != 0 {
		g.Programs[name] = &Program{
			Uniforms: make(map[string]int32),
			Values:   make(map[int32]any),
		}
	}
	return name
}

func (g *GL) programObject(name uint32) (*Program, bool) {
	p, ok := g.Programs[name]
	if !ok || p.Deleted {
		g.raise(opengl.INVALID_VALUE)
		return nil, false
	}
	return p, true
}

// AttachShader implements the opengl.Functions interface.
func (g *GL) AttachShader(program uint32, shader uint32) {
	g.record("AttachShader", program, shader)
	p, ok := g.programObject(program)
	if !ok {
		return
	}
	if _, ok := g.shader(shader); !ok {
		return
	}
	for _, a := range p.Attached {
		if a == shader {
			g.raise(opengl.INVALID_OPERATION)
			return
		}
	}
	p.Attached = append(p.Attached, shader)
}

// LinkProgram implements the opengl.Functions interface.
func (g *GL) LinkProgram(program uint32) {
	g.record("LinkProgram", program)
	p, ok := g.programObject(program)
	if !ok {
		return
	}

	p.Linked = false
	p.Log = ""
	clear(p.Uniforms)
	clear(p.Values)

	if g.FailLink {
		p.Log = g.LinkLog
		return
	}

	var vert, frag bool
	for _, a := range p.Attached {
		sh := g.Shaders[a]
		if !sh.Compiled {
			p.Log = "error: linking with uncompiled/unspecialized shader"
			return
		}
		vert = vert || sh.Type == opengl.VERTEX_SHADER
		frag = frag || sh.Type == opengl.FRAGMENT_SHADER
	}

	if !vert || !frag {
		p.Log = "error: program must have a vertex shader and a fragment shader"
		return
	}

	var loc int32
	for _, a := range p.Attached {
		for _, m := range uniformDecl.FindAllStringSubmatch(g.Shaders[a].Source, -1) {
			if _, ok := p.Uniforms[m[1]]; !ok {
				p.Uniforms[m[1]] = loc
				loc++
			}
		}
	}

	p.Linked = true
}

// GetProgrami implements the opengl.Functions interface.
func (g *GL) GetProgrami(program uint32, pname opengl.Enum) int32 {
	g.record("GetProgrami", program, pname)
	p, ok := g.Programs[program]
	if !ok {
		g.raise(opengl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case opengl.LINK_STATUS:
		if p.Linked {
			return 1
		}
		return 0
	case opengl.INFO_LOG_LENGTH:
		return logLength(p.Log)
	}
	g.raise(opengl.INVALID_ENUM)
	return 0
}

// GetProgramInfoLog implements the opengl.Functions interface.
func (g *GL) GetProgramInfoLog(program uint32, buf []byte) int32 {
	g.record("GetProgramInfoLog", program, len(buf))
	p, ok := g.Programs[program]
	if !ok {
		g.raise(opengl.INVALID_VALUE)
		return 0
	}
	return copyLog(buf, p.Log)
}

// UseProgram implements the opengl.Functions interface.
func (g *GL) UseProgram(program uint32) {
	g.record("UseProgram", program)
	if program != 0 {
		p, ok := g.programObject(program)
		if !ok {
			return
		}
		if !p.Linked {
			g.raise(opengl.INVALID_OPERATION)
			return
		}
	}
	g.program = program
}

// DeleteProgram implements the opengl.Functions interface.
func (g *GL) DeleteProgram(program uint32) {
	g.record("DeleteProgram", program)
	if p, ok := g.Programs[program]; ok {
		p.Deleted = true
	}
}

// GetUniformLocation implements the opengl.Functions interface.
func (g *GL) GetUniformLocation(program uint32, name string) int32 {
	g.record("GetUniformLocation", program, name)
	p, ok := g.programObject(program)
	if !ok {
		return -1
	}
	if !p.Linked {
		g.raise(opengl.INVALID_OPERATION)
		return -1
	}
	if loc, ok := p.Uniforms[name]; ok {
		return loc
	}
	return -1
}

// setUniform stores the value in the current program.
func (g *GL) setUniform(location int32, v any) {
	if location == -1 {
		return
	}
	p, ok := g.Programs[g.program]
	if !ok || g.program == 0 {
		g.raise(opengl.INVALID_OPERATION)
		return
	}
	for _, loc := range p.Uniforms {
		if loc == location {
			p.Values[location] = v
			return
		}
	}
	g.raise(opengl.INVALID_OPERATION)
}

// Uniform1i implements the opengl.Functions interface.
func (g *GL) Uniform1i(location int32, v int32) {
	g.record("Uniform1i", location, v)
	g.setUniform(location, v)
}

// Uniform1f implements the opengl.Functions interface.
func (g *GL) Uniform1f(location int32, v float32) {
	g.record("Uniform1f", location, v)
	g.setUniform(location, v)
}

// Uniform4f implements the opengl.Functions interface.
func (g *GL) Uniform4f(location int32, x, y, z, w float32) {
	g.record("Uniform4f", location, x, y, z, w)
	g.setUniform(location, [4]float32{x, y, z, w})
}

// UniformMatrix4fv implements the opengl.Functions interface.
func (g *GL) UniformMatrix4fv(location int32, matrix [16]float32) {
	g.record("UniformMatrix4fv", location, matrix)
	g.setUniform(location, matrix)
}

// Uniform returns the value most recently set for the named uniform in the
// program. The ok value is false if the uniform does not exist or has not been
// set.
func (g *GL) Uniform(program uint32, name string) (v any, ok bool) {
	p, ok := g.Programs[program]
	if !ok {
		return nil, false
	}
	loc, ok := p.Uniforms[name]
	if !ok {
		return nil, false
	}
	v, ok = p.Values[loc]
	return v, ok
}

// the reported length of an info log includes the terminating NUL.
func logLength(log string) int32 {
	if len(log) == 0 {
		return 0
	}
	return int32(len(log) + 1)
}

// copyLog copies as much of the log into buf as will fit, leaving room for a
// terminating NUL. The return value is the number of bytes written, not
// including the NUL.
func copyLog(buf []byte, log string) int32 {
	if len(buf) == 0 {
		return 0
	}
	n := copy(buf[:len(buf)-1], log)
	buf[n] = 0
	return int32(n)
}
