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

import "github.com/jetsetilly/learnopengl/curated"

// Stage is the pipeline stage of a Shader.
type Stage int

// List of valid Stage values.
const (
	// vertex shaders determine the position of geometry on the screen
	VertexStage Stage = iota

	// fragment shaders determine the color output of geometry
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "Vertex"
	case FragmentStage:
		return "Fragment"
	}
	return "Unknown"
}

func (s Stage) enum() Enum {
	if s == FragmentStage {
		return FRAGMENT_SHADER
	}
	return VERTEX_SHADER
}

// Shader owns a shader object name. A shader is transient: it is compiled,
// attached to a program and then deleted. The driver keeps the shader alive
// until it is no longer attached to any program.
type Shader struct {
	fn    Functions
	id    uint32
	stage Stage
}

// NewShader allocates a new shader object for the stage. Prefer
// ShaderFromSource() or ProgramFromVertFrag().
func NewShader(fn Functions, stage Stage) (*Shader, error) {
	id := fn.CreateShader(stage.enum())
	if id == 0 {
		return nil, curated.Errorf(ResourceAllocation, "shader")
	}
	return &Shader{fn: fn, id: id, stage: stage}, nil
}

// ID returns the GL name of the shader. Returns zero if the shader has been
// deleted.
func (sh *Shader) ID() uint32 {
	return sh.id
}

// Stage returns the pipeline stage of the shader.
func (sh *Shader) Stage() Stage {
	return sh.stage
}

// SetSource replaces the shader source.
func (sh *Shader) SetSource(src string) {
	sh.fn.ShaderSource(sh.id, src)
}

// Compile the shader from the current source.
func (sh *Shader) Compile() {
	sh.fn.CompileShader(sh.id)
}

// CompileSuccess returns true if the most recent Compile() was successful.
func (sh *Shader) CompileSuccess() bool {
	return sh.fn.GetShaderi(sh.id, COMPILE_STATUS) != 0
}

// InfoLog returns the info log of the most recent compilation.
func (sh *Shader) InfoLog() string {
	return InfoLog(sh.fn, ShaderLog, sh.id)
}

// Delete marks the shader for deletion. Calling Delete more than once has no
// effect.
func (sh *Shader) Delete() {
	if sh.id == 0 {
		return
	}
	sh.fn.DeleteShader(sh.id)
	sh.id = 0
}

// ShaderFromSource creates and compiles a shader of the stage. If compilation
// fails the shader is deleted and the returned error contains the info log.
func ShaderFromSource(fn Functions, stage Stage, src string) (*Shader, error) {
	sh, err := NewShader(fn, stage)
	if err != nil {
		return nil, err
	}

	sh.SetSource(src)
	sh.Compile()

	if !sh.CompileSuccess() {
		log := sh.InfoLog()
		sh.Delete()
		return nil, curated.Errorf(ShaderCompile, stage, log)
	}

	return sh, nil
}
