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
)

// MatrixUniforms sets the model, view and projection matrices of a program.
//
// A program can either declare a single "transform" uniform, which receives
// the combined projection * view * model matrix, or the three uniforms
// "model", "view" and "projection". The shape is detected when the
// MatrixUniforms instance is created.
type MatrixUniforms struct {
	program *Program

	combined  bool
	transform int32

	model      int32
	view       int32
	projection int32

	// the most recent view and projection matrices. used to build the
	// transform matrix in combined mode
	viewMatrix       mgl32.Mat4
	projectionMatrix mgl32.Mat4
}

// NewMatrixUniforms resolves the matrix uniforms of the program. An error is
// returned if the program declares neither "transform" nor all of "model",
// "view" and "projection".
func NewMatrixUniforms(program *Program) (*MatrixUniforms, error) {
	mu := &MatrixUniforms{
		program:          program,
		viewMatrix:       mgl32.Ident4(),
		projectionMatrix: mgl32.Ident4(),
	}

	var err error

	if mu.transform, err = program.UniformLocation("transform"); err == nil {
		mu.combined = true
		return mu, nil
	}

	if mu.model, err = program.UniformLocation("model"); err != nil {
		return nil, err
	}
	if mu.view, err = program.UniformLocation("view"); err != nil {
		return nil, err
	}
	if mu.projection, err = program.UniformLocation("projection"); err != nil {
		return nil, err
	}

	return mu, nil
}

// Combined returns true if the program uses the single "transform" uniform.
func (mu *MatrixUniforms) Combined() bool {
	return mu.combined
}

// SetViewProjection sets the view and projection matrices. In combined mode
// the matrices are remembered and used by the next call to SetModel(). The
// program must be in use.
func (mu *MatrixUniforms) SetViewProjection(view mgl32.Mat4, projection mgl32.Mat4) {
	mu.viewMatrix = view
	mu.projectionMatrix = projection
	if !mu.combined {
		mu.program.SetMat4(mu.view, view)
		mu.program.SetMat4(mu.projection, projection)
	}
}

// SetModel sets the model matrix. The program must be in use.
func (mu *MatrixUniforms) SetModel(model mgl32.Mat4) {
	if mu.combined {
		mu.program.SetMat4(mu.transform, mu.projectionMatrix.Mul4(mu.viewMatrix).Mul4(model))
		return
	}
	mu.program.SetMat4(mu.model, model)
}

// Set all three matrices. The program must be in use.
func (mu *MatrixUniforms) Set(model mgl32.Mat4, view mgl32.Mat4, projection mgl32.Mat4) {
	mu.SetViewProjection(view, projection)
	mu.SetModel(model)
}
