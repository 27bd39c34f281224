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

// VertexArray owns a vertex array object name. The wrapper records no layout
// information. Attribute state lives in the GL vertex array object itself.
type VertexArray struct {
	fn Functions
	id uint32
}

// NewVertexArray allocates a new vertex array object.
func NewVertexArray(fn Functions) (*VertexArray, error) {
	id := fn.GenVertexArray()
	if id == 0 {
		return nil, curated.Errorf(ResourceAllocation, "vertex array")
	}
	return &VertexArray{fn: fn, id: id}, nil
}

// ID returns the GL name of the vertex array. Returns zero if the vertex array
// has been deleted.
func (va *VertexArray) ID() uint32 {
	return va.id
}

// Bind makes this the current vertex array object. This is a context wide
// effect and all vertex attribute functions now operate on this object.
func (va *VertexArray) Bind() {
	va.fn.BindVertexArray(va.id)
}

// UnbindVertexArray clears the current vertex array object binding.
func UnbindVertexArray(fn Functions) {
	fn.BindVertexArray(0)
}

// Delete releases the vertex array name. Calling Delete more than once has
// no effect.
func (va *VertexArray) Delete() {
	if va.id == 0 {
		return
	}
	va.fn.DeleteVertexArray(va.id)
	va.id = 0
}
