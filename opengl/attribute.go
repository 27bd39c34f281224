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

// Attribute describes how a vertex attribute reads its values from the
// currently bound array buffer.
type Attribute struct {
	// the attribute index. must match the layout location in the vertex shader
	Index uint32

	// number of values per vertex. between 1 and 4
	Components int32

	// element type of the values. FLOAT for all vertex data in this project
	Type Enum

	Normalized bool

	// size in bytes of one vertex
	Stride int32

	// start of this attribute within a vertex, in bytes
	Offset int
}

// ConfigureAttribute records into the currently bound vertex array that the
// attribute reads from the currently bound array buffer.
func ConfigureAttribute(fn Functions, a Attribute) {
	fn.VertexAttribPointer(a.Index, a.Components, a.Type, a.Normalized, a.Stride, a.Offset)
}

// EnableAttribute enables the attribute index in the currently bound vertex
// array.
func EnableAttribute(fn Functions, index uint32) {
	fn.EnableVertexAttribArray(index)
}

// DisableAttribute disables the attribute index in the currently bound vertex
// array.
func DisableAttribute(fn Functions, index uint32) {
	fn.DisableVertexAttribArray(index)
}

// Layout describes tightly interleaved float32 vertex data. Each entry is the
// number of components of the attribute with that index. For example, a
// vertex with a position and a texture coordinate:
//
//	Layout{3, 2}
type Layout []int32

const sizeOfFloat32 = 4

// Stride returns the size in bytes of one vertex.
func (l Layout) Stride() int32 {
	var s int32
	for _, c := range l {
		s += c
	}
	return s * sizeOfFloat32
}

// Attributes returns the list of Attribute values described by the layout.
func (l Layout) Attributes() []Attribute {
	attrs := make([]Attribute, 0, len(l))
	stride := l.Stride()

	var offset int
	for i, c := range l {
		attrs = append(attrs, Attribute{
			Index:      uint32(i),
			Components: c,
			Type:       FLOAT,
			Stride:     stride,
			Offset:     offset,
		})
		offset += int(c) * sizeOfFloat32
	}

	return attrs
}

// Apply configures and enables every attribute in the layout.
func (l Layout) Apply(fn Functions) {
	for _, a := range l.Attributes() {
		ConfigureAttribute(fn, a)
		EnableAttribute(fn, a.Index)
	}
}

// VertexCount returns the number of whole vertices in data.
func (l Layout) VertexCount(data []float32) int32 {
	n := l.Stride() / sizeOfFloat32
	if n == 0 {
		return 0
	}
	return int32(len(data)) / n
}
