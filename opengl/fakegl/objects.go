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

import "github.com/jetsetilly/learnopengl/opengl"

// AttribPointer is the recorded state of a vertex attribute.
type AttribPointer struct {
	Size       int32
	Type       opengl.Enum
	Normalized bool
	Stride     int32
	Offset     int

	// the array buffer bound when the attribute was configured
	Buffer uint32
}

// VertexArray is the emulated state of a vertex array object.
type VertexArray struct {
	Attributes    map[uint32]AttribPointer
	Enabled       map[uint32]bool
	ElementBuffer uint32
	Deleted       bool
}

// Buffer is the emulated state of a buffer object.
type Buffer struct {
	Data    []byte
	Usage   opengl.Enum
	Deleted bool
}

// Shader is the emulated state of a shader object.
type Shader struct {
	Type     opengl.Enum
	Source   string
	Compiled bool
	Log      string

	// a shader marked for deletion remains alive while it is attached
	Deleted bool
}

// Program is the emulated state of a program object.
type Program struct {
	Attached []uint32
	Linked   bool
	Log      string

	// uniform name to location, assigned on successful link
	Uniforms map[string]int32

	// most recent value set for each location. the value is one of int32,
	// float32, [4]float32 or [16]float32
	Values map[int32]any

	Deleted bool
}

// Texture is the emulated state of a texture object.
type Texture struct {
	Params map[opengl.Enum]int32

	Width          int32
	Height         int32
	InternalFormat opengl.Enum

	// format of the most recent upload
	Format opengl.Enum

	// UNPACK_ALIGNMENT at the time of the most recent upload
	UnpackAlignment int32

	// texture data is stored as RGBA regardless of the internal format.
	// components that are not present in the internal format are stored as
	// they would be returned by the driver (zero for color, 255 for alpha)
	Store []byte

	Mipmaps bool
	Deleted bool
}

// Framebuffer is the emulated state of a framebuffer object.
type Framebuffer struct {
	Attachment uint32
	Depth      uint32
	Deleted    bool
}

// Draw is a record of a draw call and the state at the time of the draw.
type Draw struct {
	Mode    opengl.Enum
	First   int32
	Count   int32
	Indexed bool
	Type    opengl.Enum
	Offset  int

	Program     uint32
	VertexArray uint32
	Framebuffer uint32
	DepthTest   bool
	PolygonMode opengl.Enum

	// texture unit to texture name
	Textures map[uint32]uint32

	// copy of the program's uniform values
	Uniforms map[int32]any
}

// Clear is a record of a call to Clear().
type Clear struct {
	Mask        opengl.Enum
	Color       [4]float32
	Framebuffer uint32
}

// Call is a record of any call made to the GL.
type Call struct {
	Name string
	Args []any
}
