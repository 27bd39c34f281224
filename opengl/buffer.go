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
	"unsafe"

	"github.com/jetsetilly/learnopengl/curated"
)

// BufferKind is the binding target of a Buffer.
type BufferKind int

// List of valid BufferKind values.
const (
	// vertex data for drawing
	ArrayBuffer BufferKind = iota

	// indexes of the vertices to use for drawing
	ElementBuffer
)

func (k BufferKind) String() string {
	switch k {
	case ArrayBuffer:
		return "array buffer"
	case ElementBuffer:
		return "element buffer"
	}
	return "unknown buffer"
}

func (k BufferKind) target() Enum {
	if k == ElementBuffer {
		return ELEMENT_ARRAY_BUFFER
	}
	return ARRAY_BUFFER
}

// Usage is the hint given to the driver when data is uploaded to a buffer.
type Usage int

// List of valid Usage values.
const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

func (u Usage) enum() Enum {
	switch u {
	case DynamicDraw:
		return DYNAMIC_DRAW
	case StreamDraw:
		return STREAM_DRAW
	}
	return STATIC_DRAW
}

// Buffer owns a buffer object name. A buffer is typed by the target it is
// bound to when it is used.
type Buffer struct {
	fn Functions
	id uint32
}

// NewBuffer allocates a new buffer object.
func NewBuffer(fn Functions) (*Buffer, error) {
	id := fn.GenBuffer()
	if id == 0 {
		return nil, curated.Errorf(ResourceAllocation, "buffer")
	}
	return &Buffer{fn: fn, id: id}, nil
}

// ID returns the GL name of the buffer. Returns zero if the buffer has been
// deleted.
func (b *Buffer) ID() uint32 {
	return b.id
}

// Bind this buffer to the target for the BufferKind.
func (b *Buffer) Bind(kind BufferKind) {
	b.fn.BindBuffer(kind.target(), b.id)
}

// UnbindBuffer clears the buffer binding for the BufferKind.
func UnbindBuffer(fn Functions, kind BufferKind) {
	fn.BindBuffer(kind.target(), 0)
}

// Upload copies data into the buffer currently bound to the BufferKind
// target. The caller must have bound the buffer first.
func Upload(fn Functions, kind BufferKind, data []byte, usage Usage) {
	fn.BufferData(kind.target(), data, usage.enum())
}

// Delete releases the buffer name. Calling Delete more than once has no
// effect.
func (b *Buffer) Delete() {
	if b.id == 0 {
		return
	}
	b.fn.DeleteBuffer(b.id)
	b.id = 0
}

// BufferElement are the types that can be used for vertex and index data.
type BufferElement interface {
	~float32 | ~uint32 | ~uint16 | ~uint8 | ~int32
}

// Bytes returns the slice as a slice of bytes suitable for Upload(). The
// returned slice shares memory with the original slice.
func Bytes[T BufferElement](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}
