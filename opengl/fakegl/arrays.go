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
	"maps"

	"github.com/jetsetilly/learnopengl/opengl"
)

// GenVertexArray implements the opengl.Functions interface.
func (g *GL) GenVertexArray() uint32 {
	g.record("GenVertexArray")
	name := g.allocate()
	if name != 0 {
		g.VertexArrays[name] = &VertexArray{
			Attributes: make(map[uint32]AttribPointer),
			Enabled:    make(map[uint32]bool),
		}
	}
	return name
}

// DeleteVertexArray implements the opengl.Functions interface.
func (g *GL) DeleteVertexArray(name uint32) {
	g.record("DeleteVertexArray", name)
	if va, ok := g.VertexArrays[name]; ok && !va.Deleted {
		va.Deleted = true
		if g.vertexArray == name {
			g.vertexArray = 0
		}
	}
}

// BindVertexArray implements the opengl.Functions interface.
func (g *GL) BindVertexArray(name uint32) {
	g.record("BindVertexArray", name)
	if name != 0 {
		if va, ok := g.VertexArrays[name]; !ok || va.Deleted {
			g.raise(opengl.INVALID_OPERATION)
			return
		}
	}
	g.vertexArray = name
}

// GenBuffer implements the opengl.Functions interface.
func (g *GL) GenBuffer() uint32 {
	g.record("GenBuffer")
	name := g.allocate()
	if name != 0 {
		g.Buffers[name] = &Buffer{}
	}
	return name
}

// DeleteBuffer implements the opengl.Functions interface.
func (g *GL) DeleteBuffer(name uint32) {
	g.record("DeleteBuffer", name)
	b, ok := g.Buffers[name]
	if !ok || b.Deleted {
		return
	}
	b.Deleted = true
	if g.arrayBuffer == name {
		g.arrayBuffer = 0
	}
	if g.boundElementBuffer() == name {
		g.setElementBuffer(0)
	}
}

// the element array buffer binding is part of the vertex array state.
func (g *GL) boundElementBuffer() uint32 {
	if va, ok := g.VertexArrays[g.vertexArray]; ok {
		return va.ElementBuffer
	}
	return g.elementBuffer
}

func (g *GL) setElementBuffer(name uint32) {
	if va, ok := g.VertexArrays[g.vertexArray]; ok {
		va.ElementBuffer = name
		return
	}
	g.elementBuffer = name
}

// BindBuffer implements the opengl.Functions interface.
func (g *GL) BindBuffer(target opengl.Enum, name uint32) {
	g.record("BindBuffer", target, name)
	if name != 0 {
		if b, ok := g.Buffers[name]; !ok || b.Deleted {
			g.raise(opengl.INVALID_OPERATION)
			return
		}
	}

	switch target {
	case opengl.ARRAY_BUFFER:
		g.arrayBuffer = name
	case opengl.ELEMENT_ARRAY_BUFFER:
		g.setElementBuffer(name)
	default:
		g.raise(opengl.INVALID_ENUM)
	}
}

// BufferData implements the opengl.Functions interface.
func (g *GL) BufferData(target opengl.Enum, data []byte, usage opengl.Enum) {
	g.record("BufferData", target, len(data), usage)

	var name uint32
	switch target {
	case opengl.ARRAY_BUFFER:
		name = g.arrayBuffer
	case opengl.ELEMENT_ARRAY_BUFFER:
		name = g.boundElementBuffer()
	default:
		g.raise(opengl.INVALID_ENUM)
		return
	}

	switch usage {
	case opengl.STATIC_DRAW, opengl.DYNAMIC_DRAW, opengl.STREAM_DRAW:
	default:
		g.raise(opengl.INVALID_ENUM)
		return
	}

	if name == 0 {
		g.raise(opengl.INVALID_OPERATION)
		return
	}

	b := g.Buffers[name]
	b.Data = append([]byte(nil), data...)
	b.Usage = usage
}

func (g *GL) currentVertexArray() (*VertexArray, bool) {
	va, ok := g.VertexArrays[g.vertexArray]
	if !ok || g.vertexArray == 0 {
		g.raise(opengl.INVALID_OPERATION)
		return nil, false
	}
	return va, true
}

// VertexAttribPointer implements the opengl.Functions interface.
func (g *GL) VertexAttribPointer(index uint32, size int32, xtype opengl.Enum, normalized bool, stride int32, offset int) {
	g.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)

	if index >= uint32(g.MaxVertexAttribs) || size < 1 || size > 4 || stride < 0 || offset < 0 {
		g.raise(opengl.INVALID_VALUE)
		return
	}

	switch xtype {
	case opengl.BYTE, opengl.UNSIGNED_BYTE, opengl.SHORT, opengl.UNSIGNED_SHORT,
		opengl.INT, opengl.UNSIGNED_INT, opengl.FLOAT:
	default:
		g.raise(opengl.INVALID_ENUM)
		return
	}

	va, ok := g.currentVertexArray()
	if !ok {
		return
	}

	if g.arrayBuffer == 0 {
		g.raise(opengl.INVALID_OPERATION)
		return
	}

	va.Attributes[index] = AttribPointer{
		Size:       size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
		Buffer:     g.arrayBuffer,
	}
}

// EnableVertexAttribArray implements the opengl.Functions interface.
func (g *GL) EnableVertexAttribArray(index uint32) {
	g.record("EnableVertexAttribArray", index)
	if index >= uint32(g.MaxVertexAttribs) {
		g.raise(opengl.INVALID_VALUE)
		return
	}
	if va, ok := g.currentVertexArray(); ok {
		va.Enabled[index] = true
	}
}

// DisableVertexAttribArray implements the opengl.Functions interface.
func (g *GL) DisableVertexAttribArray(index uint32) {
	g.record("DisableVertexAttribArray", index)
	if index >= uint32(g.MaxVertexAttribs) {
		g.raise(opengl.INVALID_VALUE)
		return
	}
	if va, ok := g.currentVertexArray(); ok {
		va.Enabled[index] = false
	}
}

// ClearColor implements the opengl.Functions interface.
func (g *GL) ClearColor(r, gr, b, a float32) {
	g.record("ClearColor", r, gr, b, a)
	g.clearColor = [4]float32{r, gr, b, a}
}

// Clear implements the opengl.Functions interface.
func (g *GL) Clear(mask opengl.Enum) {
	g.record("Clear", mask)

	if mask&^(opengl.COLOR_BUFFER_BIT|opengl.DEPTH_BUFFER_BIT) != 0 {
		g.raise(opengl.INVALID_VALUE)
		return
	}

	g.Clears = append(g.Clears, Clear{
		Mask:        mask,
		Color:       g.clearColor,
		Framebuffer: g.framebuffer,
	})

	if mask&opengl.COLOR_BUFFER_BIT == 0 {
		return
	}

	c := [4]byte{
		colorByte(g.clearColor[0]),
		colorByte(g.clearColor[1]),
		colorByte(g.clearColor[2]),
		colorByte(g.clearColor[3]),
	}

	if g.framebuffer == 0 {
		fill(g.screenStore(), c)
		return
	}

	if tex, ok := g.attachment(g.framebuffer); ok {
		fill(tex.Store, c)
		conform(tex.Store, tex.InternalFormat)
	}
}

// validDraw checks the state required for a draw call.
func (g *GL) validDraw(mode opengl.Enum, count int32) bool {
	if mode != opengl.TRIANGLES {
		g.raise(opengl.INVALID_ENUM)
		return false
	}
	if count < 0 {
		g.raise(opengl.INVALID_VALUE)
		return false
	}
	if _, ok := g.currentVertexArray(); !ok {
		return false
	}
	if p, ok := g.Programs[g.program]; !ok || !p.Linked {
		g.raise(opengl.INVALID_OPERATION)
		return false
	}
	if g.framebuffer != 0 {
		if _, ok := g.attachment(g.framebuffer); !ok {
			g.raise(opengl.INVALID_OPERATION)
			return false
		}
	}
	return true
}

func (g *GL) snapshot(d Draw) Draw {
	d.Program = g.program
	d.VertexArray = g.vertexArray
	d.Framebuffer = g.framebuffer
	d.DepthTest = g.capabilities[opengl.DEPTH_TEST]
	d.PolygonMode = g.polygonMode

	d.Textures = make(map[uint32]uint32)
	for u, t := range g.units {
		if t != 0 {
			d.Textures[u] = t
		}
	}

	d.Uniforms = maps.Clone(g.Programs[g.program].Values)

	return d
}

// DrawArrays implements the opengl.Functions interface.
func (g *GL) DrawArrays(mode opengl.Enum, first int32, count int32) {
	g.record("DrawArrays", mode, first, count)
	if first < 0 {
		g.raise(opengl.INVALID_VALUE)
		return
	}
	if !g.validDraw(mode, count) {
		return
	}
	g.Draws = append(g.Draws, g.snapshot(Draw{
		Mode:  mode,
		First: first,
		Count: count,
	}))
}

// DrawElements implements the opengl.Functions interface.
func (g *GL) DrawElements(mode opengl.Enum, count int32, xtype opengl.Enum, offset int) {
	g.record("DrawElements", mode, count, xtype, offset)

	var size int
	switch xtype {
	case opengl.UNSIGNED_BYTE:
		size = 1
	case opengl.UNSIGNED_SHORT:
		size = 2
	case opengl.UNSIGNED_INT:
		size = 4
	default:
		g.raise(opengl.INVALID_ENUM)
		return
	}

	if !g.validDraw(mode, count) {
		return
	}

	eb := g.boundElementBuffer()
	if eb == 0 || offset < 0 || offset+int(count)*size > len(g.Buffers[eb].Data) {
		g.raise(opengl.INVALID_OPERATION)
		return
	}

	g.Draws = append(g.Draws, g.snapshot(Draw{
		Mode:    mode,
		Count:   count,
		Indexed: true,
		Type:    xtype,
		Offset:  offset,
	}))
}
