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
	"github.com/jetsetilly/learnopengl/opengl"
)

// GenTexture implements the opengl.Functions interface.
func (g *GL) GenTexture() uint32 {
	g.record("GenTexture")
	name := g.allocate()
	if name != 0 {
		g.Textures[name] = &Texture{
			Params: map[opengl.Enum]int32{
				opengl.TEXTURE_WRAP_S:     int32(opengl.REPEAT),
				opengl.TEXTURE_WRAP_T:     int32(opengl.REPEAT),
				opengl.TEXTURE_MIN_FILTER: int32(opengl.NEAREST_MIPMAP_LINEAR),
				opengl.TEXTURE_MAG_FILTER: int32(opengl.LINEAR),
			},
		}
	}
	return name
}

// DeleteTexture implements the opengl.Functions interface.
func (g *GL) DeleteTexture(name uint32) {
	g.record("DeleteTexture", name)
	tex, ok := g.Textures[name]
	if !ok || tex.Deleted {
		return
	}
	tex.Deleted = true
	for u, t := range g.units {
		if t == name {
			g.units[u] = 0
		}
	}
	if fb, ok := g.Framebuffers[g.framebuffer]; ok {
		if fb.Attachment == name {
			fb.Attachment = 0
		}
		if fb.Depth == name {
			fb.Depth = 0
		}
	}
}

// ActiveTexture implements the opengl.Functions interface.
func (g *GL) ActiveTexture(unit opengl.Enum) {
	g.record("ActiveTexture", unit)
	if unit < opengl.TEXTURE0 || unit >= opengl.TEXTURE0+opengl.Enum(g.MaxTextureUnits) {
		g.raise(opengl.INVALID_ENUM)
		return
	}
	g.activeUnit = uint32(unit - opengl.TEXTURE0)
}

// BindTexture implements the opengl.Functions interface.
func (g *GL) BindTexture(target opengl.Enum, name uint32) {
	g.record("BindTexture", target, name)
	if target != opengl.TEXTURE_2D {
		g.raise(opengl.INVALID_ENUM)
		return
	}
	if name != 0 {
		if tex, ok := g.Textures[name]; !ok || tex.Deleted {
			g.raise(opengl.INVALID_OPERATION)
			return
		}
	}
	g.units[g.activeUnit] = name
}

// boundTexture returns the texture bound to the active unit.
func (g *GL) boundTexture(target opengl.Enum) (*Texture, bool) {
	if target != opengl.TEXTURE_2D {
		g.raise(opengl.INVALID_ENUM)
		return nil, false
	}
	name := g.units[g.activeUnit]
	if name == 0 {
		g.raise(opengl.INVALID_OPERATION)
		return nil, false
	}
	return g.Textures[name], true
}

// TexParameteri implements the opengl.Functions interface.
func (g *GL) TexParameteri(target opengl.Enum, pname opengl.Enum, param int32) {
	g.record("TexParameteri", target, pname, param)

	var valid []opengl.Enum
	switch pname {
	case opengl.TEXTURE_WRAP_S, opengl.TEXTURE_WRAP_T:
		valid = []opengl.Enum{opengl.REPEAT, opengl.MIRRORED_REPEAT, opengl.CLAMP_TO_EDGE, opengl.CLAMP_TO_BORDER}
	case opengl.TEXTURE_MAG_FILTER:
		valid = []opengl.Enum{opengl.NEAREST, opengl.LINEAR}
	case opengl.TEXTURE_MIN_FILTER:
		valid = []opengl.Enum{opengl.NEAREST, opengl.LINEAR,
			opengl.NEAREST_MIPMAP_NEAREST, opengl.LINEAR_MIPMAP_NEAREST,
			opengl.NEAREST_MIPMAP_LINEAR, opengl.LINEAR_MIPMAP_LINEAR}
	default:
		g.raise(opengl.INVALID_ENUM)
		return
	}

	var ok bool
	for _, v := range valid {
		ok = ok || opengl.Enum(param) == v
	}
	if !ok {
		g.raise(opengl.INVALID_ENUM)
		return
	}

	if tex, ok := g.boundTexture(target); ok {
		tex.Params[pname] = param
	}
}

// number of components for a pixel format. zero if the format is not
// supported.
func components(format opengl.Enum) int {
	switch format {
	case opengl.RED:
		return 1
	case opengl.RGB:
		return 3
	case opengl.RGBA:
		return 4
	}
	return 0
}

// rowStride returns the number of bytes between the start of each row for
// the alignment.
func rowStride(width int, ch int, alignment int32) int {
	n := width * ch
	a := int(alignment)
	return (n + a - 1) / a * a
}

// TexImage2D implements the opengl.Functions interface.
func (g *GL) TexImage2D(target opengl.Enum, level int32, internalFormat opengl.Enum, width, height int32, format opengl.Enum, xtype opengl.Enum, pixels []byte) {
	g.record("TexImage2D", target, level, internalFormat, width, height, format, xtype, len(pixels))

	if format == opengl.DEPTH_COMPONENT {
		g.depthImage(target, level, internalFormat, width, height, xtype, pixels)
		return
	}

	ch := components(format)
	if components(internalFormat) == 0 || ch == 0 || xtype != opengl.UNSIGNED_BYTE {
		g.raise(opengl.INVALID_ENUM)
		return
	}
	if level < 0 || width < 0 || height < 0 {
		g.raise(opengl.INVALID_VALUE)
		return
	}

	tex, ok := g.boundTexture(target)
	if !ok {
		return
	}

	// only the base level is emulated
	if level > 0 {
		return
	}

	w := int(width)
	h := int(height)

	rowLength := w
	if g.unpackRowLength > 0 {
		rowLength = int(g.unpackRowLength)
	}
	stride := rowStride(rowLength, ch, g.unpackAlignment)

	if pixels != nil && w > 0 && h > 0 && len(pixels) < stride*(h-1)+w*ch {
		g.raise(opengl.INVALID_OPERATION)
		return
	}

	tex.Width = width
	tex.Height = height
	tex.InternalFormat = internalFormat
	tex.Format = format
	tex.UnpackAlignment = g.unpackAlignment
	tex.Mipmaps = false
	tex.Store = make([]byte, w*h*4)

	if pixels != nil {
		for y := range h {
			for x := range w {
				src := pixels[y*stride+x*ch:]
				dst := tex.Store[(y*w+x)*4:]
				dst[3] = 255
				copy(dst[:ch], src[:ch])
			}
		}
	}

	conform(tex.Store, internalFormat)
}

// depthImage allocates a depth texture. depth values are not emulated so
// pixels must be nil.
func (g *GL) depthImage(target opengl.Enum, level int32, internalFormat opengl.Enum, width, height int32, xtype opengl.Enum, pixels []byte) {
	if internalFormat != opengl.DEPTH_COMPONENT24 || xtype != opengl.UNSIGNED_INT {
		g.raise(opengl.INVALID_ENUM)
		return
	}
	if level != 0 || width < 0 || height < 0 {
		g.raise(opengl.INVALID_VALUE)
		return
	}
	if pixels != nil {
		g.raise(opengl.INVALID_OPERATION)
		return
	}

	tex, ok := g.boundTexture(target)
	if !ok {
		return
	}

	tex.Width = width
	tex.Height = height
	tex.InternalFormat = internalFormat
	tex.Format = opengl.DEPTH_COMPONENT
	tex.UnpackAlignment = g.unpackAlignment
	tex.Mipmaps = false
	tex.Store = nil
}

// GenerateMipmap implements the opengl.Functions interface.
func (g *GL) GenerateMipmap(target opengl.Enum) {
	g.record("GenerateMipmap", target)
	tex, ok := g.boundTexture(target)
	if !ok {
		return
	}
	if tex.Width == 0 || tex.Height == 0 {
		g.raise(opengl.INVALID_OPERATION)
		return
	}
	tex.Mipmaps = true
}

// GenFramebuffer implements the opengl.Functions interface.
func (g *GL) GenFramebuffer() uint32 {
	g.record("GenFramebuffer")
	name := g.allocate()
	if name != 0 {
		g.Framebuffers[name] = &Framebuffer{}
	}
	return name
}

// DeleteFramebuffer implements the opengl.Functions interface.
func (g *GL) DeleteFramebuffer(name uint32) {
	g.record("DeleteFramebuffer", name)
	if fb, ok := g.Framebuffers[name]; ok && !fb.Deleted {
		fb.Deleted = true
		if g.framebuffer == name {
			g.framebuffer = 0
		}
	}
}

// BindFramebuffer implements the opengl.Functions interface.
func (g *GL) BindFramebuffer(target opengl.Enum, name uint32) {
	g.record("BindFramebuffer", target, name)
	if target != opengl.FRAMEBUFFER {
		g.raise(opengl.INVALID_ENUM)
		return
	}
	if name != 0 {
		if fb, ok := g.Framebuffers[name]; !ok || fb.Deleted {
			g.raise(opengl.INVALID_OPERATION)
			return
		}
	}
	g.framebuffer = name
}

// FramebufferTexture2D implements the opengl.Functions interface.
func (g *GL) FramebufferTexture2D(target opengl.Enum, attachment opengl.Enum, textarget opengl.Enum, texture uint32, level int32) {
	g.record("FramebufferTexture2D", target, attachment, textarget, texture, level)
	if target != opengl.FRAMEBUFFER || textarget != opengl.TEXTURE_2D {
		g.raise(opengl.INVALID_ENUM)
		return
	}
	if attachment != opengl.COLOR_ATTACHMENT0 && attachment != opengl.DEPTH_ATTACHMENT {
		g.raise(opengl.INVALID_ENUM)
		return
	}
	if level != 0 {
		g.raise(opengl.INVALID_VALUE)
		return
	}
	if g.framebuffer == 0 {
		g.raise(opengl.INVALID_OPERATION)
		return
	}
	if texture != 0 {
		if tex, ok := g.Textures[texture]; !ok || tex.Deleted {
			g.raise(opengl.INVALID_OPERATION)
			return
		}
	}
	if attachment == opengl.DEPTH_ATTACHMENT {
		g.Framebuffers[g.framebuffer].Depth = texture
	} else {
		g.Framebuffers[g.framebuffer].Attachment = texture
	}
}

// attachment returns the color attachment of the framebuffer if it is usable.
func (g *GL) attachment(framebuffer uint32) (*Texture, bool) {
	fb, ok := g.Framebuffers[framebuffer]
	if !ok || fb.Attachment == 0 {
		return nil, false
	}
	tex, ok := g.Textures[fb.Attachment]
	if !ok || tex.Deleted || tex.Width == 0 || tex.Height == 0 {
		return nil, false
	}
	return tex, true
}

// CheckFramebufferStatus implements the opengl.Functions interface.
func (g *GL) CheckFramebufferStatus(target opengl.Enum) opengl.Enum {
	g.record("CheckFramebufferStatus", target)
	if target != opengl.FRAMEBUFFER {
		g.raise(opengl.INVALID_ENUM)
		return 0
	}
	if g.framebuffer == 0 {
		return opengl.FRAMEBUFFER_COMPLETE
	}
	col, ok := g.attachment(g.framebuffer)
	if !ok {
		return incompleteAttachment
	}
	if d := g.Framebuffers[g.framebuffer].Depth; d != 0 {
		tex, ok := g.Textures[d]
		if !ok || tex.Deleted || tex.Format != opengl.DEPTH_COMPONENT {
			return incompleteAttachment
		}
		if tex.Width != col.Width || tex.Height != col.Height {
			return incompleteDimensions
		}
	}
	return opengl.FRAMEBUFFER_COMPLETE
}

// ReadPixels implements the opengl.Functions interface.
func (g *GL) ReadPixels(x, y, width, height int32, format opengl.Enum, xtype opengl.Enum, pixels []byte) {
	g.record("ReadPixels", x, y, width, height, format, xtype, len(pixels))

	ch := components(format)
	if ch == 0 || xtype != opengl.UNSIGNED_BYTE {
		g.raise(opengl.INVALID_ENUM)
		return
	}
	if width < 0 || height < 0 {
		g.raise(opengl.INVALID_VALUE)
		return
	}

	var store []byte
	var sw, sh int
	if g.framebuffer == 0 {
		store = g.screenStore()
		sw = int(g.Screen.Width)
		sh = int(g.Screen.Height)
	} else {
		tex, ok := g.attachment(g.framebuffer)
		if !ok {
			g.raise(opengl.INVALID_OPERATION)
			return
		}
		store = tex.Store
		sw = int(tex.Width)
		sh = int(tex.Height)
	}

	w := int(width)
	h := int(height)
	stride := rowStride(w, ch, g.packAlignment)
	if w > 0 && h > 0 && len(pixels) < stride*(h-1)+w*ch {
		g.raise(opengl.INVALID_OPERATION)
		return
	}

	// pixels outside of the framebuffer are left unchanged
	for j := range h {
		sy := int(y) + j
		if sy < 0 || sy >= sh {
			continue
		}
		for i := range w {
			sx := int(x) + i
			if sx < 0 || sx >= sw {
				continue
			}
			copy(pixels[j*stride+i*ch:j*stride+i*ch+ch], store[(sy*sw+sx)*4:])
		}
	}
}

// Pixels returns the RGBA contents of the texture's base level. Rows are
// bottom row first.
func (g *GL) Pixels(texture uint32) []byte {
	if tex, ok := g.Textures[texture]; ok {
		return tex.Store
	}
	return nil
}

func (g *GL) screenStore() []byte {
	n := int(g.Screen.Width) * int(g.Screen.Height) * 4
	if len(g.screen) != n {
		g.screen = make([]byte, n)
	}
	return g.screen
}

// colorByte converts a normalised color component to a byte.
func colorByte(c float32) byte {
	c = min(max(c, 0), 1)
	return byte(c*255 + 0.5)
}

func fill(store []byte, c [4]byte) {
	for i := 0; i+4 <= len(store); i += 4 {
		copy(store[i:], c[:])
	}
}

// conform forces components that are not in the internal format to the values
// the driver would return for them.
func conform(store []byte, internalFormat opengl.Enum) {
	for i := 0; i+4 <= len(store); i += 4 {
		switch internalFormat {
		case opengl.RED:
			store[i+1] = 0
			store[i+2] = 0
			store[i+3] = 255
		case opengl.RGB:
			store[i+3] = 255
		}
	}
}
