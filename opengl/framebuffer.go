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
	"fmt"

	"github.com/jetsetilly/learnopengl/curated"
)

// Framebuffer owns a framebuffer object name with a single 2D texture as its
// color attachment. It is used to render off-screen and to read texture data
// back from the GPU.
type Framebuffer struct {
	fn      Functions
	id      uint32
	texture *Texture2D
	owned   bool
	depth   *Texture2D
	width   int
	height  int
}

// NewFramebuffer creates a framebuffer with a new RGBA texture of the given
// size as the color attachment. The texture is owned by the framebuffer and
// is deleted with it.
func NewFramebuffer(fn Functions, width int, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(InvalidPixels, fmt.Sprintf("bad dimensions %dx%d", width, height))
	}

	tex, err := NewTexture2D(fn)
	if err != nil {
		return nil, err
	}

	tex.Bind(0)
	SetFilter(fn, NEAREST, NEAREST)
	SetWrap(fn, CLAMP_TO_EDGE, CLAMP_TO_EDGE)
	fn.TexImage2D(TEXTURE_2D, 0, RGBA, int32(width), int32(height), RGBA, UNSIGNED_BYTE, nil)
	UnbindTexture(fn, 0)

	fb, err := AttachFramebuffer(fn, tex, width, height)
	if err != nil {
		tex.Delete()
		return nil, err
	}
	fb.owned = true

	return fb, nil
}

// AttachFramebuffer creates a framebuffer with an existing texture as the
// color attachment. The texture is not deleted with the framebuffer.
func AttachFramebuffer(fn Functions, tex *Texture2D, width int, height int) (*Framebuffer, error) {
	id := fn.GenFramebuffer()
	if id == 0 {
		return nil, curated.Errorf(ResourceAllocation, "framebuffer")
	}

	fb := &Framebuffer{
		fn:      fn,
		id:      id,
		texture: tex,
		width:   width,
		height:  height,
	}

	fn.BindFramebuffer(FRAMEBUFFER, id)
	defer UnbindFramebuffer(fn)

	fn.FramebufferTexture2D(FRAMEBUFFER, COLOR_ATTACHMENT0, TEXTURE_2D, tex.ID(), 0)
	if status := fn.CheckFramebufferStatus(FRAMEBUFFER); status != FRAMEBUFFER_COMPLETE {
		fn.DeleteFramebuffer(id)
		return nil, curated.Errorf(FramebufferIncomplete, uint32(status))
	}

	return fb, nil
}

// AttachDepth adds a 24 bit depth attachment so that the framebuffer can be
// used with the depth test. The depth texture is owned by the framebuffer.
// Calling AttachDepth more than once has no effect.
func (fb *Framebuffer) AttachDepth() error {
	if fb.depth != nil {
		return nil
	}

	tex, err := NewTexture2D(fb.fn)
	if err != nil {
		return err
	}

	tex.Bind(0)
	SetFilter(fb.fn, NEAREST, NEAREST)
	SetWrap(fb.fn, CLAMP_TO_EDGE, CLAMP_TO_EDGE)
	fb.fn.TexImage2D(TEXTURE_2D, 0, DEPTH_COMPONENT24, int32(fb.width), int32(fb.height), DEPTH_COMPONENT, UNSIGNED_INT, nil)
	UnbindTexture(fb.fn, 0)

	fb.fn.BindFramebuffer(FRAMEBUFFER, fb.id)
	defer UnbindFramebuffer(fb.fn)

	fb.fn.FramebufferTexture2D(FRAMEBUFFER, DEPTH_ATTACHMENT, TEXTURE_2D, tex.ID(), 0)
	if status := fb.fn.CheckFramebufferStatus(FRAMEBUFFER); status != FRAMEBUFFER_COMPLETE {
		fb.fn.FramebufferTexture2D(FRAMEBUFFER, DEPTH_ATTACHMENT, TEXTURE_2D, 0, 0)
		tex.Delete()
		return curated.Errorf(FramebufferIncomplete, uint32(status))
	}

	fb.depth = tex

	return nil
}

// Depth returns the depth attachment or nil if AttachDepth() has not been
// called.
func (fb *Framebuffer) Depth() *Texture2D {
	return fb.depth
}

// ID returns the GL name of the framebuffer. Returns zero if the framebuffer
// has been deleted.
func (fb *Framebuffer) ID() uint32 {
	return fb.id
}

// Texture returns the color attachment.
func (fb *Framebuffer) Texture() *Texture2D {
	return fb.texture
}

// Size returns the dimensions of the framebuffer.
func (fb *Framebuffer) Size() (int, int) {
	return fb.width, fb.height
}

// Bind makes this the draw and read framebuffer and sets the viewport to
// cover it.
func (fb *Framebuffer) Bind() {
	fb.fn.BindFramebuffer(FRAMEBUFFER, fb.id)
	fb.fn.Viewport(0, 0, int32(fb.width), int32(fb.height))
}

// UnbindFramebuffer restores the default framebuffer. The viewport is not
// changed.
func UnbindFramebuffer(fn Functions) {
	fn.BindFramebuffer(FRAMEBUFFER, 0)
}

// ReadPixels returns the contents of the framebuffer as tightly packed rows,
// bottom row first. Format must be one of RED, RGB or RGBA.
func (fb *Framebuffer) ReadPixels(format Enum) ([]byte, error) {
	fb.fn.BindFramebuffer(FRAMEBUFFER, fb.id)
	defer UnbindFramebuffer(fb.fn)
	return ReadPixels(fb.fn, 0, 0, fb.width, fb.height, format)
}

// Delete releases the framebuffer name, the depth attachment and, if the
// framebuffer created it, the color texture. Calling Delete more than once has
// no effect.
func (fb *Framebuffer) Delete() {
	if fb.id == 0 {
		return
	}
	fb.fn.DeleteFramebuffer(fb.id)
	fb.id = 0
	if fb.depth != nil {
		fb.depth.Delete()
	}
	if fb.owned {
		fb.texture.Delete()
	}
}

// ReadPixels reads a rectangle from the currently bound read framebuffer as
// tightly packed rows, bottom row first.
func ReadPixels(fn Functions, x int, y int, width int, height int, format Enum) ([]byte, error) {
	ch := Channels(format)
	if ch == 0 {
		return nil, curated.Errorf(InvalidPixels, fmt.Sprintf("unsupported format %#x", uint32(format)))
	}
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(InvalidPixels, fmt.Sprintf("bad dimensions %dx%d", width, height))
	}

	pixels := make([]byte, width*height*ch)
	fn.PixelStorei(PACK_ALIGNMENT, 1)
	fn.ReadPixels(int32(x), int32(y), int32(width), int32(height), format, UNSIGNED_BYTE, pixels)

	return pixels, nil
}
