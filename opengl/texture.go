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

// Texture2D owns a texture name. The texture target is always TEXTURE_2D.
type Texture2D struct {
	fn Functions
	id uint32
}

// NewTexture2D allocates a new texture object.
func NewTexture2D(fn Functions) (*Texture2D, error) {
	id := fn.GenTexture()
	if id == 0 {
		return nil, curated.Errorf(ResourceAllocation, "texture")
	}
	return &Texture2D{fn: fn, id: id}, nil
}

// ID returns the GL name of the texture. Returns zero if the texture has been
// deleted.
func (tex *Texture2D) ID() uint32 {
	return tex.id
}

// Bind activates the texture unit and binds the texture to it. The texture
// unit remains active after the function returns.
func (tex *Texture2D) Bind(unit uint32) {
	tex.fn.ActiveTexture(TEXTURE0 + Enum(unit))
	tex.fn.BindTexture(TEXTURE_2D, tex.id)
}

// UnbindTexture activates the texture unit and clears its 2D texture binding.
func UnbindTexture(fn Functions, unit uint32) {
	fn.ActiveTexture(TEXTURE0 + Enum(unit))
	fn.BindTexture(TEXTURE_2D, 0)
}

// Delete releases the texture name. Calling Delete more than once has no
// effect.
func (tex *Texture2D) Delete() {
	if tex.id == 0 {
		return
	}
	tex.fn.DeleteTexture(tex.id)
	tex.id = 0
}

// SetWrap sets the wrap mode of the currently bound 2D texture.
func SetWrap(fn Functions, s Enum, t Enum) {
	fn.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_S, int32(s))
	fn.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_T, int32(t))
}

// SetFilter sets the minification and magnification filters of the currently
// bound 2D texture.
func SetFilter(fn Functions, min Enum, mag Enum) {
	fn.TexParameteri(TEXTURE_2D, TEXTURE_MIN_FILTER, int32(min))
	fn.TexParameteri(TEXTURE_2D, TEXTURE_MAG_FILTER, int32(mag))
}

// GenerateMipmaps builds the mipmap chain of the currently bound 2D texture.
func GenerateMipmaps(fn Functions) {
	fn.GenerateMipmap(TEXTURE_2D)
}

// Channels returns the number of bytes per pixel of the pixel format.
// Returns zero for unsupported formats.
func Channels(format Enum) int {
	switch format {
	case RED:
		return 1
	case RGB:
		return 3
	case RGBA:
		return 4
	}
	return 0
}

// UploadPixels sends tightly packed pixel data to the currently bound 2D
// texture. The length of pixels must be exactly width * height * channels of
// the format.
func UploadPixels(fn Functions, internalFormat Enum, format Enum, width int, height int, pixels []byte) error {
	ch := Channels(format)
	if ch == 0 {
		return curated.Errorf(InvalidPixels, fmt.Sprintf("unsupported format %#x", uint32(format)))
	}
	if width <= 0 || height <= 0 {
		return curated.Errorf(InvalidPixels, fmt.Sprintf("bad dimensions %dx%d", width, height))
	}
	if len(pixels) != width*height*ch {
		return curated.Errorf(InvalidPixels, fmt.Sprintf("%d bytes for %dx%d with %d channels", len(pixels), width, height, ch))
	}

	// rows are not padded to four bytes
	fn.PixelStorei(UNPACK_ALIGNMENT, 1)
	fn.TexImage2D(TEXTURE_2D, 0, internalFormat, int32(width), int32(height), format, UNSIGNED_BYTE, pixels)

	return nil
}

// UploadRGB sends RGB pixel data to the currently bound 2D texture. The
// texture is stored with the RGB internal format.
func UploadRGB(fn Functions, width int, height int, pixels []byte) error {
	return UploadPixels(fn, RGB, RGB, width, height, pixels)
}

// UploadRGBA sends RGBA pixel data to the currently bound 2D texture. The
// texture is stored with the RGB internal format, meaning that the alpha
// channel is dropped.
func UploadRGBA(fn Functions, width int, height int, pixels []byte) error {
	return UploadPixels(fn, RGB, RGBA, width, height, pixels)
}

// Image is decoded, tightly packed, pixel data. Format is either RGB or RGBA.
type Image struct {
	Width  int
	Height int
	Format Enum
	Pixels []byte
}

// TextureParams are the parameters applied by SetupTexture2D().
type TextureParams struct {
	WrapS     Enum
	WrapT     Enum
	MinFilter Enum
	MagFilter Enum
	Mipmaps   bool
}

// DefaultTextureParams are the parameters used for scene textures.
var DefaultTextureParams = TextureParams{
	WrapS:     REPEAT,
	WrapT:     REPEAT,
	MinFilter: LINEAR_MIPMAP_LINEAR,
	MagFilter: LINEAR,
	Mipmaps:   true,
}

// SetupTexture2D creates a new texture, applies the parameters, uploads the
// image and generates the mipmap chain if required. The texture is
// created using texture unit zero, which is left with no texture bound.
func SetupTexture2D(fn Functions, params TextureParams, img Image) (*Texture2D, error) {
	tex, err := NewTexture2D(fn)
	if err != nil {
		return nil, err
	}

	tex.Bind(0)
	defer UnbindTexture(fn, 0)

	SetWrap(fn, params.WrapS, params.WrapT)
	SetFilter(fn, params.MinFilter, params.MagFilter)

	switch img.Format {
	case RGB:
		err = UploadRGB(fn, img.Width, img.Height, img.Pixels)
	case RGBA:
		err = UploadRGBA(fn, img.Width, img.Height, img.Pixels)
	default:
		err = curated.Errorf(InvalidPixels, fmt.Sprintf("unsupported image format %#x", uint32(img.Format)))
	}
	if err != nil {
		tex.Delete()
		return nil, err
	}

	if params.Mipmaps {
		GenerateMipmaps(fn)
	}

	return tex, nil
}
