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

package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/jetsetilly/learnopengl/curated"
	"github.com/jetsetilly/learnopengl/logger"
	"github.com/jetsetilly/learnopengl/opengl"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// AssetIO is the pattern for all errors returned by the package. The first
// value is the path of the file and the second value is the underlying error.
const AssetIO = "assets: %s: %v"

// Dir is the directory, relative to the working directory, that contains the
// image files used by the lessons.
const Dir = "assets"

// Path returns the path of the named file in the assets directory.
func Path(name string) string {
	return filepath.Join(Dir, name)
}

// Load decodes the image file.
func Load(path string) (opengl.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return opengl.Image{}, curated.Errorf(AssetIO, path, err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return opengl.Image{}, curated.Errorf(AssetIO, path, err)
	}

	img := FromImage(src)
	if img.Width == 0 || img.Height == 0 {
		return opengl.Image{}, curated.Errorf(AssetIO, path, "image is empty")
	}

	logger.Logf(logger.Allow, "assets", "%s: %s %dx%d (%d channels)",
		path, format, img.Width, img.Height, opengl.Channels(img.Format))

	return img, nil
}

// FromImage converts any image to a tightly packed opengl.Image. Color values
// are not premultiplied by alpha.
func FromImage(src image.Image) opengl.Image {
	b := src.Bounds()

	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)

	img := opengl.Image{
		Width:  b.Dx(),
		Height: b.Dy(),
	}

	if hasAlpha(src) {
		img.Format = opengl.RGBA
		img.Pixels = nrgba.Pix
		return img
	}

	img.Format = opengl.RGB
	img.Pixels = make([]byte, 0, img.Width*img.Height*3)
	for i := 0; i < len(nrgba.Pix); i += 4 {
		img.Pixels = append(img.Pixels, nrgba.Pix[i:i+3]...)
	}

	return img
}

// hasAlpha returns true if any pixel in the image is not fully opaque. Image
// types that can't report their opacity are assumed to have transparency.
func hasAlpha(src image.Image) bool {
	if o, ok := src.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return true
}

// FlipVertical reverses the order of rows in the image. Used to convert
// between the top row first order of image files and the bottom row first
// order of GL.
func FlipVertical(img opengl.Image) opengl.Image {
	rowSize := img.Width * opengl.Channels(img.Format)
	flipped := img
	flipped.Pixels = make([]byte, len(img.Pixels))
	for y := range img.Height {
		src := img.Pixels[y*rowSize : (y+1)*rowSize]
		dst := flipped.Pixels[(img.Height-y-1)*rowSize : (img.Height-y)*rowSize]
		copy(dst, src)
	}
	return flipped
}

// ToImage converts a tightly packed opengl.Image to an image.NRGBA. RGB and RED
// pixel data is given an opaque alpha channel.
func ToImage(img opengl.Image) (*image.NRGBA, error) {
	ch := opengl.Channels(img.Format)
	if ch == 0 {
		return nil, fmt.Errorf("unsupported format %#x", uint32(img.Format))
	}
	if len(img.Pixels) != img.Width*img.Height*ch {
		return nil, fmt.Errorf("%d bytes for %dx%d with %d channels", len(img.Pixels), img.Width, img.Height, ch)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i := range img.Width * img.Height {
		src := img.Pixels[i*ch : (i+1)*ch]
		dst := nrgba.Pix[i*4 : (i+1)*4]
		switch ch {
		case 1:
			dst[0] = src[0]
			dst[3] = 255
		case 3:
			copy(dst, src)
			dst[3] = 255
		case 4:
			copy(dst, src)
		}
	}

	return nrgba, nil
}

// SavePNG writes the image to the path as a PNG file. The first row of the
// image is the top of the saved picture.
func SavePNG(path string, img opengl.Image) error {
	nrgba, err := ToImage(img)
	if err != nil {
		return curated.Errorf(AssetIO, path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(AssetIO, path, err)
	}

	err = png.Encode(f, nrgba)
	if err != nil {
		_ = f.Close()
		return curated.Errorf(AssetIO, path, err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf(AssetIO, path, err)
	}

	return nil
}
