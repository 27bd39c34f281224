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

// Package assets loads images from disk and prepares them for upload as
// textures. JPEG, PNG, BMP, TIFF and WebP files are supported.
//
// Decoded images are returned as tightly packed opengl.Image values. Images
// with any transparent pixels are returned in the RGBA format and all other
// images are returned in the RGB format. Rows are in the order they are
// stored in the file, which means the first row is the top of the image. The
// image is not flipped for GL, which expects the first row to be the bottom
// of the texture.
//
// The package can also save pixel data read from a framebuffer as a PNG file.
package assets
