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

import "fmt"

// ClearColor sets the color used when clearing the color buffer.
func ClearColor(fn Functions, r, g, b, a float32) {
	fn.ClearColor(r, g, b, a)
}

// Clear the color buffer and, if depth is true, the depth buffer.
func Clear(fn Functions, depth bool) {
	mask := COLOR_BUFFER_BIT
	if depth {
		mask |= DEPTH_BUFFER_BIT
	}
	fn.Clear(mask)
}

// SetDepthTest enables or disables depth testing.
func SetDepthTest(fn Functions, enable bool) {
	if enable {
		fn.Enable(DEPTH_TEST)
	} else {
		fn.Disable(DEPTH_TEST)
	}
}

// SetWireframe switches the polygon mode between LINE and FILL.
func SetWireframe(fn Functions, wireframe bool) {
	if wireframe {
		fn.PolygonMode(FRONT_AND_BACK, LINE)
	} else {
		fn.PolygonMode(FRONT_AND_BACK, FILL)
	}
}

// MaxVertexAttribs returns the maximum number of vertex attributes supported
// by the driver for a vertex shader.
func MaxVertexAttribs(fn Functions) int32 {
	var v [1]int32
	fn.GetIntegerv(MAX_VERTEX_ATTRIBS, v[:])
	return v[0]
}

// Info describes the GL implementation.
type Info struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

func (inf Info) String() string {
	return fmt.Sprintf("%s, %s, %s", inf.Vendor, inf.Renderer, inf.Version)
}

// GetInfo queries the GL implementation strings.
func GetInfo(fn Functions) Info {
	return Info{
		Vendor:   fn.GetString(VENDOR),
		Renderer: fn.GetString(RENDERER),
		Version:  fn.GetString(VERSION),
		GLSL:     fn.GetString(SHADING_LANGUAGE_VERSION),
	}
}

// Errors drains the GL error queue and returns the errors in the order they
// were raised. The list is empty if there were no errors.
func Errors(fn Functions) []Enum {
	var errs []Enum

	// the queue is finite but a broken context can return errors forever
	for range 32 {
		e := fn.GetError()
		if e == NO_ERROR {
			break
		}
		errs = append(errs, e)
	}

	return errs
}
