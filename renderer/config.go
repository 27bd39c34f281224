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

package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/learnopengl/camera"
	"github.com/jetsetilly/learnopengl/opengl"
	"github.com/jetsetilly/learnopengl/userinput"
)

// Platform is the window system as seen by the renderer.
type Platform interface {
	// PollEvent returns the next pending event or nil if there are no more
	// events. It must not block.
	PollEvent() userinput.Event

	// Swap presents the frame. Blocks until the display is ready if vsync is
	// enabled.
	Swap()

	// AspectRatio of the drawable area of the window.
	AspectRatio() float32

	// SetRelativeMouse captures or releases the mouse.
	SetRelativeMouse(bool)
}

// DrawCall describes how the vertex array is drawn. Create with Indexed() or
// Arrays().
type DrawCall struct {
	indexed bool
	count   int32
}

// Indexed draws count indices from the element buffer recorded in the vertex
// array. Indices are of type UNSIGNED_INT.
func Indexed(count int32) DrawCall {
	return DrawCall{indexed: true, count: count}
}

// Arrays draws count vertices from the start of the vertex array.
func Arrays(count int32) DrawCall {
	return DrawCall{count: count}
}

// Count returns the number of vertices or indices in the draw.
func (dc DrawCall) Count() int32 {
	return dc.count
}

// IsIndexed returns true if the draw call uses the element buffer.
func (dc DrawCall) IsIndexed() bool {
	return dc.indexed
}

func (dc DrawCall) issue(fn opengl.Functions) {
	if dc.indexed {
		fn.DrawElements(opengl.TRIANGLES, dc.count, opengl.UNSIGNED_INT, 0)
	} else {
		fn.DrawArrays(opengl.TRIANGLES, 0, dc.count)
	}
}

// TextureUnit pairs a texture with the name of the sampler uniform that reads
// it. The texture unit is the index of the TextureUnit in Config.Textures.
type TextureUnit struct {
	Sampler string
	Texture *opengl.Texture2D
}

// AnimateFunc returns the model matrix for the object at the index in
// Config.Objects. Elapsed is the number of seconds since the clock started.
type AnimateFunc func(index int, position mgl32.Vec3, elapsed float32) mgl32.Mat4

// Spin translates the object to its position and rotates it about the X axis
// at -π/3 radians per second.
func Spin(_ int, position mgl32.Vec3, elapsed float32) mgl32.Mat4 {
	return mgl32.Translate3D(position.Elem()).Mul4(mgl32.HomogRotate3DX(-math32.Pi / 3 * elapsed))
}

// Limiter paces the frame loop. Wait blocks until the next frame is due.
type Limiter interface {
	Wait()
}

// Config describes the scene drawn by the renderer.
type Config struct {
	// name of the lesson. used in screenshot filenames and the overlay
	Name string

	Program     *opengl.Program
	VertexArray *opengl.VertexArray
	Textures    []TextureUnit
	Draw        DrawCall

	// the vertex array is drawn once for each object. if Objects is empty the
	// vertex array is drawn once
	Objects []mgl32.Vec3

	// if true the program must declare either the "transform" uniform or the
	// "model", "view" and "projection" uniforms
	Matrices bool

	// Animate provides the model matrix for each object. If Animate is nil the
	// model matrix is the translation of the object's position
	Animate AnimateFunc

	// the camera is moved by the keyboard and mouse and provides the view and
	// projection matrices. if the camera is nil both matrices are the
	// identity matrix
	Camera *camera.Camera

	// if HeldKeys is true the camera is moved every frame for as long as a
	// movement key is held down. if HeldKeys is false the camera only moves
	// when a key press or key repeat event is received
	HeldKeys bool

	DepthTest  bool
	ClearColor [4]float32

	// called every frame after the program has been made current and before
	// the matrix uniforms are set. use for setting uniforms that change
	// over time
	PerFrame func(elapsed float32)

	// the clock to use. if nil a new clock is started when the renderer is
	// created
	Clock *Clock

	// caps the frame rate of Run(). if nil frames are drawn as quickly as the
	// platform allows
	Limiter Limiter
}
