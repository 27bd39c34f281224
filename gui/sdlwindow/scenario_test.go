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


package sdlwindow_test

import (
	"os"
	"runtime"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/learnopengl/camera"
	"github.com/jetsetilly/learnopengl/curated"
	"github.com/jetsetilly/learnopengl/gui/sdlwindow"
	"github.com/jetsetilly/learnopengl/opengl"
	"github.com/jetsetilly/learnopengl/opengl/loader"
	"github.com/jetsetilly/learnopengl/renderer"
	"github.com/jetsetilly/learnopengl/scene"
	"github.com/jetsetilly/learnopengl/test"
	"github.com/jetsetilly/learnopengl/userinput"
)

const size = 64

// SDL windows and GL contexts must be used from the main thread on some
// platforms. tests run in their own goroutines so every SDL and GL call is
// sent to the main thread with onMain()
var mainthread = make(chan func())

func init() {
	runtime.LockOSThread()
}

func TestMain(m *testing.M) {
	done := make(chan int)
	go func() {
		done <- m.Run()
	}()

	for {
		select {
		case f := <-mainthread:
			f()
		case code := <-done:
			os.Exit(code)
		}
	}
}

// onMain runs f on the main thread and waits for it to return. f must not
// call any of the testing.T methods that stop the test.
func onMain(f func()) {
	done := make(chan struct{})
	mainthread <- func() {
		defer close(done)
		f()
	}
	<-done
}

// scenario draws something with a set of GL functions and returns the RGB
// pixels, bottom row first. always called on the main thread.
type scenario func(fn opengl.Functions) ([]byte, error)

type display struct {
	fn opengl.Functions
}

// newDisplay creates a hidden window and loads the GL functions. The test is
// skipped if there is no display or the driver does not support GL 3.3 core.
func newDisplay(t *testing.T) *display {
	t.Helper()

	var win *sdlwindow.Window
	var fn opengl.Functions
	var err error

	onMain(func() {
		win, err = sdlwindow.Create(sdlwindow.Config{
			Title:  "test",
			Width:  size,
			Height: size,
			Hidden: true,
		})
		if err != nil {
			return
		}
		fn, err = loader.Load(win.GetProcAddress)
		if err != nil {
			win.Destroy()
		}
	})
	if err != nil {
		t.Skipf("no GL context: %v", err)
	}
	t.Cleanup(func() {
		onMain(win.Destroy)
	})

	return &display{fn: fn}
}

// draw runs the scenario on the main thread.
func (d *display) draw(t *testing.T, s scenario) []byte {
	t.Helper()

	var pixels []byte
	var err error
	onMain(func() {
		pixels, err = s(d.fn)
	})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(pixels), size*size*3)

	return pixels
}

type offscreen struct{}

func (offscreen) PollEvent() userinput.Event { return nil }
func (offscreen) Swap()                      {}
func (offscreen) AspectRatio() float32       { return 1 }
func (offscreen) SetRelativeMouse(bool)      {}

// frame draws one frame of the configuration into a framebuffer. the
// framebuffer has a depth attachment if depth is true.
func frame(fn opengl.Functions, cfg renderer.Config, depth bool) ([]byte, error) {
	fb, err := opengl.NewFramebuffer(fn, size, size)
	if err != nil {
		return nil, err
	}
	defer fb.Delete()

	if depth {
		if err := fb.AttachDepth(); err != nil {
			return nil, err
		}
	}

	rnd, err := renderer.NewRenderer(fn, cfg)
	if err != nil {
		return nil, err
	}

	fb.Bind()
	rnd.Frame(offscreen{})

	pixels, err := fb.ReadPixels(opengl.RGB)
	if err != nil {
		return nil, err
	}
	if errs := opengl.Errors(fn); len(errs) > 0 {
		return nil, curated.Errorf("gl errors after frame: %v", errs)
	}

	return pixels, nil
}

func lesson(name string) scenario {
	return func(fn opengl.Functions) ([]byte, error) {
		l, err := scene.Build(fn, name)
		if err != nil {
			return nil, err
		}
		defer l.Destroy()
		return frame(fn, l.Config, l.Config.DepthTest)
	}
}

// vertexArray uploads interleaved vertices to a new vertex array. the returned
// function deletes the vertex array and the buffer.
func vertexArray(fn opengl.Functions, layout opengl.Layout, vertices []float32) (*opengl.VertexArray, func(), error) {
	va, err := opengl.NewVertexArray(fn)
	if err != nil {
		return nil, nil, err
	}
	vbo, err := opengl.NewBuffer(fn)
	if err != nil {
		va.Delete()
		return nil, nil, err
	}

	va.Bind()
	vbo.Bind(opengl.ArrayBuffer)
	opengl.Upload(fn, opengl.ArrayBuffer, opengl.Bytes(vertices), opengl.StaticDraw)
	layout.Apply(fn)
	opengl.UnbindVertexArray(fn)
	opengl.UnbindBuffer(fn, opengl.ArrayBuffer)

	return va, func() {
		va.Delete()
		vbo.Delete()
	}, nil
}

func pixel(pixels []byte, x, y int) [3]byte {
	i := (y*size + x) * 3
	return [3]byte{pixels[i], pixels[i+1], pixels[i+2]}
}

func expectColor(t *testing.T, c [3]byte, r, g, b byte, tags ...any) {
	t.Helper()
	test.ExpectApproximate(t, int(c[0]), int(r), 0.02, tags...)
	test.ExpectApproximate(t, int(c[1]), int(g), 0.02, tags...)
	test.ExpectApproximate(t, int(c[2]), int(b), 0.02, tags...)
}

func TestOrangeTriangle(t *testing.T) {
	d := newDisplay(t)
	pixels := d.draw(t, lesson("triangle"))

	expectColor(t, pixel(pixels, size/2, size/2), 255, 128, 51, "center")
	expectColor(t, pixel(pixels, 1, 1), 51, 77, 77, "corner")
	expectColor(t, pixel(pixels, size-2, size-2), 51, 77, 77, "corner")
}

func TestIndexedQuad(t *testing.T) {
	d := newDisplay(t)
	pixels := d.draw(t, lesson("quad"))

	// the quad covers the central half of the viewport
	expectColor(t, pixel(pixels, size/4+1, size/4+1), 255, 128, 51, "inside")
	expectColor(t, pixel(pixels, size*3/4-2, size*3/4-2), 255, 128, 51, "inside")
	expectColor(t, pixel(pixels, size/4-2, size/2), 51, 77, 77, "outside")
	expectColor(t, pixel(pixels, size/2, size*3/4+2), 51, 77, 77, "outside")
}

func TestColorInterpolation(t *testing.T) {
	d := newDisplay(t)
	pixels := d.draw(t, lesson("colors"))

	// every channel contributes in the middle of the triangle
	c := pixel(pixels, size/2, size/2)
	for i := range c {
		test.ExpectSuccess(t, c[i] > 30, i)
	}

	// near the bottom right corner red is dominant
	c = pixel(pixels, size*3/4-3, size/4+1)
	test.ExpectSuccess(t, c[0] > c[1] && c[0] > c[2], c)
}

const mixVert = `#version 330 core
layout (location = 0) in vec3 pos;
layout (location = 1) in vec2 textureCoord;

out vec2 texCoord;

void main() {
	gl_Position = vec4(pos, 1.0);
	texCoord = textureCoord;
}
`

const mixFrag = `#version 330 core
in vec2 texCoord;

out vec4 final_color;

uniform sampler2D texture1;
uniform sampler2D texture2;

void main() {
	final_color = mix(texture(texture1, texCoord), texture(texture2, texCoord), 0.2);
}
`

// solid returns a 2x2 texture filled with a single colour. the format is RGB
// or RGBA depending on the number of channels given.
func solid(fn opengl.Functions, channels ...byte) (*opengl.Texture2D, error) {
	format := opengl.RGB
	if len(channels) == 4 {
		format = opengl.RGBA
	}

	img := opengl.Image{Width: 2, Height: 2, Format: format}
	for range img.Width * img.Height {
		img.Pixels = append(img.Pixels, channels...)
	}

	return opengl.SetupTexture2D(fn, opengl.TextureParams{
		WrapS:     opengl.CLAMP_TO_EDGE,
		WrapT:     opengl.CLAMP_TO_EDGE,
		MinFilter: opengl.NEAREST,
		MagFilter: opengl.NEAREST,
	}, img)
}

func TestTextureMix(t *testing.T) {
	d := newDisplay(t)

	pixels := d.draw(t, func(fn opengl.Functions) ([]byte, error) {
		prog, err := opengl.ProgramFromVertFrag(fn, mixVert, mixFrag)
		if err != nil {
			return nil, err
		}
		defer prog.Delete()

		// full viewport quad
		va, deleteVA, err := vertexArray(fn, opengl.Layout{3, 2}, []float32{
			-1, -1, 0, 0, 0,
			1, -1, 0, 1, 0,
			1, 1, 0, 1, 1,
			-1, -1, 0, 0, 0,
			1, 1, 0, 1, 1,
			-1, 1, 0, 0, 1,
		})
		if err != nil {
			return nil, err
		}
		defer deleteVA()

		t0, err := solid(fn, 200, 100, 50)
		if err != nil {
			return nil, err
		}
		defer t0.Delete()

		t1, err := solid(fn, 0, 255, 100, 255)
		if err != nil {
			return nil, err
		}
		defer t1.Delete()

		return frame(fn, renderer.Config{
			Name:        "mix",
			Program:     prog,
			VertexArray: va,
			Textures: []renderer.TextureUnit{
				{Sampler: "texture1", Texture: t0},
				{Sampler: "texture2", Texture: t1},
			},
			Draw: renderer.Arrays(6),
		}, false)
	})

	// 0.8 of the first texture and 0.2 of the second
	want := [3]float64{
		0.8*200 + 0.2*0,
		0.8*100 + 0.2*255,
		0.8*50 + 0.2*100,
	}

	for _, p := range [][2]int{{1, 1}, {size / 2, size / 2}, {size - 2, size - 2}} {
		c := pixel(pixels, p[0], p[1])
		for i := range c {
			test.ExpectWithin(t, float64(c[i]), want[i], 1, p, i)
		}
	}
}

const depthVert = `#version 330 core
layout (location = 0) in vec3 pos;

out float distance;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
	vec4 world = model * vec4(pos, 1.0);
	gl_Position = projection * view * world;
	distance = -world.z;
}
`

// red is proportional to the distance of the fragment from the world origin
// along the negative z axis
const depthFrag = `#version 330 core
in float distance;

out vec4 final_color;

void main() {
	final_color = vec4(distance / 12.0, 0.0, 0.0, 1.0);
}
`

// cube returns the 36 vertices of a unit cube centred on the origin.
func cube() []float32 {
	corner := func(i int) []float32 {
		return []float32{float32(i&1) - 0.5, float32(i>>1&1) - 0.5, float32(i>>2&1) - 0.5}
	}

	faces := [6][4]int{
		{0, 1, 3, 2}, {4, 6, 7, 5},
		{0, 4, 5, 1}, {2, 3, 7, 6},
		{0, 2, 6, 4}, {1, 5, 7, 3},
	}

	var v []float32
	for _, f := range faces {
		for _, i := range []int{f[0], f[1], f[2], f[0], f[2], f[3]} {
			v = append(v, corner(i)...)
		}
	}
	return v
}

// occlusion draws a cube at each position with a camera at the default
// position and returns the colour at the centre of the framebuffer.
func occlusion(t *testing.T, d *display, depthTest bool, positions ...mgl32.Vec3) [3]byte {
	t.Helper()

	pixels := d.draw(t, func(fn opengl.Functions) ([]byte, error) {
		prog, err := opengl.ProgramFromVertFrag(fn, depthVert, depthFrag)
		if err != nil {
			return nil, err
		}
		defer prog.Delete()

		va, deleteVA, err := vertexArray(fn, opengl.Layout{3}, cube())
		if err != nil {
			return nil, err
		}
		defer deleteVA()

		return frame(fn, renderer.Config{
			Name:        "depth",
			Program:     prog,
			VertexArray: va,
			Draw:        renderer.Arrays(36),
			Objects:     positions,
			Matrices:    true,
			Camera:      camera.NewCamera(),
			DepthTest:   depthTest,
		}, true)
	})

	return pixel(pixels, size/2, size/2)
}

func TestDepthOcclusion(t *testing.T) {
	d := newDisplay(t)

	near := mgl32.Vec3{0, 0, -2}
	far := mgl32.Vec3{0, 0, -10}

	// the front face of the near cube is 1.5 units along the z axis. the
	// front face of the far cube is 9.5 units along
	const nearRed = 1.5 / 12.0 * 255
	const farRed = 9.5 / 12.0 * 255

	// the near cube is visible regardless of the drawing order
	c := occlusion(t, d, true, near, far)
	test.ExpectWithin(t, float64(c[0]), nearRed, 2, "near first")
	c = occlusion(t, d, true, far, near)
	test.ExpectWithin(t, float64(c[0]), nearRed, 2, "near last")

	// without the depth test the last cube drawn is visible
	c = occlusion(t, d, false, near, far)
	test.ExpectSuccess(t, float64(c[0]) > farRed-20, "no depth test")
}

func TestUploadRoundTrip(t *testing.T) {
	d := newDisplay(t)

	img := opengl.Image{Width: 5, Height: 3, Format: opengl.RGB, Pixels: make([]byte, 5*3*3)}
	for i := range img.Pixels {
		img.Pixels[i] = byte(i * 17)
	}

	var pixels []byte
	var err error
	onMain(func() {
		var tex *opengl.Texture2D
		tex, err = opengl.SetupTexture2D(d.fn, opengl.TextureParams{
			WrapS:     opengl.CLAMP_TO_EDGE,
			WrapT:     opengl.CLAMP_TO_EDGE,
			MinFilter: opengl.NEAREST,
			MagFilter: opengl.NEAREST,
		}, img)
		if err != nil {
			return
		}
		defer tex.Delete()

		var fb *opengl.Framebuffer
		fb, err = opengl.AttachFramebuffer(d.fn, tex, img.Width, img.Height)
		if err != nil {
			return
		}
		defer fb.Delete()

		pixels, err = fb.ReadPixels(opengl.RGB)
	})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(pixels), len(img.Pixels))
	for i := range pixels {
		test.ExpectEquality(t, pixels[i], img.Pixels[i], i)
	}
}
