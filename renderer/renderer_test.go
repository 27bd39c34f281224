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

package renderer_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/learnopengl/camera"
	"github.com/jetsetilly/learnopengl/curated"
	"github.com/jetsetilly/learnopengl/opengl"
	"github.com/jetsetilly/learnopengl/opengl/fakegl"
	"github.com/jetsetilly/learnopengl/renderer"
	"github.com/jetsetilly/learnopengl/test"
	"github.com/jetsetilly/learnopengl/userinput"
)

const vert = `#version 330 core
layout (location = 0) in vec3 pos;
uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
void main()
{
	gl_Position = projection * view * model * vec4(pos, 1.0);
}
`

const frag = `#version 330 core
out vec4 final_color;
uniform float mixValue;
uniform sampler2D texture1;
uniform sampler2D texture2;
void main()
{
	final_color = mix(texture(texture1, vec2(0.0)), texture(texture2, vec2(0.0)), mixValue);
}
`

// platform is a scripted window. each call to PollEvent() returns the next
// event in the current frame. the frame ends when a nil is found.
type platform struct {
	frames   [][]userinput.Event
	swaps    int
	relative []bool
}

func (p *platform) PollEvent() userinput.Event {
	if len(p.frames) == 0 {
		return nil
	}
	if len(p.frames[0]) == 0 {
		p.frames = p.frames[1:]
		return nil
	}
	ev := p.frames[0][0]
	p.frames[0] = p.frames[0][1:]
	return ev
}

func (p *platform) Swap() {
	p.swaps++
}

func (p *platform) AspectRatio() float32 {
	return 800.0 / 600.0
}

func (p *platform) SetRelativeMouse(set bool) {
	p.relative = append(p.relative, set)
}

type overlay struct {
	info []renderer.Info
}

func (o *overlay) Draw(info renderer.Info) {
	o.info = append(o.info, info)
}

func key(k string, down bool) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: k, Down: down}
}

// every tick of the clock advances time by 100ms
func steady() *renderer.Clock {
	var n time.Duration
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return renderer.NewClockWithSource(func() time.Time {
		t := base.Add(n * 100 * time.Millisecond)
		n++
		return t
	})
}

type fixture struct {
	gl  *fakegl.GL
	cfg renderer.Config
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	gl := fakegl.New()

	prog, err := opengl.ProgramFromVertFrag(gl, vert, frag)
	test.DemandSuccess(t, err)

	va, err := opengl.NewVertexArray(gl)
	test.DemandSuccess(t, err)

	var tex [2]*opengl.Texture2D
	for i := range tex {
		tex[i], err = opengl.NewTexture2D(gl)
		test.DemandSuccess(t, err)
	}

	return fixture{
		gl: gl,
		cfg: renderer.Config{
			Name:        "test",
			Program:     prog,
			VertexArray: va,
			Textures: []renderer.TextureUnit{
				{Sampler: "texture1", Texture: tex[0]},
				{Sampler: "texture2", Texture: tex[1]},
			},
			Draw:       renderer.Arrays(36),
			Matrices:   true,
			Camera:     camera.NewCamera(),
			DepthTest:  true,
			ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
			Clock:      steady(),
		},
	}
}

func (f fixture) uniform(name string) int32 {
	return f.gl.Programs[f.cfg.Program.ID()].Uniforms[name]
}

func TestConfigErrors(t *testing.T) {
	f := newFixture(t)

	cfg := f.cfg
	cfg.Program = nil
	_, err := renderer.NewRenderer(f.gl, cfg)
	test.ExpectSuccess(t, curated.Is(err, renderer.ConfigError))

	cfg = f.cfg
	cfg.VertexArray = nil
	_, err = renderer.NewRenderer(f.gl, cfg)
	test.ExpectFailure(t, err)

	cfg = f.cfg
	cfg.Draw = renderer.Indexed(0)
	_, err = renderer.NewRenderer(f.gl, cfg)
	test.ExpectFailure(t, err)

	cfg = f.cfg
	cfg.Textures = []renderer.TextureUnit{{Sampler: "texture3", Texture: cfg.Textures[0].Texture}}
	_, err = renderer.NewRenderer(f.gl, cfg)
	test.ExpectSuccess(t, curated.Has(err, opengl.UniformMissing))

	// program with no matrix uniforms
	prog, err := opengl.ProgramFromVertFrag(f.gl, "void main() {}", frag)
	test.DemandSuccess(t, err)
	cfg = f.cfg
	cfg.Program = prog
	_, err = renderer.NewRenderer(f.gl, cfg)
	test.ExpectSuccess(t, curated.Has(err, opengl.UniformMissing))

	// the program is not left in use after a failure
	test.ExpectEquality(t, f.gl.CurrentProgram(), uint32(0))
}

func TestSamplers(t *testing.T) {
	f := newFixture(t)

	_, err := renderer.NewRenderer(f.gl, f.cfg)
	test.DemandSuccess(t, err)

	v, ok := f.gl.Uniform(f.cfg.Program.ID(), "texture1")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, any(int32(0)))

	v, ok = f.gl.Uniform(f.cfg.Program.ID(), "texture2")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, any(int32(1)))

	test.ExpectEquality(t, f.gl.CurrentProgram(), uint32(0))
	expectNoErrors(t, f.gl)
}

func TestFrame(t *testing.T) {
	f := newFixture(t)
	f.cfg.Objects = []mgl32.Vec3{{0, 0, 0}, {2, 5, -15}}

	var perFrame []float32
	f.cfg.PerFrame = func(elapsed float32) {
		perFrame = append(perFrame, elapsed)
	}

	rnd, err := renderer.NewRenderer(f.gl, f.cfg)
	test.DemandSuccess(t, err)

	plt := &platform{}
	test.ExpectSuccess(t, rnd.Frame(plt))
	test.ExpectEquality(t, plt.swaps, 1)

	test.ExpectEquality(t, len(f.gl.Clears), 1)
	test.ExpectEquality(t, f.gl.Clears[0].Mask, opengl.COLOR_BUFFER_BIT|opengl.DEPTH_BUFFER_BIT)
	test.ExpectEquality(t, f.gl.Clears[0].Color, [4]float32{0.2, 0.3, 0.3, 1.0})

	// one draw per object
	test.DemandEquality(t, len(f.gl.Draws), 2)
	for i, d := range f.gl.Draws {
		test.ExpectEquality(t, d.Count, int32(36), i)
		test.ExpectEquality(t, d.Indexed, false, i)
		test.ExpectEquality(t, d.DepthTest, true, i)
		test.ExpectEquality(t, d.PolygonMode, opengl.FILL, i)
		test.ExpectEquality(t, d.VertexArray, f.cfg.VertexArray.ID(), i)
		test.ExpectEquality(t, d.Textures[0], f.cfg.Textures[0].Texture.ID(), i)
		test.ExpectEquality(t, d.Textures[1], f.cfg.Textures[1].Texture.ID(), i)

		model := mgl32.Translate3D(f.cfg.Objects[i].Elem())
		test.ExpectEquality(t, d.Uniforms[f.uniform("model")], any([16]float32(model)), i)

		view := f.cfg.Camera.View()
		test.ExpectEquality(t, d.Uniforms[f.uniform("view")], any([16]float32(view)), i)
	}

	test.DemandEquality(t, len(perFrame), 1)
	test.ExpectWithin(t, perFrame[0], 0.1, 0.0001)

	// everything unbound after the frame
	test.ExpectEquality(t, f.gl.CurrentProgram(), uint32(0))
	test.ExpectEquality(t, f.gl.CurrentVertexArray(), uint32(0))
	test.ExpectEquality(t, f.gl.BoundTexture(0), uint32(0))
	test.ExpectEquality(t, f.gl.BoundTexture(1), uint32(0))

	expectNoErrors(t, f.gl)
}

func TestNoObjects(t *testing.T) {
	f := newFixture(t)
	f.cfg.Camera = nil
	f.cfg.DepthTest = false
	f.cfg.Animate = func(_ int, _ mgl32.Vec3, elapsed float32) mgl32.Mat4 {
		return mgl32.HomogRotate3DZ(elapsed)
	}

	rnd, err := renderer.NewRenderer(f.gl, f.cfg)
	test.DemandSuccess(t, err)

	plt := &platform{}
	test.ExpectSuccess(t, rnd.Frame(plt))

	test.ExpectEquality(t, f.gl.Clears[0].Mask, opengl.COLOR_BUFFER_BIT)
	test.DemandEquality(t, len(f.gl.Draws), 1)

	d := f.gl.Draws[0]
	test.ExpectEquality(t, d.DepthTest, false)
	test.ExpectEquality(t, d.Uniforms[f.uniform("model")], any([16]float32(mgl32.HomogRotate3DZ(0.1))))
	test.ExpectEquality(t, d.Uniforms[f.uniform("view")], any([16]float32(mgl32.Ident4())))
	test.ExpectEquality(t, d.Uniforms[f.uniform("projection")], any([16]float32(mgl32.Ident4())))
}

func TestSpin(t *testing.T) {
	pos := mgl32.Vec3{1.5, -2.2, -2.5}

	for _, elapsed := range []float32{0, 0.25, 1, 3, 7.5} {
		m := renderer.Spin(4, pos, elapsed)
		want := mgl32.Translate3D(pos.Elem()).Mul4(mgl32.HomogRotate3DX(-math32.Pi / 3 * elapsed))
		test.ExpectSuccess(t, m.ApproxEqualThreshold(want, 1e-5), elapsed)

		// the object stays at its position
		test.ExpectSuccess(t, m.Col(3).ApproxEqualThreshold(pos.Vec4(1), 1e-5), elapsed)
	}

	// after 1.5 seconds the object has turned a quarter turn about its x
	// axis. the local y axis points away from the camera
	p := renderer.Spin(0, pos, 1.5).Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	test.ExpectSuccess(t, p.Vec3().ApproxEqualThreshold(pos.Add(mgl32.Vec3{0, 0, -1}), 1e-5), p)
}

func TestFrameSpin(t *testing.T) {
	f := newFixture(t)
	f.cfg.Objects = []mgl32.Vec3{{0, 0, 0}, {2, 5, -15}}
	f.cfg.Animate = renderer.Spin

	rnd, err := renderer.NewRenderer(f.gl, f.cfg)
	test.DemandSuccess(t, err)

	const frames = 4

	plt := &platform{}
	for range frames {
		test.DemandSuccess(t, rnd.Frame(plt))
	}
	test.DemandEquality(t, len(f.gl.Draws), frames*len(f.cfg.Objects))

	// the steady clock advances 100ms every frame
	for i, d := range f.gl.Draws {
		elapsed := float32(i/len(f.cfg.Objects)+1) * 0.1
		pos := f.cfg.Objects[i%len(f.cfg.Objects)]

		v, ok := d.Uniforms[f.uniform("model")].([16]float32)
		test.DemandSuccess(t, ok)

		want := mgl32.Translate3D(pos.Elem()).Mul4(mgl32.HomogRotate3DX(-math32.Pi / 3 * elapsed))
		test.ExpectSuccess(t, mgl32.Mat4(v).ApproxEqualThreshold(want, 1e-5), i)
	}

	expectNoErrors(t, f.gl)
}

func TestQuit(t *testing.T) {
	f := newFixture(t)

	rnd, err := renderer.NewRenderer(f.gl, f.cfg)
	test.DemandSuccess(t, err)

	plt := &platform{
		frames: [][]userinput.Event{
			{},
			{},
			{key("W", true), userinput.EventQuit{}},
		},
	}

	rnd.Run(plt)

	// the frame with the quit event is not drawn
	test.ExpectEquality(t, plt.swaps, 2)
	test.ExpectEquality(t, len(f.gl.Draws), 2)
	test.DemandEquality(t, len(plt.relative), 1)
	test.ExpectEquality(t, plt.relative[0], true)
}

type limiter struct {
	waits int
}

func (l *limiter) Wait() {
	l.waits++
}

func TestLimiter(t *testing.T) {
	f := newFixture(t)
	lim := &limiter{}
	f.cfg.Limiter = lim

	rnd, err := renderer.NewRenderer(f.gl, f.cfg)
	test.DemandSuccess(t, err)

	plt := &platform{
		frames: [][]userinput.Event{
			{},
			{userinput.EventQuit{}},
		},
	}

	rnd.Run(plt)

	// one wait for every call to Frame()
	test.ExpectEquality(t, lim.waits, 2)
	test.ExpectEquality(t, plt.swaps, 1)
}

func TestToggles(t *testing.T) {
	f := newFixture(t)

	rnd, err := renderer.NewRenderer(f.gl, f.cfg)
	test.DemandSuccess(t, err)

	ovl := &overlay{}
	rnd.SetOverlay(ovl, false)
	test.ExpectFailure(t, rnd.OverlayVisible())

	plt := &platform{
		frames: [][]userinput.Event{
			{key("F2", true), key("F2", false), key("F1", true)},
			{userinput.EventKeyboard{Key: "F2", Down: true, Repeat: true}},
			{key("Escape", true)},
			{userinput.EventMouseMotion{DX: 100, DY: 100}},
			{userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true}},
		},
	}

	test.ExpectSuccess(t, rnd.Frame(plt))
	test.ExpectSuccess(t, rnd.Wireframe())
	test.ExpectSuccess(t, rnd.OverlayVisible())
	test.ExpectEquality(t, f.gl.Draws[0].PolygonMode, opengl.LINE)
	test.DemandEquality(t, len(ovl.info), 1)
	test.ExpectEquality(t, ovl.info[0].Lesson, "test")
	test.ExpectEquality(t, ovl.info[0].Wireframe, true)
	test.ExpectWithin(t, ovl.info[0].FPS, 10, 0.001)

	// repeated key does not toggle
	test.ExpectSuccess(t, rnd.Frame(plt))
	test.ExpectSuccess(t, rnd.Wireframe())

	// releasing the mouse
	test.ExpectSuccess(t, rnd.Frame(plt))
	test.ExpectFailure(t, rnd.MouseCaptured())

	// mouse motion is ignored when the mouse is not captured
	yaw := f.cfg.Camera.Yaw()
	test.ExpectSuccess(t, rnd.Frame(plt))
	test.ExpectEquality(t, f.cfg.Camera.Yaw(), yaw)

	// clicking recaptures the mouse
	test.ExpectSuccess(t, rnd.Frame(plt))
	test.ExpectSuccess(t, rnd.MouseCaptured())
	test.ExpectEquality(t, plt.relative[0], false)
	test.ExpectEquality(t, plt.relative[1], true)

	test.ExpectEquality(t, len(ovl.info), 5)
}

func TestCameraInput(t *testing.T) {
	f := newFixture(t)

	rnd, err := renderer.NewRenderer(f.gl, f.cfg)
	test.DemandSuccess(t, err)

	plt := &platform{
		frames: [][]userinput.Event{
			{key("W", true)},
			{},
			{userinput.EventKeyboard{Key: "W", Down: true, Repeat: true}},
			{key("W", false), userinput.EventMouseMotion{DX: 10, DY: 0}},
			{userinput.EventMouseWheel{DY: 5}},
		},
	}

	cam := f.cfg.Camera

	// speed 2.5 and a frame time of 100ms
	test.ExpectSuccess(t, rnd.Frame(plt))
	test.ExpectWithin(t, cam.Position().Z(), 2.75, 0.0001)

	// no event so no movement
	test.ExpectSuccess(t, rnd.Frame(plt))
	test.ExpectWithin(t, cam.Position().Z(), 2.75, 0.0001)

	// key repeat moves the camera
	test.ExpectSuccess(t, rnd.Frame(plt))
	test.ExpectWithin(t, cam.Position().Z(), 2.5, 0.0001)

	test.ExpectSuccess(t, rnd.Frame(plt))
	test.ExpectWithin(t, cam.Yaw(), camera.DefaultYaw+1, 0.0001)

	test.ExpectSuccess(t, rnd.Frame(plt))
	test.ExpectWithin(t, cam.Fov(), camera.DefaultFov-5, 0.0001)
}

func TestHeldKeys(t *testing.T) {
	f := newFixture(t)
	f.cfg.HeldKeys = true

	rnd, err := renderer.NewRenderer(f.gl, f.cfg)
	test.DemandSuccess(t, err)

	plt := &platform{
		frames: [][]userinput.Event{
			{key("W", true)},
			{},
			{key("W", false)},
		},
	}

	cam := f.cfg.Camera

	test.ExpectSuccess(t, rnd.Frame(plt))
	test.ExpectWithin(t, cam.Position().Z(), 2.75, 0.0001)

	// movement continues while the key is held
	test.ExpectSuccess(t, rnd.Frame(plt))
	test.ExpectWithin(t, cam.Position().Z(), 2.5, 0.0001)

	test.ExpectSuccess(t, rnd.Frame(plt))
	test.ExpectWithin(t, cam.Position().Z(), 2.5, 0.0001)
}

func TestScreenshot(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".learnopengl", 0o700))

	f := newFixture(t)

	rnd, err := renderer.NewRenderer(f.gl, f.cfg)
	test.DemandSuccess(t, err)

	plt := &platform{
		frames: [][]userinput.Event{
			{key("F12", true)},
		},
	}
	test.ExpectSuccess(t, rnd.Frame(plt))

	files, err := filepath.Glob(filepath.Join(".learnopengl", "screenshots", "screenshot_test_*.png"))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(files), 1)

	fh, err := os.Open(files[0])
	test.DemandSuccess(t, err)
	defer fh.Close()

	img, err := png.Decode(fh)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), fakegl.DefaultWidth)
	test.ExpectEquality(t, img.Bounds().Dy(), fakegl.DefaultHeight)

	// the image is the clear color
	_, g, _, a := img.At(0, 0).RGBA()
	test.ExpectApproximate(t, int(g>>8), 77, 0.02)
	test.ExpectEquality(t, a>>8, uint32(255))

	expectNoErrors(t, f.gl)
}

func expectNoErrors(t *testing.T, gl *fakegl.GL) {
	t.Helper()
	test.ExpectEquality(t, len(opengl.Errors(gl)), 0, "gl errors")
}
