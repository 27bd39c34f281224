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
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/learnopengl/camera"
	"github.com/jetsetilly/learnopengl/curated"
	"github.com/jetsetilly/learnopengl/logger"
	"github.com/jetsetilly/learnopengl/opengl"
	"github.com/jetsetilly/learnopengl/userinput"
)

// ConfigError is the pattern for errors found in the Config when the renderer
// is created.
const ConfigError = "renderer: %v"

// Info is the information sent to the Overlay every frame.
type Info struct {
	Lesson    string
	Delta     float32
	Elapsed   float32
	FPS       float32
	Camera    *camera.Camera
	Wireframe bool
}

// Overlay is drawn after the scene and before the frame is presented. The
// overlay must leave the GL state as it found it.
type Overlay interface {
	Draw(info Info)
}

// Renderer draws the scene described by a Config. It should be instantiated
// with NewRenderer().
type Renderer struct {
	fn  opengl.Functions
	cfg Config

	clock    *Clock
	matrices *opengl.MatrixUniforms
	keys     userinput.KeyState

	overlay     Overlay
	showOverlay bool

	wireframe  bool
	captured   bool
	screenshot bool

	// smoothed frames per second
	fps float32
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type. All uniforms required by the Config are resolved and the sampler
// uniforms are assigned their texture units.
func NewRenderer(fn opengl.Functions, cfg Config) (*Renderer, error) {
	if cfg.Program == nil {
		return nil, curated.Errorf(ConfigError, "no program")
	}
	if cfg.VertexArray == nil {
		return nil, curated.Errorf(ConfigError, "no vertex array")
	}
	if cfg.Draw.count <= 0 {
		return nil, curated.Errorf(ConfigError, "nothing to draw")
	}

	rnd := &Renderer{
		fn:       fn,
		cfg:      cfg,
		clock:    cfg.Clock,
		captured: true,
	}

	if rnd.clock == nil {
		rnd.clock = NewClock()
	}

	// samplers read from the texture unit with the same index as the texture
	// in the Config
	cfg.Program.Use()
	defer opengl.UnuseProgram(fn)

	for i, tu := range cfg.Textures {
		if tu.Texture == nil {
			return nil, curated.Errorf(ConfigError, "no texture for sampler "+tu.Sampler)
		}
		loc, err := cfg.Program.UniformLocation(tu.Sampler)
		if err != nil {
			return nil, curated.Errorf(ConfigError, err)
		}
		cfg.Program.SetInt(loc, int32(i))
	}

	if cfg.Matrices {
		var err error
		rnd.matrices, err = opengl.NewMatrixUniforms(cfg.Program)
		if err != nil {
			return nil, curated.Errorf(ConfigError, err)
		}
	}

	return rnd, nil
}

// SetOverlay sets the overlay and whether it is visible. The visibility can
// be toggled with the F1 key.
func (rnd *Renderer) SetOverlay(overlay Overlay, visible bool) {
	rnd.overlay = overlay
	rnd.showOverlay = visible && overlay != nil
}

// OverlayVisible returns true if the overlay is drawn.
func (rnd *Renderer) OverlayVisible() bool {
	return rnd.showOverlay
}

// Wireframe returns true if the scene is drawn in wireframe mode.
func (rnd *Renderer) Wireframe() bool {
	return rnd.wireframe
}

// MouseCaptured returns true if mouse motion is used to turn the camera.
func (rnd *Renderer) MouseCaptured() bool {
	return rnd.captured
}

// Clock returns the clock used by the renderer.
func (rnd *Renderer) Clock() *Clock {
	return rnd.clock
}

// Run calls Frame() until it returns false.
func (rnd *Renderer) Run(plt Platform) {
	plt.SetRelativeMouse(rnd.captured)
	for {
		if rnd.cfg.Limiter != nil {
			rnd.cfg.Limiter.Wait()
		}
		if !rnd.Frame(plt) {
			return
		}
	}
}

// Frame processes pending input and draws one frame. Returns false if a quit
// event was received, in which case nothing is drawn.
func (rnd *Renderer) Frame(plt Platform) bool {
	delta := rnd.clock.Tick()
	elapsed := rnd.clock.Elapsed()

	if delta > 0 {
		const smoothing = 0.1
		if rnd.fps == 0 {
			rnd.fps = 1 / delta
		} else {
			rnd.fps += (1/delta - rnd.fps) * smoothing
		}
	}

	for ev := plt.PollEvent(); ev != nil; ev = plt.PollEvent() {
		if _, ok := ev.(userinput.EventQuit); ok {
			return false
		}
		rnd.handleEvent(plt, ev, delta)
	}

	if rnd.cfg.HeldKeys && rnd.cfg.Camera != nil {
		for _, k := range rnd.keys.Keys() {
			if dir, ok := camera.KeyDirection(k); ok {
				rnd.cfg.Camera.Move(dir, delta)
			}
		}
	}

	rnd.draw(plt, elapsed)

	if rnd.screenshot {
		rnd.screenshot = false
		rnd.saveScreenshot()
	}

	if rnd.showOverlay {
		rnd.overlay.Draw(Info{
			Lesson:    rnd.cfg.Name,
			Delta:     delta,
			Elapsed:   elapsed,
			FPS:       rnd.fps,
			Camera:    rnd.cfg.Camera,
			Wireframe: rnd.wireframe,
		})
	}

	for _, err := range opengl.Errors(rnd.fn) {
		logger.Logf(logger.Allow, "gl", "error: %#04x", uint32(err))
	}

	plt.Swap()

	return true
}

func (rnd *Renderer) handleEvent(plt Platform, ev userinput.Event, delta float32) {
	cam := rnd.cfg.Camera

	switch ev := ev.(type) {
	case userinput.EventKeyboard:
		rnd.keys.Update(ev)

		if !ev.Down {
			return
		}

		if !ev.Repeat {
			switch ev.Key {
			case "F1":
				if rnd.overlay != nil {
					rnd.showOverlay = !rnd.showOverlay
				}
				return
			case "F2":
				rnd.wireframe = !rnd.wireframe
				return
			case "F12":
				rnd.screenshot = true
				return
			case "Escape":
				rnd.setCapture(plt, false)
				return
			}
		}

		if !rnd.cfg.HeldKeys && cam != nil {
			if dir, ok := camera.KeyDirection(ev.Key); ok {
				cam.Move(dir, delta)
			}
		}

	case userinput.EventMouseMotion:
		if rnd.captured && cam != nil {
			cam.Look(ev.DX, ev.DY)
		}

	case userinput.EventMouseWheel:
		if cam != nil {
			cam.Zoom(ev.DY)
		}

	case userinput.EventMouseButton:
		if ev.Down && !rnd.captured {
			rnd.setCapture(plt, true)
		}
	}
}

func (rnd *Renderer) setCapture(plt Platform, captured bool) {
	if rnd.captured == captured {
		return
	}
	rnd.captured = captured
	plt.SetRelativeMouse(captured)
	logger.Logf(logger.Allow, "renderer", "mouse captured: %v", captured)
}

// draw the scene. the program, vertex array and textures are unbound
// afterwards.
func (rnd *Renderer) draw(plt Platform, elapsed float32) {
	fn := rnd.fn
	cfg := rnd.cfg

	opengl.SetWireframe(fn, rnd.wireframe)
	opengl.SetDepthTest(fn, cfg.DepthTest)
	opengl.ClearColor(fn, cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], cfg.ClearColor[3])
	opengl.Clear(fn, cfg.DepthTest)

	cfg.Program.Use()
	defer opengl.UnuseProgram(fn)

	for i, tu := range cfg.Textures {
		tu.Texture.Bind(uint32(i))
	}
	defer func() {
		for i := range cfg.Textures {
			opengl.UnbindTexture(fn, uint32(i))
		}
	}()

	if cfg.PerFrame != nil {
		cfg.PerFrame(elapsed)
	}

	if rnd.matrices != nil {
		view := mgl32.Ident4()
		projection := mgl32.Ident4()
		if cfg.Camera != nil {
			view = cfg.Camera.View()
			projection = cfg.Camera.Projection(plt.AspectRatio())
		}
		rnd.matrices.SetViewProjection(view, projection)
	}

	cfg.VertexArray.Bind()
	defer opengl.UnbindVertexArray(fn)

	if len(cfg.Objects) == 0 {
		if rnd.matrices != nil {
			rnd.matrices.SetModel(rnd.model(0, mgl32.Vec3{}, elapsed))
		}
		cfg.Draw.issue(fn)
		return
	}

	for i, pos := range cfg.Objects {
		if rnd.matrices != nil {
			rnd.matrices.SetModel(rnd.model(i, pos, elapsed))
		}
		cfg.Draw.issue(fn)
	}
}

func (rnd *Renderer) model(index int, position mgl32.Vec3, elapsed float32) mgl32.Mat4 {
	if rnd.cfg.Animate == nil {
		return mgl32.Translate3D(position.Elem())
	}
	return rnd.cfg.Animate(index, position, elapsed)
}
