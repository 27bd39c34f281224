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

package scene

import (
	"embed"
	"path"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/learnopengl/assets"
	"github.com/jetsetilly/learnopengl/camera"
	"github.com/jetsetilly/learnopengl/curated"
	"github.com/jetsetilly/learnopengl/logger"
	"github.com/jetsetilly/learnopengl/opengl"
	"github.com/jetsetilly/learnopengl/renderer"
)

//go:embed shaders
var shaders embed.FS

// Sentinel error patterns.
const (
	UnknownLesson = "scene: unknown lesson: %s (valid lessons are %s)"
	BuildFailed   = "scene: %s: %v"
)

// ClearColor is used by every lesson.
var ClearColor = [4]float32{0.2, 0.3, 0.3, 1.0}

// Lesson is a scene ready to be drawn by the renderer. The lesson owns every
// GL resource referenced by the Config and releases them in Destroy().
type Lesson struct {
	Config renderer.Config

	fn       opengl.Functions
	buffers  []*opengl.Buffer
	textures []*opengl.Texture2D
}

type builder func(l *Lesson) error

var lessons = []struct {
	name  string
	build builder
}{
	{name: "triangle", build: buildTriangle},
	{name: "quad", build: buildQuad},
	{name: "colors", build: buildColors},
	{name: "uniform", build: buildUniform},
	{name: "textures", build: buildTextures},
	{name: "cubes", build: buildCubes},
}

// Names returns the names of the lessons in order of increasing complexity.
func Names() []string {
	n := make([]string, 0, len(lessons))
	for _, l := range lessons {
		n = append(n, l.name)
	}
	return n
}

// Build creates the named lesson. Any resources created before an error is
// encountered are released.
func Build(fn opengl.Functions, name string) (*Lesson, error) {
	for _, b := range lessons {
		if b.name != name {
			continue
		}

		l := &Lesson{
			fn: fn,
			Config: renderer.Config{
				Name:       name,
				ClearColor: ClearColor,
			},
		}

		if err := b.build(l); err != nil {
			l.Destroy()
			return nil, curated.Errorf(BuildFailed, name, err)
		}

		logger.Logf(logger.Allow, "scene", "built lesson: %s", name)
		return l, nil
	}

	return nil, curated.Errorf(UnknownLesson, name, strings.Join(Names(), ", "))
}

// Destroy releases the GL resources owned by the lesson. It is safe to call
// more than once.
func (l *Lesson) Destroy() {
	if l.Config.Program != nil {
		l.Config.Program.Delete()
	}
	if l.Config.VertexArray != nil {
		l.Config.VertexArray.Delete()
	}
	for _, b := range l.buffers {
		b.Delete()
	}
	for _, t := range l.textures {
		t.Delete()
	}
}

func (l *Lesson) program(vert string, frag string) error {
	vs, err := shaders.ReadFile(path.Join("shaders", vert))
	if err != nil {
		return err
	}
	fs, err := shaders.ReadFile(path.Join("shaders", frag))
	if err != nil {
		return err
	}

	l.Config.Program, err = opengl.ProgramFromVertFrag(l.fn, string(vs), string(fs))
	return err
}

// vertices creates the vertex array for the data. The indices are optional.
// The vertex array is left unbound.
func (l *Lesson) vertices(data []float32, layout opengl.Layout, indices []uint32) error {
	var err error

	l.Config.VertexArray, err = opengl.NewVertexArray(l.fn)
	if err != nil {
		return err
	}

	l.Config.VertexArray.Bind()
	defer opengl.UnbindVertexArray(l.fn)

	vbo, err := l.buffer()
	if err != nil {
		return err
	}
	vbo.Bind(opengl.ArrayBuffer)
	defer opengl.UnbindBuffer(l.fn, opengl.ArrayBuffer)
	opengl.Upload(l.fn, opengl.ArrayBuffer, opengl.Bytes(data), opengl.StaticDraw)

	if len(indices) > 0 {
		// the element buffer binding is recorded by the vertex array so it
		// must not be unbound while the vertex array is bound
		ebo, err := l.buffer()
		if err != nil {
			return err
		}
		ebo.Bind(opengl.ElementBuffer)
		opengl.Upload(l.fn, opengl.ElementBuffer, opengl.Bytes(indices), opengl.StaticDraw)
	}

	layout.Apply(l.fn)

	return nil
}

func (l *Lesson) buffer() (*opengl.Buffer, error) {
	b, err := opengl.NewBuffer(l.fn)
	if err != nil {
		return nil, err
	}
	l.buffers = append(l.buffers, b)
	return b, nil
}

// texture loads the asset and adds it to the list of textures in the Config.
// The texture unit is the order in which textures are added.
func (l *Lesson) texture(sampler string, asset string) error {
	img, err := assets.Load(assets.Path(asset))
	if err != nil {
		return err
	}

	tex, err := opengl.SetupTexture2D(l.fn, opengl.DefaultTextureParams, img)
	if err != nil {
		return err
	}
	l.textures = append(l.textures, tex)

	l.Config.Textures = append(l.Config.Textures, renderer.TextureUnit{
		Sampler: sampler,
		Texture: tex,
	})

	return nil
}

func buildTriangle(l *Lesson) error {
	if err := l.program("position.vert", "orange.frag"); err != nil {
		return err
	}
	layout := opengl.Layout{3}
	if err := l.vertices(triangleVertices, layout, nil); err != nil {
		return err
	}
	l.Config.Draw = renderer.Arrays(layout.VertexCount(triangleVertices))
	return nil
}

func buildQuad(l *Lesson) error {
	if err := l.program("position.vert", "orange.frag"); err != nil {
		return err
	}
	if err := l.vertices(quadVertices, opengl.Layout{3}, quadIndices); err != nil {
		return err
	}
	l.Config.Draw = renderer.Indexed(int32(len(quadIndices)))
	return nil
}

func buildColors(l *Lesson) error {
	if err := l.program("colors.vert", "colors.frag"); err != nil {
		return err
	}
	layout := opengl.Layout{3, 3}
	if err := l.vertices(colorVertices, layout, nil); err != nil {
		return err
	}
	l.Config.Draw = renderer.Arrays(layout.VertexCount(colorVertices))
	return nil
}

// PulseGreen is the value of the green channel in the uniform lesson after
// elapsed seconds.
func PulseGreen(elapsed float32) float32 {
	return math32.Sin(elapsed)/2 + 0.5
}

func buildUniform(l *Lesson) error {
	if err := l.program("position.vert", "uniform.frag"); err != nil {
		return err
	}
	layout := opengl.Layout{3}
	if err := l.vertices(triangleVertices, layout, nil); err != nil {
		return err
	}
	l.Config.Draw = renderer.Arrays(layout.VertexCount(triangleVertices))

	prog := l.Config.Program
	loc, err := prog.UniformLocation("ourColor")
	if err != nil {
		return err
	}
	l.Config.PerFrame = func(elapsed float32) {
		prog.SetVec4(loc, 0, PulseGreen(elapsed), 0, 1)
	}

	return nil
}

// Rotate is the model matrix in the textures lesson after elapsed seconds.
// The quad is moved to the bottom right of the window and rotated about the Z
// axis once every 2π seconds.
func Rotate(_ int, _ mgl32.Vec3, elapsed float32) mgl32.Mat4 {
	angle := math32.Mod(elapsed, 2*math32.Pi)
	return mgl32.Translate3D(0.5, -0.5, 0.0).Mul4(mgl32.HomogRotate3DZ(angle))
}

func buildTextures(l *Lesson) error {
	if err := l.program("textures.vert", "textures.frag"); err != nil {
		return err
	}
	if err := l.vertices(texturedVertices, opengl.Layout{3, 3, 2}, texturedIndices); err != nil {
		return err
	}
	if err := l.texture("texture1", "wall.jpg"); err != nil {
		return err
	}
	if err := l.texture("texture2", "awesomeface.png"); err != nil {
		return err
	}
	l.Config.Draw = renderer.Indexed(int32(len(texturedIndices)))
	l.Config.Matrices = true
	l.Config.Animate = Rotate
	return nil
}

func buildCubes(l *Lesson) error {
	if err := l.program("cubes.vert", "cubes.frag"); err != nil {
		return err
	}
	layout := opengl.Layout{3, 2}
	if err := l.vertices(cubeVertices, layout, nil); err != nil {
		return err
	}
	if err := l.texture("texture1", "wall.jpg"); err != nil {
		return err
	}
	if err := l.texture("texture2", "awesomeface.png"); err != nil {
		return err
	}
	l.Config.Draw = renderer.Arrays(layout.VertexCount(cubeVertices))
	l.Config.Objects = CubePositions
	l.Config.Matrices = true
	l.Config.Animate = renderer.Spin
	l.Config.Camera = camera.NewCamera()
	l.Config.DepthTest = true
	return nil
}
