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

package overlay

import (
	_ "embed"
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/learnopengl/logger"
	"github.com/jetsetilly/learnopengl/opengl"
	"github.com/jetsetilly/learnopengl/renderer"
)

//go:embed shaders/gui.vert
var vertShader string

//go:embed shaders/gui.frag
var fragShader string

// Display provides the sizes needed to map the overlay to the window. The
// drawable size differs from the window size on high DPI displays.
type Display interface {
	WindowSize() (int32, int32)
	DrawableSize() (int32, int32)
}

// Overlay draws the debug window. It should be instantiated with New().
type Overlay struct {
	fn      opengl.Functions
	display Display
	context *imgui.Context

	program  *opengl.Program
	projMtx  int32
	texture  int32
	vao      *opengl.VertexArray
	vbo      *opengl.Buffer
	elements *opengl.Buffer
	font     *opengl.Texture2D
}

// New creates the imgui context and the GL resources for drawing it.
func New(fn opengl.Functions, display Display) (*Overlay, error) {
	ovl := &Overlay{
		fn:      fn,
		display: display,
		context: imgui.CreateContext(nil),
	}

	// no imgui.ini file
	imgui.CurrentIO().SetIniFilename("")

	err := ovl.setup()
	if err != nil {
		ovl.Destroy()
		return nil, err
	}

	logger.Log(logger.Allow, "overlay", "created")

	return ovl, nil
}

func (ovl *Overlay) setup() error {
	var err error

	ovl.program, err = opengl.ProgramFromVertFrag(ovl.fn, vertShader, fragShader)
	if err != nil {
		return err
	}
	ovl.projMtx, err = ovl.program.UniformLocation("ProjMtx")
	if err != nil {
		return err
	}
	ovl.texture, err = ovl.program.UniformLocation("Texture")
	if err != nil {
		return err
	}

	ovl.vao, err = opengl.NewVertexArray(ovl.fn)
	if err != nil {
		return err
	}
	ovl.vbo, err = opengl.NewBuffer(ovl.fn)
	if err != nil {
		return err
	}
	ovl.elements, err = opengl.NewBuffer(ovl.fn)
	if err != nil {
		return err
	}

	// vertex layout is decided by imgui
	st := opengl.StoreState(ovl.fn)
	defer st.Restore()

	ovl.vao.Bind()
	ovl.vbo.Bind(opengl.ArrayBuffer)
	ovl.elements.Bind(opengl.ElementBuffer)

	size, pos, uv, col := imgui.VertexBufferLayout()
	for _, a := range []opengl.Attribute{
		{Index: 0, Components: 2, Type: opengl.FLOAT, Stride: int32(size), Offset: pos},
		{Index: 1, Components: 2, Type: opengl.FLOAT, Stride: int32(size), Offset: uv},
		{Index: 2, Components: 4, Type: opengl.UNSIGNED_BYTE, Normalized: true, Stride: int32(size), Offset: col},
	} {
		opengl.ConfigureAttribute(ovl.fn, a)
		opengl.EnableAttribute(ovl.fn, a.Index)
	}

	return ovl.setupFont()
}

func (ovl *Overlay) setupFont() error {
	var err error

	ovl.font, err = opengl.NewTexture2D(ovl.fn)
	if err != nil {
		return err
	}

	fonts := imgui.CurrentIO().Fonts()
	img := fonts.TextureDataAlpha8()

	ovl.font.Bind(0)
	opengl.SetFilter(ovl.fn, opengl.LINEAR, opengl.LINEAR)
	opengl.SetWrap(ovl.fn, opengl.CLAMP_TO_EDGE, opengl.CLAMP_TO_EDGE)
	ovl.fn.PixelStorei(opengl.UNPACK_ROW_LENGTH, 0)

	pixels := unsafe.Slice((*byte)(img.Pixels), img.Width*img.Height)
	err = opengl.UploadPixels(ovl.fn, opengl.RED, opengl.RED, img.Width, img.Height, pixels)
	if err != nil {
		return err
	}

	fonts.SetTextureID(imgui.TextureID(ovl.font.ID()))

	return nil
}

// Destroy releases the GL resources and the imgui context. It is safe to call
// more than once.
func (ovl *Overlay) Destroy() {
	if ovl.program != nil {
		ovl.program.Delete()
	}
	if ovl.vao != nil {
		ovl.vao.Delete()
	}
	if ovl.vbo != nil {
		ovl.vbo.Delete()
	}
	if ovl.elements != nil {
		ovl.elements.Delete()
	}
	if ovl.font != nil {
		ovl.font.Delete()
	}
	if ovl.context != nil {
		ovl.context.Destroy()
		ovl.context = nil
	}
}

// Draw implements the renderer.Overlay interface.
func (ovl *Overlay) Draw(info renderer.Info) {
	winw, winh := ovl.display.WindowSize()
	fbw, fbh := ovl.display.DrawableSize()

	// nothing to draw into when minimised
	if winw <= 0 || winh <= 0 || fbw <= 0 || fbh <= 0 {
		return
	}

	io := imgui.CurrentIO()
	io.SetDisplaySize(imgui.Vec2{X: float32(winw), Y: float32(winh)})

	// imgui requires a positive delta time
	io.SetDeltaTime(max(info.Delta, 0.001))

	imgui.NewFrame()
	window(info)
	imgui.Render()

	ovl.render(float32(winw), float32(winh), float32(fbw), float32(fbh))
}

// window builds the imgui window for the frame.
func window(info renderer.Info) {
	imgui.SetNextWindowPos(imgui.Vec2{X: 10, Y: 10})
	imgui.SetNextWindowBgAlpha(0.5)

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsAlwaysAutoResize |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoNav

	if imgui.BeginV("overlay", nil, flags) {
		for _, l := range Lines(info) {
			if l == "" {
				imgui.Separator()
				continue
			}
			imgui.Text(l)
		}
	}
	imgui.End()
}

// Lines returns the text shown by the overlay. An empty string is a
// separator.
func Lines(info renderer.Info) []string {
	lines := []string{
		info.Lesson,
		fmt.Sprintf("%.1f fps", info.FPS),
		fmt.Sprintf("%.2f ms", info.Delta*1000),
	}

	if info.Wireframe {
		lines = append(lines, "wireframe")
	}

	if info.Camera != nil {
		pos := info.Camera.Position()
		lines = append(lines, "",
			fmt.Sprintf("position %.2f %.2f %.2f", pos.X(), pos.Y(), pos.Z()),
			fmt.Sprintf("yaw %.1f", info.Camera.Yaw()),
			fmt.Sprintf("pitch %.1f", info.Camera.Pitch()),
			fmt.Sprintf("fov %.1f", info.Camera.Fov()),
		)
	}

	return lines
}

// render translates the imgui draw data to GL commands.
func (ovl *Overlay) render(winw, winh, fbw, fbh float32) {
	fn := ovl.fn
	drawData := imgui.RenderedDrawData()

	st := opengl.StoreState(fn)
	defer st.Restore()

	// scale coordinates for high DPI displays
	drawData.ScaleClipRects(imgui.Vec2{
		X: fbw / winw,
		Y: fbh / winh,
	})

	// alpha-blending enabled, no face culling, no depth testing, scissor
	// enabled, polygon fill
	fn.Enable(opengl.BLEND)
	fn.BlendEquation(opengl.FUNC_ADD)
	fn.BlendFunc(opengl.SRC_ALPHA, opengl.ONE_MINUS_SRC_ALPHA)
	fn.Disable(opengl.CULL_FACE)
	fn.Disable(opengl.DEPTH_TEST)
	fn.Enable(opengl.SCISSOR_TEST)
	fn.PolygonMode(opengl.FRONT_AND_BACK, opengl.FILL)
	opengl.UnbindFramebuffer(fn)
	fn.Viewport(0, 0, int32(fbw), int32(fbh))

	// visible imgui space lies from the top left at (0,0) to the bottom right
	// at the window size
	proj := mgl32.Ortho2D(0, winw, winh, 0)

	ovl.program.Use()
	ovl.program.SetInt(ovl.texture, 0)
	ovl.program.SetMat4(ovl.projMtx, proj)

	ovl.vao.Bind()
	ovl.vbo.Bind(opengl.ArrayBuffer)
	ovl.elements.Bind(opengl.ElementBuffer)

	indexSize := imgui.IndexBufferLayout()
	drawType := opengl.UNSIGNED_SHORT
	if indexSize == 4 {
		drawType = opengl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		var indexBufferOffset int

		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		opengl.Upload(fn, opengl.ArrayBuffer, unsafe.Slice((*byte)(vertexBuffer), vertexBufferSize), opengl.StreamDraw)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		opengl.Upload(fn, opengl.ElementBuffer, unsafe.Slice((*byte)(indexBuffer), indexBufferSize), opengl.StreamDraw)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				fn.ActiveTexture(opengl.TEXTURE0)
				fn.BindTexture(opengl.TEXTURE_2D, uint32(cmd.TextureID()))

				clipRect := cmd.ClipRect()
				fn.Scissor(int32(clipRect.X), int32(fbh)-int32(clipRect.W),
					int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))

				fn.DrawElements(opengl.TRIANGLES, int32(cmd.ElementCount()), drawType, indexBufferOffset)
			}
			indexBufferOffset += cmd.ElementCount() * indexSize
		}
	}
}
