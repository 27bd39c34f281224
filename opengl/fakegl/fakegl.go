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

package fakegl

import (
	"slices"

	"github.com/jetsetilly/learnopengl/opengl"
)

// default size of the default framebuffer.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// status returned by CheckFramebufferStatus() for a framebuffer without a
// usable color attachment.
const incompleteAttachment opengl.Enum = 0x8CD6

// status returned for attachments of different sizes. this is the value of
// the EXT/ES enum FRAMEBUFFER_INCOMPLETE_DIMENSIONS.
const incompleteDimensions opengl.Enum = 0x8CD9

// GL implements the opengl.Functions interface. It should be instantiated
// with New().
type GL struct {
	// if true then all Gen and Create functions return zero
	FailAllocation bool

	// if true then LinkProgram() fails with LinkLog as the info log
	FailLink bool
	LinkLog  string

	// values returned by GetString()
	Strings map[opengl.Enum]string

	// values returned by GetIntegerv() for the implementation limits
	MaxVertexAttribs int32
	MaxTextureUnits  int32

	// size of the default framebuffer
	Screen struct {
		Width  int32
		Height int32
	}

	// every call made to the GL, in order
	Calls []Call

	// every draw and clear call, in order
	Draws  []Draw
	Clears []Clear

	// emulated objects indexed by name. deleted objects remain in the maps
	// with the Deleted field set to true
	VertexArrays map[uint32]*VertexArray
	Buffers      map[uint32]*Buffer
	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program
	Textures     map[uint32]*Texture
	Framebuffers map[uint32]*Framebuffer

	// the most recently allocated name. names are shared by all object types
	name uint32

	// pending errors. oldest first
	errors []opengl.Enum

	// bindings
	vertexArray   uint32
	arrayBuffer   uint32
	elementBuffer uint32
	program       uint32
	activeUnit    uint32
	units         map[uint32]uint32
	framebuffer   uint32

	// context state
	clearColor      [4]float32
	capabilities    map[opengl.Enum]bool
	polygonMode     opengl.Enum
	viewport        [4]int32
	scissor         [4]int32
	blendEquation   [2]opengl.Enum
	blendFunc       [4]opengl.Enum
	unpackAlignment int32
	packAlignment   int32
	unpackRowLength int32

	// RGBA contents of the default framebuffer. allocated on first use
	screen []byte
}

var _ opengl.Functions = (*GL)(nil)

// New is the preferred method of initialisation for the GL type.
func New() *GL {
	g := &GL{
		Strings: map[opengl.Enum]string{
			opengl.VENDOR:                   "fakegl",
			opengl.RENDERER:                 "fakegl",
			opengl.VERSION:                  "3.3 (Core Profile) fakegl",
			opengl.SHADING_LANGUAGE_VERSION: "3.30",
		},
		MaxVertexAttribs: 16,
		MaxTextureUnits:  32,
		VertexArrays:     make(map[uint32]*VertexArray),
		Buffers:          make(map[uint32]*Buffer),
		Shaders:          make(map[uint32]*Shader),
		Programs:         make(map[uint32]*Program),
		Textures:         make(map[uint32]*Texture),
		Framebuffers:     make(map[uint32]*Framebuffer),
		units:            make(map[uint32]uint32),
		capabilities:     make(map[opengl.Enum]bool),
		polygonMode:      opengl.FILL,
		blendEquation:    [2]opengl.Enum{opengl.FUNC_ADD, opengl.FUNC_ADD},
		unpackAlignment:  4,
		packAlignment:    4,
	}

	g.Screen.Width = DefaultWidth
	g.Screen.Height = DefaultHeight
	g.viewport = [4]int32{0, 0, DefaultWidth, DefaultHeight}
	g.scissor = g.viewport

	// GL_ONE and GL_ZERO
	g.blendFunc = [4]opengl.Enum{1, 0, 1, 0}

	return g
}

func (g *GL) record(name string, args ...any) {
	g.Calls = append(g.Calls, Call{Name: name, Args: args})
}

func (g *GL) raise(err opengl.Enum) {
	g.errors = append(g.errors, err)
}

// Count returns the number of times the named function has been called.
func (g *GL) Count(name string) int {
	var n int
	for _, c := range g.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find returns every call made to the named function.
func (g *GL) Find(name string) []Call {
	var f []Call
	for _, c := range g.Calls {
		if c.Name == name {
			f = append(f, c)
		}
	}
	return f
}

// Forget clears the record of calls, draws and clears. Object state and
// bindings are not affected.
func (g *GL) Forget() {
	g.Calls = g.Calls[:0]
	g.Draws = g.Draws[:0]
	g.Clears = g.Clears[:0]
}

// Pending returns the errors that have not yet been collected with
// GetError(). The errors are not cleared.
func (g *GL) Pending() []opengl.Enum {
	return slices.Clone(g.errors)
}

// CurrentProgram returns the program made current by UseProgram().
func (g *GL) CurrentProgram() uint32 {
	return g.program
}

// CurrentVertexArray returns the bound vertex array.
func (g *GL) CurrentVertexArray() uint32 {
	return g.vertexArray
}

// CurrentFramebuffer returns the bound framebuffer.
func (g *GL) CurrentFramebuffer() uint32 {
	return g.framebuffer
}

// BoundTexture returns the texture bound to the texture unit.
func (g *GL) BoundTexture(unit uint32) uint32 {
	return g.units[unit]
}

// ClearColorValue returns the color most recently set with ClearColor().
func (g *GL) ClearColorValue() [4]float32 {
	return g.clearColor
}

// PolygonModeValue returns the current polygon mode.
func (g *GL) PolygonModeValue() opengl.Enum {
	return g.polygonMode
}

// ViewportValue returns the current viewport.
func (g *GL) ViewportValue() [4]int32 {
	return g.viewport
}

// Enabled returns the state of a capability without recording a call.
func (g *GL) Enabled(capability opengl.Enum) bool {
	return g.capabilities[capability]
}

func (g *GL) allocate() uint32 {
	if g.FailAllocation {
		return 0
	}
	g.name++
	return g.name
}

// GetError implements the opengl.Functions interface.
func (g *GL) GetError() opengl.Enum {
	g.record("GetError")
	if len(g.errors) == 0 {
		return opengl.NO_ERROR
	}
	err := g.errors[0]
	g.errors = g.errors[1:]
	return err
}

// GetString implements the opengl.Functions interface.
func (g *GL) GetString(name opengl.Enum) string {
	g.record("GetString", name)
	s, ok := g.Strings[name]
	if !ok {
		g.raise(opengl.INVALID_ENUM)
	}
	return s
}

// GetIntegerv implements the opengl.Functions interface.
func (g *GL) GetIntegerv(pname opengl.Enum, data []int32) {
	g.record("GetIntegerv", pname)

	var v []int32
	switch pname {
	case opengl.ACTIVE_TEXTURE:
		v = []int32{int32(opengl.TEXTURE0) + int32(g.activeUnit)}
	case opengl.CURRENT_PROGRAM:
		v = []int32{int32(g.program)}
	case opengl.TEXTURE_BINDING_2D:
		v = []int32{int32(g.units[g.activeUnit])}
	case opengl.ARRAY_BUFFER_BINDING:
		v = []int32{int32(g.arrayBuffer)}
	case opengl.ELEMENT_ARRAY_BUFFER_BINDING:
		v = []int32{int32(g.boundElementBuffer())}
	case opengl.VERTEX_ARRAY_BINDING:
		v = []int32{int32(g.vertexArray)}
	case opengl.FRAMEBUFFER_BINDING:
		v = []int32{int32(g.framebuffer)}
	case opengl.POLYGON_MODE:
		v = []int32{int32(g.polygonMode), int32(g.polygonMode)}
	case opengl.VIEWPORT:
		v = g.viewport[:]
	case opengl.SCISSOR_BOX:
		v = g.scissor[:]
	case opengl.BLEND_EQUATION_RGB:
		v = []int32{int32(g.blendEquation[0])}
	case opengl.BLEND_EQUATION_ALPHA:
		v = []int32{int32(g.blendEquation[1])}
	case opengl.BLEND_SRC_RGB:
		v = []int32{int32(g.blendFunc[0])}
	case opengl.BLEND_DST_RGB:
		v = []int32{int32(g.blendFunc[1])}
	case opengl.BLEND_SRC_ALPHA:
		v = []int32{int32(g.blendFunc[2])}
	case opengl.BLEND_DST_ALPHA:
		v = []int32{int32(g.blendFunc[3])}
	case opengl.MAX_VERTEX_ATTRIBS:
		v = []int32{g.MaxVertexAttribs}
	case opengl.MAX_COMBINED_TEXTURE_IMAGE_UNITS:
		v = []int32{g.MaxTextureUnits}
	case opengl.UNPACK_ALIGNMENT:
		v = []int32{g.unpackAlignment}
	case opengl.PACK_ALIGNMENT:
		v = []int32{g.packAlignment}
	case opengl.UNPACK_ROW_LENGTH:
		v = []int32{g.unpackRowLength}
	default:
		g.raise(opengl.INVALID_ENUM)
		return
	}

	if len(data) < len(v) {
		g.raise(opengl.INVALID_VALUE)
		return
	}
	copy(data, v)
}

func validCapability(capability opengl.Enum) bool {
	switch capability {
	case opengl.BLEND, opengl.CULL_FACE, opengl.DEPTH_TEST, opengl.SCISSOR_TEST:
		return true
	}
	return false
}

// Enable implements the opengl.Functions interface.
func (g *GL) Enable(capability opengl.Enum) {
	g.record("Enable", capability)
	if !validCapability(capability) {
		g.raise(opengl.INVALID_ENUM)
		return
	}
	g.capabilities[capability] = true
}

// Disable implements the opengl.Functions interface.
func (g *GL) Disable(capability opengl.Enum) {
	g.record("Disable", capability)
	if !validCapability(capability) {
		g.raise(opengl.INVALID_ENUM)
		return
	}
	g.capabilities[capability] = false
}

// IsEnabled implements the opengl.Functions interface.
func (g *GL) IsEnabled(capability opengl.Enum) bool {
	g.record("IsEnabled", capability)
	if !validCapability(capability) {
		g.raise(opengl.INVALID_ENUM)
		return false
	}
	return g.capabilities[capability]
}

// PolygonMode implements the opengl.Functions interface.
func (g *GL) PolygonMode(face opengl.Enum, mode opengl.Enum) {
	g.record("PolygonMode", face, mode)
	if face != opengl.FRONT_AND_BACK {
		g.raise(opengl.INVALID_ENUM)
		return
	}
	switch mode {
	case opengl.POINT, opengl.LINE, opengl.FILL:
		g.polygonMode = mode
	default:
		g.raise(opengl.INVALID_ENUM)
	}
}

// Viewport implements the opengl.Functions interface.
func (g *GL) Viewport(x, y, width, height int32) {
	g.record("Viewport", x, y, width, height)
	if width < 0 || height < 0 {
		g.raise(opengl.INVALID_VALUE)
		return
	}
	g.viewport = [4]int32{x, y, width, height}
}

// Scissor implements the opengl.Functions interface.
func (g *GL) Scissor(x, y, width, height int32) {
	g.record("Scissor", x, y, width, height)
	if width < 0 || height < 0 {
		g.raise(opengl.INVALID_VALUE)
		return
	}
	g.scissor = [4]int32{x, y, width, height}
}

// BlendEquation implements the opengl.Functions interface.
func (g *GL) BlendEquation(mode opengl.Enum) {
	g.record("BlendEquation", mode)
	g.blendEquation = [2]opengl.Enum{mode, mode}
}

// BlendEquationSeparate implements the opengl.Functions interface.
func (g *GL) BlendEquationSeparate(modeRGB opengl.Enum, modeAlpha opengl.Enum) {
	g.record("BlendEquationSeparate", modeRGB, modeAlpha)
	g.blendEquation = [2]opengl.Enum{modeRGB, modeAlpha}
}

// BlendFunc implements the opengl.Functions interface.
func (g *GL) BlendFunc(sfactor opengl.Enum, dfactor opengl.Enum) {
	g.record("BlendFunc", sfactor, dfactor)
	g.blendFunc = [4]opengl.Enum{sfactor, dfactor, sfactor, dfactor}
}

// BlendFuncSeparate implements the opengl.Functions interface.
func (g *GL) BlendFuncSeparate(srcRGB opengl.Enum, dstRGB opengl.Enum, srcAlpha opengl.Enum, dstAlpha opengl.Enum) {
	g.record("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
	g.blendFunc = [4]opengl.Enum{srcRGB, dstRGB, srcAlpha, dstAlpha}
}

// PixelStorei implements the opengl.Functions interface.
func (g *GL) PixelStorei(pname opengl.Enum, param int32) {
	g.record("PixelStorei", pname, param)

	switch pname {
	case opengl.UNPACK_ALIGNMENT, opengl.PACK_ALIGNMENT:
		switch param {
		case 1, 2, 4, 8:
		default:
			g.raise(opengl.INVALID_VALUE)
			return
		}
		if pname == opengl.UNPACK_ALIGNMENT {
			g.unpackAlignment = param
		} else {
			g.packAlignment = param
		}
	case opengl.UNPACK_ROW_LENGTH:
		if param < 0 {
			g.raise(opengl.INVALID_VALUE)
			return
		}
		g.unpackRowLength = param
	default:
		g.raise(opengl.INVALID_ENUM)
	}
}
