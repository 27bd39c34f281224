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

// State stores GL context state with the intention of restoration after a
// short period. For example, around the drawing of an overlay that changes
// bindings and capabilities the scene relies on.
type State struct {
	fn Functions

	activeTexture      int32
	program            int32
	texture            int32
	arrayBuffer        int32
	elementArrayBuffer int32
	vertexArray        int32
	framebuffer        int32
	polygonMode        [2]int32
	viewport           [4]int32
	scissorBox         [4]int32
	blendSrcRgb        int32
	blendDstRgb        int32
	blendSrcAlpha      int32
	blendDstAlpha      int32
	blendEquationRgb   int32
	blendEquationAlpha int32
	enableBlend        bool
	enableCullFace     bool
	enableDepthTest    bool
	enableScissorTest  bool
}

// StoreState is the best way of initialising an instance of State.
func StoreState(fn Functions) *State {
	st := &State{fn: fn}

	geti := func(pname Enum, v *int32) {
		var d [1]int32
		fn.GetIntegerv(pname, d[:])
		*v = d[0]
	}

	geti(ACTIVE_TEXTURE, &st.activeTexture)
	geti(CURRENT_PROGRAM, &st.program)
	geti(TEXTURE_BINDING_2D, &st.texture)
	geti(ARRAY_BUFFER_BINDING, &st.arrayBuffer)
	geti(ELEMENT_ARRAY_BUFFER_BINDING, &st.elementArrayBuffer)
	geti(VERTEX_ARRAY_BINDING, &st.vertexArray)
	geti(FRAMEBUFFER_BINDING, &st.framebuffer)
	fn.GetIntegerv(POLYGON_MODE, st.polygonMode[:])
	fn.GetIntegerv(VIEWPORT, st.viewport[:])
	fn.GetIntegerv(SCISSOR_BOX, st.scissorBox[:])
	geti(BLEND_SRC_RGB, &st.blendSrcRgb)
	geti(BLEND_DST_RGB, &st.blendDstRgb)
	geti(BLEND_SRC_ALPHA, &st.blendSrcAlpha)
	geti(BLEND_DST_ALPHA, &st.blendDstAlpha)
	geti(BLEND_EQUATION_RGB, &st.blendEquationRgb)
	geti(BLEND_EQUATION_ALPHA, &st.blendEquationAlpha)
	st.enableBlend = fn.IsEnabled(BLEND)
	st.enableCullFace = fn.IsEnabled(CULL_FACE)
	st.enableDepthTest = fn.IsEnabled(DEPTH_TEST)
	st.enableScissorTest = fn.IsEnabled(SCISSOR_TEST)

	return st
}

// Restore the previously stored state.
func (st *State) Restore() {
	fn := st.fn

	// the element array buffer binding is part of the vertex array state so
	// the vertex array must be restored first
	fn.UseProgram(uint32(st.program))
	fn.ActiveTexture(Enum(st.activeTexture))
	fn.BindTexture(TEXTURE_2D, uint32(st.texture))
	fn.BindVertexArray(uint32(st.vertexArray))
	fn.BindBuffer(ARRAY_BUFFER, uint32(st.arrayBuffer))
	fn.BindBuffer(ELEMENT_ARRAY_BUFFER, uint32(st.elementArrayBuffer))
	fn.BindFramebuffer(FRAMEBUFFER, uint32(st.framebuffer))
	fn.BlendEquationSeparate(Enum(st.blendEquationRgb), Enum(st.blendEquationAlpha))
	fn.BlendFuncSeparate(Enum(st.blendSrcRgb), Enum(st.blendDstRgb), Enum(st.blendSrcAlpha), Enum(st.blendDstAlpha))

	enable := func(capability Enum, on bool) {
		if on {
			fn.Enable(capability)
		} else {
			fn.Disable(capability)
		}
	}
	enable(BLEND, st.enableBlend)
	enable(CULL_FACE, st.enableCullFace)
	enable(DEPTH_TEST, st.enableDepthTest)
	enable(SCISSOR_TEST, st.enableScissorTest)

	fn.PolygonMode(FRONT_AND_BACK, Enum(st.polygonMode[0]))
	fn.Viewport(st.viewport[0], st.viewport[1], st.viewport[2], st.viewport[3])
	fn.Scissor(st.scissorBox[0], st.scissorBox[1], st.scissorBox[2], st.scissorBox[3])
}
