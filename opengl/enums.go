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

// Enum is a GL enumerated value.
type Enum uint32

// GL enumerated values used by the package and its users. Values are as
// defined by the GL 3.3 Core specification.
const (
	NO_ERROR          Enum = 0x0000
	INVALID_ENUM      Enum = 0x0500
	INVALID_VALUE     Enum = 0x0501
	INVALID_OPERATION Enum = 0x0502

	DEPTH_BUFFER_BIT Enum = 0x0100
	COLOR_BUFFER_BIT Enum = 0x4000

	TRIANGLES Enum = 0x0004

	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406

	ARRAY_BUFFER                 Enum = 0x8892
	ELEMENT_ARRAY_BUFFER         Enum = 0x8893
	ARRAY_BUFFER_BINDING         Enum = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING Enum = 0x8895
	STREAM_DRAW                  Enum = 0x88E0
	STATIC_DRAW                  Enum = 0x88E4
	DYNAMIC_DRAW                 Enum = 0x88E8

	VERTEX_ARRAY_BINDING             Enum = 0x85B5
	MAX_VERTEX_ATTRIBS               Enum = 0x8869
	MAX_COMBINED_TEXTURE_IMAGE_UNITS Enum = 0x8B4D

	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	INFO_LOG_LENGTH Enum = 0x8B84
	CURRENT_PROGRAM Enum = 0x8B8D

	TEXTURE_2D             Enum = 0x0DE1
	TEXTURE0               Enum = 0x84C0
	ACTIVE_TEXTURE         Enum = 0x84E0
	TEXTURE_BINDING_2D     Enum = 0x8069
	TEXTURE_MAG_FILTER     Enum = 0x2800
	TEXTURE_MIN_FILTER     Enum = 0x2801
	TEXTURE_WRAP_S         Enum = 0x2802
	TEXTURE_WRAP_T         Enum = 0x2803
	NEAREST                Enum = 0x2600
	LINEAR                 Enum = 0x2601
	NEAREST_MIPMAP_NEAREST Enum = 0x2700
	LINEAR_MIPMAP_NEAREST  Enum = 0x2701
	NEAREST_MIPMAP_LINEAR  Enum = 0x2702
	LINEAR_MIPMAP_LINEAR   Enum = 0x2703
	REPEAT                 Enum = 0x2901
	CLAMP_TO_BORDER        Enum = 0x812D
	CLAMP_TO_EDGE          Enum = 0x812F
	MIRRORED_REPEAT        Enum = 0x8370
	UNPACK_ROW_LENGTH      Enum = 0x0CF2
	UNPACK_ALIGNMENT       Enum = 0x0CF5
	PACK_ALIGNMENT         Enum = 0x0D05

	RED  Enum = 0x1903
	RGB  Enum = 0x1907
	RGBA Enum = 0x1908

	FRAMEBUFFER          Enum = 0x8D40
	FRAMEBUFFER_BINDING  Enum = 0x8CA6
	FRAMEBUFFER_COMPLETE Enum = 0x8CD5
	COLOR_ATTACHMENT0    Enum = 0x8CE0
	DEPTH_ATTACHMENT     Enum = 0x8D00

	DEPTH_COMPONENT   Enum = 0x1902
	DEPTH_COMPONENT24 Enum = 0x81A6

	CULL_FACE    Enum = 0x0B44
	DEPTH_TEST   Enum = 0x0B71
	BLEND        Enum = 0x0BE2
	SCISSOR_TEST Enum = 0x0C11

	FRONT_AND_BACK Enum = 0x0408
	POLYGON_MODE   Enum = 0x0B40
	POINT          Enum = 0x1B00
	LINE           Enum = 0x1B01
	FILL           Enum = 0x1B02

	VIEWPORT    Enum = 0x0BA2
	SCISSOR_BOX Enum = 0x0C10

	FUNC_ADD             Enum = 0x8006
	BLEND_EQUATION_RGB   Enum = 0x8009
	BLEND_DST_RGB        Enum = 0x80C8
	BLEND_SRC_RGB        Enum = 0x80C9
	BLEND_DST_ALPHA      Enum = 0x80CA
	BLEND_SRC_ALPHA      Enum = 0x80CB
	BLEND_EQUATION_ALPHA Enum = 0x883D
	SRC_ALPHA            Enum = 0x0302
	ONE_MINUS_SRC_ALPHA  Enum = 0x0303

	VENDOR                   Enum = 0x1F00
	RENDERER                 Enum = 0x1F01
	VERSION                  Enum = 0x1F02
	SHADING_LANGUAGE_VERSION Enum = 0x8B8C
)
