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

// Package scene builds the lessons. A lesson is a complete description of a
// scene that can be handed to the renderer, together with the GL resources
// needed to draw it.
//
// The lessons are, in order of increasing complexity:
//
//	triangle	an orange triangle
//	quad		an indexed quad made of two triangles
//	colors		a triangle with a color for each corner
//	uniform		a triangle with a color that changes over time
//	textures	a rotating quad mixing two textures
//	cubes		ten textured cubes and a first person camera
//
// Shader sources are embedded in the binary. Textures are loaded from the
// assets directory when the lesson is built.
package scene
