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

// Package camera implements a first-person camera driven by keyboard, mouse
// motion and mouse wheel input.
//
// The orientation of the camera is held as yaw and pitch angles, in degrees.
// The front vector is derived from the angles whenever they change. Pitch is
// always in the range -89° to +89° and the field of view is always in the
// range 1° to 45°.
//
// The camera produces right-handed view and projection matrices suitable for
// GL:
//
//	view := cam.View()
//	projection := cam.Projection(aspectRatio)
package camera
