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

// Package overlay draws a small Dear ImGui window over the scene showing the
// frame rate and the state of the camera. The Overlay type satisfies the
// renderer.Overlay interface.
//
// The GL state is stored before drawing and restored afterwards so the
// overlay has no effect on how the scene is drawn.
package overlay
