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

// Package userinput describes input from the user in a way that is independent
// of the window system in use.
//
// It can be thought of as a translation layer between the window system and
// the camera and renderer packages. The window system in use during
// development was SDL and so there will be a bias towards that system. In
// particular, keys are identified by the key names that SDL uses ("W", "A",
// "Escape", "F1", etc.)
//
// The KeyState type records which keys are currently held down. It is used to
// drive continuous movement from a per-frame snapshot of the keyboard rather
// than relying on the key repeat events generated by the operating system.
package userinput
