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

// Package prefs facilitates the storage of user preferences on disk. Each
// preference is an instance of one of the types in this package (Bool,
// String, Int, Float or Generic) and is associated with a key by adding it to
// a Disk instance:
//
//	dsk, err := prefs.NewDisk(fn)
//	var speed prefs.Float
//	err = dsk.Add("camera.speed", &speed)
//	err = dsk.Load(true)
//
// The file written by Save() begins with the WarningBoilerPlate line followed
// by one "key :: value" line per preference, sorted by key. Entries in the file
// that are not known to the Disk instance are preserved when the file is
// saved. This means more than one Disk instance can share the same file.
//
// Preference values are safe to read and write from more than one goroutine.
package prefs
