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

import "strings"

// LogKind selects which info log getter is used by InfoLog().
type LogKind int

// List of valid LogKind values.
const (
	ShaderLog LogKind = iota
	ProgramLog
)

// InfoLog returns the driver's info log for the named shader or program.
//
// The buffer is sized by the INFO_LOG_LENGTH the driver reports but only the
// number of bytes the driver says it has written are used. Some drivers
// include the terminating NUL in INFO_LOG_LENGTH and some don't. Invalid UTF-8
// sequences are replaced with the unicode replacement character.
func InfoLog(fn Functions, kind LogKind, name uint32) string {
	var length int32
	switch kind {
	case ShaderLog:
		length = fn.GetShaderi(name, INFO_LOG_LENGTH)
	case ProgramLog:
		length = fn.GetProgrami(name, INFO_LOG_LENGTH)
	}

	if length <= 0 {
		return ""
	}

	buf := make([]byte, length)

	var written int32
	switch kind {
	case ShaderLog:
		written = fn.GetShaderInfoLog(name, buf)
	case ProgramLog:
		written = fn.GetProgramInfoLog(name, buf)
	}

	written = max(0, min(written, length))

	return strings.ToValidUTF8(string(buf[:written]), "�")
}
