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


package test

import "strings"

// CompareWriter collects everything written to it so that output can be
// compared with the expected text.
type CompareWriter struct {
	strings.Builder
}

// Compare returns true if the collected output is exactly s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.String() == s
}

// Lines returns the complete lines collected so far without their newline
// characters. Text after the final newline is not included.
func (cw *CompareWriter) Lines() []string {
	s := cw.String()
	n := strings.LastIndexByte(s, '\n')
	if n == -1 {
		return nil
	}
	return strings.Split(s[:n], "\n")
}
