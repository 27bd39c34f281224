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

package logger

// Permission implementations decide whether the caller making a log request
// is allowed to create a new log entry.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

// Allow indicates that the logging request should always be allowed.
var Allow Permission = allow{}

// Deny indicates that the logging request should never be allowed. Useful
// for silencing a code path without removing the logging calls.
var Deny Permission = deny{}
