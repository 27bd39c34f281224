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

// Package statsview runs a local HTTP server that shows live runtime
// statistics (heap, goroutines, GC pauses) of the running program. It is a thin
// layer over github.com/go-echarts/statsview.
//
// The server is started by the main package when the "statsview" preference
// is true. Because the server runs in its own goroutine it must never make any
// GL calls.
package statsview
