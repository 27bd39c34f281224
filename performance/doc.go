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

// Package performance contains helpers for measuring the performance of the
// program.
//
// RunProfiler() wraps a function in any combination of CPU profiling, heap
// profiling and execution tracing. The profiles to create are usually taken
// from the command line with ParseProfile().
//
// The limiter sub-package caps the rate at which frames are drawn.
package performance
