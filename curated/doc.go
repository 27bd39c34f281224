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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a formatting pattern
// and placeholder values in the same way as fmt.Errorf().
//
// The pattern is remembered and is used to identify the error later on. The
// Is() function checks the outermost pattern of an error and the Has()
// function checks every curated error in the chain:
//
//	const ShaderCompile = "shader: %v"
//
//	err := curated.Errorf(ShaderCompile, log)
//	err = curated.Errorf("scene: %v", err)
//
//	curated.Is(err, ShaderCompile)  // false
//	curated.Has(err, ShaderCompile) // true
//
// Sentinal patterns should be exported as named constants by the package that
// creates the error.
//
// The Error() function normalises the message by removing duplicate adjacent
// parts. Parts are separated by the sub-string ": " as suggested on p239 of
// "The Go Programming Language" (Donovan, Kernighan). So wrapping an error
// with the same prefix more than once is harmless:
//
//	err := curated.Errorf("gl: %v", curated.Errorf("gl: no context"))
//	fmt.Println(err) // "gl: no context"
//
// IsAny() answers whether the error was created by this package at all, which
// is useful for telling 'expected' errors from 'unexpected' errors.
package curated
