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

package loader

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/jetsetilly/learnopengl/curated"
	"github.com/jetsetilly/learnopengl/logger"
	"github.com/jetsetilly/learnopengl/opengl"
)

// Sentinel error patterns.
const (
	MissingEntryPoint = "loader: missing entry point: %s"
	InitFailed        = "loader: %v"
)

// EntryPoints is the list of GL functions that must be provided by the
// driver. These are the entry points used by the native implementation of
// opengl.Functions.
var EntryPoints = []string{
	"glGenVertexArrays", "glDeleteVertexArrays", "glBindVertexArray",
	"glGenBuffers", "glDeleteBuffers", "glBindBuffer", "glBufferData",
	"glVertexAttribPointer", "glEnableVertexAttribArray", "glDisableVertexAttribArray",
	"glCreateShader", "glShaderSource", "glCompileShader", "glGetShaderiv",
	"glGetShaderInfoLog", "glDeleteShader",
	"glCreateProgram", "glAttachShader", "glLinkProgram", "glGetProgramiv",
	"glGetProgramInfoLog", "glUseProgram", "glDeleteProgram",
	"glGetUniformLocation", "glUniform1i", "glUniform1f", "glUniform4f", "glUniformMatrix4fv",
	"glGenTextures", "glDeleteTextures", "glActiveTexture", "glBindTexture",
	"glTexParameteri", "glTexImage2D", "glGenerateMipmap", "glPixelStorei",
	"glGenFramebuffers", "glDeleteFramebuffers", "glBindFramebuffer",
	"glFramebufferTexture2D", "glCheckFramebufferStatus", "glReadPixels",
	"glClearColor", "glClear", "glEnable", "glDisable", "glIsEnabled",
	"glPolygonMode", "glViewport", "glScissor",
	"glBlendEquation", "glBlendEquationSeparate", "glBlendFunc", "glBlendFuncSeparate",
	"glDrawArrays", "glDrawElements",
	"glGetIntegerv", "glGetString", "glGetError",
}

// Check that every name in EntryPoints can be resolved. The error names the
// first entry point that is missing.
func Check(getProcAddress func(name string) unsafe.Pointer) error {
	for _, name := range EntryPoints {
		if getProcAddress(name) == nil {
			return curated.Errorf(MissingEntryPoint, name)
		}
	}
	return nil
}

// Load resolves the GL entry points with the supplied function and returns an
// implementation of opengl.Functions that calls the driver.
func Load(getProcAddress func(name string) unsafe.Pointer) (opengl.Functions, error) {
	if err := Check(getProcAddress); err != nil {
		return nil, err
	}

	if err := gl.InitWithProcAddrFunc(getProcAddress); err != nil {
		return nil, curated.Errorf(InitFailed, err)
	}

	fn := native{}

	// log GPU vendor information
	info := opengl.GetInfo(fn)
	logger.Logf(logger.Allow, "gl", "vendor: %s", info.Vendor)
	logger.Logf(logger.Allow, "gl", "renderer: %s", info.Renderer)
	logger.Logf(logger.Allow, "gl", "driver: %s", info.Version)
	logger.Logf(logger.Allow, "gl", "glsl: %s", info.GLSL)

	return fn, nil
}
