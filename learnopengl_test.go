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


package main

import (
	"testing"

	"github.com/jetsetilly/learnopengl/curated"
	"github.com/jetsetilly/learnopengl/opengl"
	"github.com/jetsetilly/learnopengl/scene"
	"github.com/jetsetilly/learnopengl/test"
)

func TestReport(t *testing.T) {
	tw := &test.CompareWriter{}

	report(tw, curated.Errorf(scene.UnknownLesson, "lights", "triangle, quad"))
	test.ExpectSuccess(t, tw.Compare("* error: scene: unknown lesson: lights (valid lessons are triangle, quad)\n"))

	// a shader info log has one line per problem and a trailing newline
	tw.Reset()
	log := "0:3(1): error: syntax error\n0:5(12): error: `pos' undeclared\n"
	report(tw, curated.Errorf(scene.BuildFailed, "cubes", curated.Errorf(opengl.ShaderCompile, "Vertex", log)))

	test.DemandEquality(t, len(tw.Lines()), 1)
	test.ExpectEquality(t, tw.Lines()[0],
		"* error: scene: cubes: Vertex Compile Error: 0:3(1): error: syntax error; 0:5(12): error: `pos' undeclared")
}
