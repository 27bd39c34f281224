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

package opengl_test

import (
	"testing"

	"github.com/jetsetilly/learnopengl/opengl"
	"github.com/jetsetilly/learnopengl/opengl/fakegl"
	"github.com/jetsetilly/learnopengl/test"
)

// driverLog reports an info log in the various ways drivers have been seen
// to.
type driverLog struct {
	*fakegl.GL
	log     string
	length  int32
	written int32
}

func (d driverLog) GetShaderi(shader uint32, pname opengl.Enum) int32 {
	if pname == opengl.INFO_LOG_LENGTH {
		return d.length
	}
	return d.GL.GetShaderi(shader, pname)
}

func (d driverLog) GetShaderInfoLog(shader uint32, buf []byte) int32 {
	copy(buf, d.log)
	return d.written
}

func TestInfoLog(t *testing.T) {
	const log = "0:1(1): error: syntax error"

	// length includes the NUL
	d := driverLog{GL: fakegl.New(), log: log + "\x00", length: int32(len(log) + 1), written: int32(len(log))}
	test.ExpectEquality(t, opengl.InfoLog(d, opengl.ShaderLog, 1), log)

	// length does not include the NUL
	d = driverLog{GL: fakegl.New(), log: log, length: int32(len(log)), written: int32(len(log))}
	test.ExpectEquality(t, opengl.InfoLog(d, opengl.ShaderLog, 1), log)

	// empty log
	d = driverLog{GL: fakegl.New(), length: 0}
	test.ExpectEquality(t, opengl.InfoLog(d, opengl.ShaderLog, 1), "")

	// negative length
	d = driverLog{GL: fakegl.New(), length: -1}
	test.ExpectEquality(t, opengl.InfoLog(d, opengl.ShaderLog, 1), "")

	// written is more than the buffer
	d = driverLog{GL: fakegl.New(), log: log, length: 5, written: 100}
	test.ExpectEquality(t, opengl.InfoLog(d, opengl.ShaderLog, 1), log[:5])

	// written is negative
	d = driverLog{GL: fakegl.New(), log: log, length: 5, written: -3}
	test.ExpectEquality(t, opengl.InfoLog(d, opengl.ShaderLog, 1), "")

	// invalid UTF-8 is replaced
	d = driverLog{GL: fakegl.New(), log: "bad \xff byte", length: 10, written: 10}
	test.ExpectEquality(t, opengl.InfoLog(d, opengl.ShaderLog, 1), "bad � byte")
}

func TestProgramInfoLog(t *testing.T) {
	gl := fakegl.New()

	prog, err := opengl.ProgramFromVertFrag(gl, transformVert, colorFrag)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prog.InfoLog(), "")
	test.ExpectSuccess(t, prog.LinkSuccess())

	gl.FailLink = true
	gl.LinkLog = "error: too many uniforms"
	prog.Link()
	test.ExpectFailure(t, prog.LinkSuccess())
	test.ExpectEquality(t, prog.InfoLog(), "error: too many uniforms")
}
