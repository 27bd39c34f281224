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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/learnopengl/curated"
	"github.com/jetsetilly/learnopengl/performance"
	"github.com/jetsetilly/learnopengl/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	p, err = performance.ParseProfile("CPU, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "cpu,trace")

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "cpu,mem,trace")

	_, err = performance.ParseProfile("cpu,gpu")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestRunProfiler(t *testing.T) {
	header := filepath.Join(t.TempDir(), "learnopengl")

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, header, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(header + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_trace.profile")
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))
}

func TestRunProfilerError(t *testing.T) {
	header := filepath.Join(t.TempDir(), "learnopengl")
	failed := errors.New("failed")

	err := performance.RunProfiler(performance.ProfileMem, header, func() error {
		return failed
	})
	test.ExpectSuccess(t, errors.Is(err, failed))

	// no heap profile if the function fails
	_, err = os.Stat(header + "_mem.profile")
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))
}
