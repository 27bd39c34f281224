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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/learnopengl/camera"
	"github.com/jetsetilly/learnopengl/curated"
	"github.com/jetsetilly/learnopengl/performance"
	"github.com/jetsetilly/learnopengl/prefs"
	"github.com/jetsetilly/learnopengl/scene"
	"github.com/jetsetilly/learnopengl/test"
)

func TestPreferencesDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefsFile)

	prf, err := newPreferences(pth)
	test.DemandSuccess(t, err)

	// file is created on first use
	test.DemandSuccess(t, prf.load())
	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	test.DemandEquality(t, len(lines), 13)
	test.ExpectEquality(t, lines[0], prefs.WarningBoilerPlate)
	test.ExpectEquality(t, strings.Join(lines[1:], "\n"), strings.Join([]string{
		"camera.heldkeys :: true",
		"camera.sensitivity :: 0.100",
		"camera.speed :: 2.500",
		"lesson :: cubes",
		"overlay :: false",
		"profile :: none",
		"statsview :: false",
		"window.fpscap :: 0",
		"window.height :: 600",
		"window.highdpi :: true",
		"window.vsync :: true",
		"window.width :: 800",
	}, "\n"))
}

func TestPreferencesLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefsFile)

	err := os.WriteFile(pth, []byte(strings.Join([]string{
		prefs.WarningBoilerPlate,
		"camera.speed :: 1000",
		"camera.sensitivity :: 0.5",
		"lesson :: textures",
		"window.width :: wide",
	}, "\n")), 0o600)
	test.DemandSuccess(t, err)

	prf, err := newPreferences(pth)
	test.DemandSuccess(t, err)

	// the bad width is reported but the other values are still loaded
	test.ExpectFailure(t, prf.load())
	test.ExpectEquality(t, prf.width.Get().(int), 800)
	test.ExpectEquality(t, prf.lesson.String(), "textures")

	// unknown lesson names are rejected
	test.ExpectSuccess(t, curated.Is(prf.lesson.Set("teapot"), scene.UnknownLesson))
	test.ExpectEquality(t, prf.lesson.String(), "textures")

	// profile names are checked
	test.ExpectSuccess(t, curated.Is(prf.profile.Set("gpu"), performance.UnknownProfile))
	test.ExpectSuccess(t, prf.profile.Set("cpu,mem"))

	// speed is clamped
	cam := camera.NewCamera()
	prf.apply(cam)
	test.ExpectWithin(t, cam.Speed(), 100, 0.0001)
	test.ExpectWithin(t, cam.Sensitivity(), 0.5, 0.0001)
}
