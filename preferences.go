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
	"slices"
	"strings"

	"github.com/jetsetilly/learnopengl/camera"
	"github.com/jetsetilly/learnopengl/curated"
	"github.com/jetsetilly/learnopengl/performance"
	"github.com/jetsetilly/learnopengl/prefs"
	"github.com/jetsetilly/learnopengl/scene"
)

// the name of the preferences file in the resource path.
const prefsFile = "learnopengl.prefs"

type preferences struct {
	dsk *prefs.Disk

	width   prefs.Int
	height  prefs.Int
	vsync   prefs.Bool
	highDPI prefs.Bool

	// frame rate cap. zero means no cap
	fpsCap prefs.Int

	lesson prefs.String

	speed       prefs.Float
	sensitivity prefs.Float
	heldKeys    prefs.Bool

	overlay   prefs.Bool
	statsview prefs.Bool

	// comma separated list of profiles. see performance.ParseProfile()
	profile prefs.String
}

func newPreferences(path string) (*preferences, error) {
	p := &preferences{}

	p.speed.SetRange(0.1, 100)
	p.sensitivity.SetRange(0.01, 10)

	// setting defaults cannot fail for values of the correct type
	_ = p.width.Set(800)
	_ = p.height.Set(600)
	_ = p.vsync.Set(true)
	_ = p.highDPI.Set(true)
	_ = p.fpsCap.Set(0)
	_ = p.lesson.Set("cubes")
	_ = p.speed.Set(camera.DefaultSpeed)
	_ = p.sensitivity.Set(camera.DefaultSensitivity)
	_ = p.heldKeys.Set(true)
	_ = p.overlay.Set(false)
	_ = p.statsview.Set(false)
	_ = p.profile.Set("none")

	// unknown lessons are rejected and the previous value is kept
	p.lesson.SetHookPre(func(v prefs.Value) error {
		if !slices.Contains(scene.Names(), v.(string)) {
			return curated.Errorf(scene.UnknownLesson, v, strings.Join(scene.Names(), ", "))
		}
		return nil
	})

	p.profile.SetHookPre(func(v prefs.Value) error {
		_, err := performance.ParseProfile(v.(string))
		return err
	})

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("window.width", &p.width)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.height", &p.height)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.vsync", &p.vsync)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.highdpi", &p.highDPI)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("window.fpscap", &p.fpsCap)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("lesson", &p.lesson)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("camera.speed", &p.speed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("camera.sensitivity", &p.sensitivity)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("camera.heldkeys", &p.heldKeys)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("overlay", &p.overlay)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("statsview", &p.statsview)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("profile", &p.profile)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) load() error {
	return p.dsk.Load(true)
}

func (p *preferences) save() error {
	return p.dsk.Save()
}

// apply the camera preferences to the camera.
func (p *preferences) apply(cam *camera.Camera) {
	cam.SetSpeed(float32(p.speed.Get().(float64)))
	cam.SetSensitivity(float32(p.sensitivity.Get().(float64)))
}
