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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/learnopengl/prefs"
	"github.com/jetsetilly/learnopengl/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "learnopengl_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	test.ExpectFailure(t, v.Set(10))
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("lesson", &v))
	test.ExpectSuccess(t, v.Set("cubes"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "lesson :: cubes\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("window.width", &v))
	test.ExpectSuccess(t, dsk.Add("window.height", &w))

	test.ExpectSuccess(t, v.Set(800))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("600"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "window.height :: 600\nwindow.width :: 800\n")

	// while we have a prefs.Int instance set up we'll test some
	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 800)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectSuccess(t, v.Set(2.5))
	test.ExpectEquality(t, v.Get().(float64), 2.5)
	test.ExpectEquality(t, v.String(), "2.500")

	test.ExpectSuccess(t, v.Set("0.25"))
	test.ExpectEquality(t, v.Get().(float64), 0.25)

	test.ExpectFailure(t, v.Set("fast"))
	test.ExpectFailure(t, v.Set(true))
}

func TestFloatRange(t *testing.T) {
	var v prefs.Float
	test.ExpectSuccess(t, v.Set(1000.0))

	// existing value is clamped when the range is set
	v.SetRange(0.1, 100)
	test.ExpectEquality(t, v.Get().(float64), 100.0)

	test.ExpectSuccess(t, v.Set(-5))
	test.ExpectEquality(t, v.Get().(float64), 0.1)

	test.ExpectSuccess(t, v.Set("50"))
	test.ExpectEquality(t, v.Get().(float64), 50.0)

	// reset to zero is also clamped
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(float64), 0.1)
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post int
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, post, 10)

	// a failing pre hook prevents the value from changing
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectEquality(t, post, 10)
}

func TestGeneric(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1
	h = 2

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "generic :: 1,2\n")

	w = 0
	h = 0

	// reload them from disk and check that the values have been restored
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var speed prefs.Float
	var lesson prefs.String
	test.ExpectSuccess(t, dsk.Add("camera.speed", &speed))
	test.ExpectSuccess(t, dsk.Add("lesson", &lesson))
	test.ExpectSuccess(t, speed.Set(2.5))
	test.ExpectSuccess(t, lesson.Set("cubes"))

	// file does not exist yet. loading with saveOnFirstUse creates it
	test.DemandSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "camera.speed :: 2.500\nlesson :: cubes\n")

	test.ExpectSuccess(t, speed.Set(10))
	test.ExpectSuccess(t, lesson.Set("triangle"))
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, speed.Get().(float64), 2.5)
	test.ExpectEquality(t, lesson.String(), "cubes")
}

func TestLoadMissingFile(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Load(false))

	_, err = os.Stat(fn)
	test.ExpectFailure(t, err)
}

func TestLoadBadValue(t *testing.T) {
	fn := tmpPrefFile(t)
	data := fmt.Sprintf("%s\nwindow.width :: wide\nwindow.height :: 600\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h prefs.Int
	test.ExpectSuccess(t, dsk.Add("window.width", &w))
	test.ExpectSuccess(t, dsk.Add("window.height", &h))

	// the bad value is reported but the good value is still loaded
	test.ExpectFailure(t, dsk.Load(false))
	test.ExpectEquality(t, h.Get().(int), 600)
}

func TestNotPrefsFile(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("hello world\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectFailure(t, dsk.Load(false))
	test.ExpectFailure(t, dsk.Save())
}

func TestIllegalKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("bad :: key", &v))
	test.ExpectFailure(t, dsk.Add("bad\nkey", &v))
	test.ExpectSuccess(t, dsk.Add("good", &v))
	test.ExpectFailure(t, dsk.Add("good", &v))
}

func TestMaxStringLength(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set("123456789"))
	v.SetMaxLen(5)
	test.ExpectEquality(t, v.String(), "12345")

	test.ExpectSuccess(t, v.Set("abcdefghij"))
	test.ExpectEquality(t, v.String(), "abcde")

	v.SetMaxLen(0)
	test.ExpectSuccess(t, v.Set("abcdefghij"))
	test.ExpectEquality(t, v.String(), "abcdefghij")
}
