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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/learnopengl/test"
	"github.com/jetsetilly/learnopengl/userinput"
)

func TestKeyState(t *testing.T) {
	var ks userinput.KeyState

	test.ExpectFailure(t, ks.Held("W"))
	test.ExpectEquality(t, len(ks.Keys()), 0)

	test.ExpectSuccess(t, ks.Update(userinput.EventKeyboard{Key: "W", Down: true}))
	test.ExpectSuccess(t, ks.Update(userinput.EventKeyboard{Key: "A", Down: true}))
	test.ExpectSuccess(t, ks.Held("W"))
	test.ExpectSuccess(t, ks.Held("A"))
	test.ExpectEquality(t, len(ks.Keys()), 2)
	test.ExpectEquality(t, ks.Keys()[0], "A")

	// repeat events do not change the state
	test.ExpectSuccess(t, ks.Update(userinput.EventKeyboard{Key: "W", Down: false, Repeat: true}))
	test.ExpectSuccess(t, ks.Held("W"))

	test.ExpectSuccess(t, ks.Update(userinput.EventKeyboard{Key: "W", Down: false}))
	test.ExpectFailure(t, ks.Held("W"))
	test.ExpectSuccess(t, ks.Held("A"))

	// non-keyboard events are not handled
	test.ExpectFailure(t, ks.Update(userinput.EventMouseMotion{DX: 1, DY: 1}))
	test.ExpectFailure(t, ks.Update(userinput.EventQuit{}))

	ks.Reset()
	test.ExpectFailure(t, ks.Held("A"))
	test.ExpectEquality(t, len(ks.Keys()), 0)
}
