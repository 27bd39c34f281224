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

package sdlwindow

import (
	"github.com/jetsetilly/learnopengl/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// PollEvent returns the next event in the SDL queue that has a userinput
// equivalent. Returns nil if there are no more events. Never blocks.
func (win *Window) PollEvent() userinput.Event {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if e := translate(ev); e != nil {
			return e
		}
	}
	return nil
}

// translate the SDL event. Returns nil if there is no equivalent.
func translate(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.KeyboardEvent:
		return userinput.EventKeyboard{
			Key:    sdl.GetKeyName(ev.Keysym.Sym),
			Down:   ev.Type == sdl.KEYDOWN,
			Repeat: ev.Repeat != 0,
			Mod:    keyMod(ev.Keysym.Mod),
		}

	case *sdl.MouseMotionEvent:
		return userinput.EventMouseMotion{
			DX: float32(ev.XRel),
			DY: float32(ev.YRel),
		}

	case *sdl.MouseWheelEvent:
		dy := float32(ev.Y)
		if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		return userinput.EventMouseWheel{DY: dy}

	case *sdl.MouseButtonEvent:
		var button userinput.MouseButton
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			button = userinput.MouseButtonLeft
		case sdl.BUTTON_RIGHT:
			button = userinput.MouseButtonRight
		case sdl.BUTTON_MIDDLE:
			button = userinput.MouseButtonMiddle
		}
		return userinput.EventMouseButton{
			Button: button,
			Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
		}
	}

	return nil
}

func keyMod(mod uint16) userinput.KeyMod {
	switch {
	case mod&sdl.KMOD_CTRL != 0:
		return userinput.KeyModCtrl
	case mod&sdl.KMOD_ALT != 0:
		return userinput.KeyModAlt
	case mod&sdl.KMOD_SHIFT != 0:
		return userinput.KeyModShift
	}
	return userinput.KeyModNone
}
