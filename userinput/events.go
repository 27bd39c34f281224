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

package userinput

// KeyMod identifies the modifier key held down during a keyboard event.
type KeyMod int

// list of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// MouseButton identifies the mouse button in an EventMouseButton.
type MouseButton int

// list of supported mouse buttons.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// Event is implemented by every event type in this package. The set of event
// types is closed.
type Event interface {
	event()
}

// EventQuit is sent when the user has asked to close the window.
type EventQuit struct{}

// EventKeyboard is sent when a key is pressed or released. Repeat is true if
// the event was generated by the operating system's key repeat.
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
	Mod    KeyMod
}

// EventMouseMotion is sent when the mouse moves. DX and DY are the relative
// motion since the previous motion event, in pixels.
type EventMouseMotion struct {
	DX float32
	DY float32
}

// EventMouseWheel is sent when the mouse wheel is moved. Positive DY is away
// from the user.
type EventMouseWheel struct {
	DY float32
}

// EventMouseButton is sent when a mouse button is pressed or released.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

func (EventQuit) event()        {}
func (EventKeyboard) event()    {}
func (EventMouseMotion) event() {}
func (EventMouseWheel) event()  {}
func (EventMouseButton) event() {}
