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

import "sort"

// KeyState records the keys that are currently held down. The zero value is
// ready to use.
type KeyState struct {
	held map[string]bool
}

// Update the held keys from the event. Events other than EventKeyboard are
// ignored, as are repeated keyboard events. Returns true if the event was a
// keyboard event.
func (ks *KeyState) Update(ev Event) bool {
	kb, ok := ev.(EventKeyboard)
	if !ok {
		return false
	}

	if kb.Repeat {
		return true
	}

	if ks.held == nil {
		ks.held = make(map[string]bool)
	}

	if kb.Down {
		ks.held[kb.Key] = true
	} else {
		delete(ks.held, kb.Key)
	}

	return true
}

// Held returns true if the key is currently held down.
func (ks *KeyState) Held(key string) bool {
	return ks.held[key]
}

// Keys returns the list of held keys in alphabetical order.
func (ks *KeyState) Keys() []string {
	keys := make([]string, 0, len(ks.held))
	for k := range ks.held {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset forgets all held keys. Should be called when the window loses focus
// because the key release events will not be received.
func (ks *KeyState) Reset() {
	clear(ks.held)
}
