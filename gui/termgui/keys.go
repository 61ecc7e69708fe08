// This file is part of dmgpad.
//
// dmgpad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dmgpad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dmgpad.  If not, see <https://www.gnu.org/licenses/>.

package termgui

import (
	"github.com/dmgpad/dmgpad/gui/termgui/easyterm"
	"github.com/dmgpad/dmgpad/userinput"
)

// special key name for a request to quit (ctrl-c)
const keyQuit = "\x03quit"

// decodeKeys converts the raw bytes read from the terminal to a list of key
// names. Lower case letters are reported in upper case.
func decodeKeys(b []byte) []string {
	var keys []string

	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == easyterm.KeyEsc:
			// cursor keys are sent as ESC [ A or ESC O A
			if i+2 < len(b) && (b[i+1] == easyterm.EscCursor || b[i+1] == easyterm.EscSS3) {
				switch b[i+2] {
				case easyterm.CursorUp:
					keys = append(keys, "Up")
				case easyterm.CursorDown:
					keys = append(keys, "Down")
				case easyterm.CursorForward:
					keys = append(keys, "Right")
				case easyterm.CursorBackward:
					keys = append(keys, "Left")
				}
				i += 2
				continue // for loop
			}
			keys = append(keys, "Escape")
		case c == easyterm.KeyCtrlC:
			keys = append(keys, keyQuit)
		case c == easyterm.KeyCarriageReturn || c == easyterm.KeyLineFeed:
			keys = append(keys, "Return")
		case c == easyterm.KeyBackspace || c == '\b':
			keys = append(keys, "Backspace")
		case c == easyterm.KeyTab:
			keys = append(keys, "Tab")
		case c == easyterm.KeySpace:
			keys = append(keys, "Space")
		case c >= 'a' && c <= 'z':
			keys = append(keys, string(c-'a'+'A'))
		case c > easyterm.KeySpace && c < easyterm.KeyBackspace:
			keys = append(keys, string(c))
		}
	}

	return keys
}

// holder simulates key releases for terminals.
type holder struct {
	frames int
	held   map[string]int
}

func newHolder(frames int) *holder {
	return &holder{
		frames: max(frames, 1),
		held:   make(map[string]int),
	}
}

// press returns a key down event if the key is not already held. the hold
// period is restarted in all cases.
func (h *holder) press(key string) []userinput.Event {
	_, ok := h.held[key]
	h.held[key] = h.frames
	if ok {
		return nil
	}
	return []userinput.Event{userinput.EventKeyboard{Key: key, Down: true}}
}

// tick should be called once per frame. returns key up events for keys whose
// hold period has expired.
func (h *holder) tick() []userinput.Event {
	var ev []userinput.Event
	for k, n := range h.held {
		n--
		if n <= 0 {
			delete(h.held, k)
			ev = append(ev, userinput.EventKeyboard{Key: k, Down: false})
			continue // for loop
		}
		h.held[k] = n
	}
	return ev
}
