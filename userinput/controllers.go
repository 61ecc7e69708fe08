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

package userinput

import (
	"github.com/dmgpad/dmgpad/joypad"
)

// Controllers keeps track of hardware userinput options.
type Controllers struct {
	Bindings Bindings

	// whether or not the last HandleUserInput() was for a key that was
	// consumed by the emulation as an input
	LastKeyHandled bool

	// is true if last event was consumed/handled by an emulated controller
	HandledByController bool

	// is true if last event was a quit event
	Quit bool
}

// NewControllers is the preferred method of initialisation for the Controllers
// type. A nil Bindings argument will use DefaultBindings().
func NewControllers(bnd Bindings) *Controllers {
	if bnd == nil {
		bnd = DefaultBindings()
	}
	return &Controllers{Bindings: bnd}
}

// opposite returns the directional buttons on the same axis as the buttons
// in the mask.
func opposite(m joypad.ButtonMask) joypad.ButtonMask {
	var o joypad.ButtonMask
	if m&joypad.Left != 0 {
		o |= joypad.Right
	}
	if m&joypad.Right != 0 {
		o |= joypad.Left
	}
	if m&joypad.Up != 0 {
		o |= joypad.Down
	}
	if m&joypad.Down != 0 {
		o |= joypad.Up
	}
	return o
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) error {
	if ev.Repeat {
		c.LastKeyHandled = false
		return nil
	}

	if ev.Down && ev.Key == "Escape" {
		c.Quit = true
		c.LastKeyHandled = true
		return nil
	}

	// keys pressed with a modifier are not for the emulation. releases are
	// always forwarded because the modifier may have been pressed after the
	// key went down
	if ev.Down && ev.Mod != KeyModNone {
		c.LastKeyHandled = false
		return nil
	}

	b, ok := c.Bindings[ev.Key]
	if !ok {
		c.LastKeyHandled = false
		return nil
	}

	c.LastKeyHandled = true
	c.HandledByController = true

	if ev.Down {
		if o := opposite(b.Button); o != joypad.NoButtons {
			if err := handle.HandleEvent(b.Pad, o, false); err != nil {
				return err
			}
		}
	}

	return handle.HandleEvent(b.Pad, b.Button, ev.Down)
}

func (c *Controllers) gamepadDPad(ev EventGamepadDPad, handle HandleInput) error {
	var m joypad.ButtonMask

	switch ev.Direction {
	case DPadCentre:
	case DPadUp:
		m = joypad.Up
	case DPadDown:
		m = joypad.Down
	case DPadLeft:
		m = joypad.Left
	case DPadRight:
		m = joypad.Right
	case DPadLeftUp:
		m = joypad.Left | joypad.Up
	case DPadLeftDown:
		m = joypad.Left | joypad.Down
	case DPadRightUp:
		m = joypad.Right | joypad.Up
	case DPadRightDown:
		m = joypad.Right | joypad.Down
	default:
		return nil
	}

	c.HandledByController = true

	// a dpad event describes the entire state of the dpad so directions not
	// in the mask are released
	if err := handle.HandleEvent(ev.ID, joypad.DirectionalMask&^m, false); err != nil {
		return err
	}
	if m == joypad.NoButtons {
		return nil
	}
	return handle.HandleEvent(ev.ID, m, true)
}

func (c *Controllers) gamepadButton(ev EventGamepadButton, handle HandleInput) error {
	var m joypad.ButtonMask

	switch ev.Button {
	case GamepadButtonA:
		m = joypad.A
	case GamepadButtonB, GamepadButtonX:
		m = joypad.B
	case GamepadButtonBack:
		m = joypad.Select
	case GamepadButtonStart:
		m = joypad.Start
	case GamepadButtonGuide:
		if ev.Down {
			c.Quit = true
		}
		return nil
	default:
		return nil
	}

	c.HandledByController = true
	return handle.HandleEvent(ev.ID, m, ev.Down)
}

// HandleUserInput deciphers the Event and forwards the input to the joypad
// port. Returns true if the event was consumed by an emulated controller, in
// addition to any error. The Quit field is set if the event should cause the
// program to end.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) (bool, error) {
	c.Quit = false
	c.HandledByController = false

	var err error
	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		err = c.keyboard(ev, handle)
	case EventGamepadDPad:
		err = c.gamepadDPad(ev, handle)
	case EventGamepadButton:
		err = c.gamepadButton(ev, handle)
	case EventGamepadRemoved:
		c.HandledByController = true
		err = handle.HandleEvent(ev.ID, joypad.DirectionalMask|joypad.ButtonsMask, false)
	default:
	}

	return c.HandledByController, err
}
