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

// Event represents all the different type of events that can occur in the gui.
//
// Events are passed to HandleUserInput() by value.
type Event interface{}

// KeyMod identifies the modifier key held when a key event occurs.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is the data that accompanies keyboard events.
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
	Mod    KeyMod
}

// GamepadButton identifies a gamepad button.
type GamepadButton int

// List of valid GamepadButton values.
const (
	GamepadButtonNone GamepadButton = iota
	GamepadButtonA
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonBack
	GamepadButtonStart
	GamepadButtonGuide
)

// EventGamepadButton is the data that accompanies gamepad button events. The
// ID field is the controller number.
type EventGamepadButton struct {
	ID     int
	Button GamepadButton
	Down   bool
}

// DPadDirection identifies the direction the dpad is being pressed.
type DPadDirection int

// List of valid DPadDirection values.
const (
	DPadCentre DPadDirection = iota
	DPadUp
	DPadDown
	DPadLeft
	DPadRight
	DPadLeftUp
	DPadLeftDown
	DPadRightUp
	DPadRightDown
)

// EventGamepadDPad is the data that accompanies gamepad dpad events. The ID
// field is the controller number.
type EventGamepadDPad struct {
	ID        int
	Direction DPadDirection
}

// EventGamepadRemoved is sent when a gamepad is disconnected. Any buttons
// held on the controller are released.
type EventGamepadRemoved struct {
	ID int
}

// EventFocusLost is sent when the gui stops receiving user input, for
// example when the window loses keyboard focus. Release events will not be
// seen for any keys still held.
type EventFocusLost struct{}

// EventQuit is sent when the gui window is closed or the user otherwise asks
// for the program to end.
type EventQuit struct{}
