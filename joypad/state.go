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

package joypad

import "fmt"

// State is the snapshot published by the Sampler after every Tick(). See the
// package documentation for the meaning of each field.
type State struct {
	Current           ButtonMask
	Previous          ButtonMask
	Pressed           ButtonMask
	RecentDirectional ButtonMask
}

func (st State) String() string {
	return fmt.Sprintf("cur=%s prev=%s pressed=%s dir=%s", st.Current, st.Previous, st.Pressed, st.RecentDirectional)
}

// Held returns true if any of the buttons in b are held in the current frame.
func (st State) Held(b ButtonMask) bool {
	return st.Current&b != 0
}

// JustPressed returns true if any of the buttons in b were pressed in the
// current frame having not been held in the previous frame.
func (st State) JustPressed(b ButtonMask) bool {
	return st.Pressed&b != 0
}
