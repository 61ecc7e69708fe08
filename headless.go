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

package main

import (
	"github.com/dmgpad/dmgpad/joypad"
	"github.com/dmgpad/dmgpad/userinput"
)

// headless implements the playmode.GUI interface for sessions without a
// window or terminal. there is never any user input and nothing is drawn.
type headless struct{}

func (*headless) Service() ([]userinput.Event, error) {
	return nil, nil
}

func (*headless) Render(_ *joypad.Sampler) error {
	return nil
}

func (*headless) Destroy() {
}
