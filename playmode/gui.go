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

package playmode

import (
	"github.com/dmgpad/dmgpad/joypad"
	"github.com/dmgpad/dmgpad/userinput"
)

// GUI is the interface to the frontend. Implementations are in the gui
// directory.
type GUI interface {
	// Service returns all user input events received since the previous
	// call. It must not block.
	Service() ([]userinput.Event, error)

	// Render is called once per frame after the sampler has been ticked.
	Render(s *joypad.Sampler) error

	// Destroy releases the frontend's resources.
	Destroy()
}
