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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/dmgpad/dmgpad/joypad"
)

// layout of the data that is hashed for each frame
const (
	offsetFrame = sha1.Size
	offsetState = offsetFrame + 8
	offsetPads  = offsetState + 4
	dataLen     = offsetPads + joypad.MaxPads
)

// State is an implementation of the Digest interface for joypad.State values.
//
// State is not safe for concurrent use.
type State struct {
	digest [sha1.Size]byte
	data   [dataLen]byte
	frame  int
}

// NewState is the preferred method of initialisation for the State type.
func NewState() *State {
	return &State{}
}

// Update the hash with the state for the frame. Additional controllers from
// joypad.Sampler.Pad() can be included in the hash. Controllers beyond
// joypad.MaxPads are ignored.
func (dig *State) Update(frame int, st joypad.State, pads ...joypad.ButtonMask) {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the data
	copy(dig.data[:], dig.digest[:])

	binary.LittleEndian.PutUint64(dig.data[offsetFrame:], uint64(frame))

	dig.data[offsetState] = uint8(st.Current)
	dig.data[offsetState+1] = uint8(st.Previous)
	dig.data[offsetState+2] = uint8(st.Pressed)
	dig.data[offsetState+3] = uint8(st.RecentDirectional)

	clear(dig.data[offsetPads:])
	for i, p := range pads {
		if i >= joypad.MaxPads {
			break // for loop
		}
		dig.data[offsetPads+i] = uint8(p)
	}

	dig.digest = sha1.Sum(dig.data[:])
	dig.frame = frame
}

// Frame returns the frame number of the most recent Update().
func (dig *State) Frame() int {
	return dig.frame
}

// Hash implements digest.Digest interface.
func (dig *State) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *State) ResetDigest() {
	clear(dig.digest[:])
	dig.frame = 0
}
