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

// Package digest produces a cryptographic hash of the sampled joypad state.
// The hash can then be used to compare the sampler output from subsequent
// executions. If a new hash differs from a previously recorded value then
// something has changed. We use this as the basis for playback verification.
//
// Hashes are chained: each new hash includes the previous hash in its input,
// so a hash for frame N is only reproduced if every frame before N was also
// reproduced.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash is achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
