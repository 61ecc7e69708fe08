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

// Package scene contains the declarative scene and actor records that
// accompany a game built on the joypad sampler, together with the limit
// checks that the build tooling applies to scene files.
//
// Scene data is opaque to the joypad package. Nothing in the sampler reads
// from or writes to an Actor.
//
// Scene files are JSON or YAML. Fields that are not recognised are ignored, so
// scene files exported from other tools can be checked directly.
//
// Background images are PNG files the size of the screen. The check counts
// the unique 8x8 tiles in the image because the engine can only hold
// MaxBackgroundTiles of them at once.
package scene
