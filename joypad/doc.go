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

// Package joypad samples the state of the Game Boy controller once per frame
// and derives edge transitions from consecutive samples.
//
// The Sampler is owned by the frame loop. Once per frame the loop calls
// Tick() and then hands the Sampler to anything that needs to know about the
// controller. Those readers only use the read accessors (State(), Current(),
// Pressed(), etc.) and must never call Tick() or Reset() themselves.
//
// The published State has four fields:
//
//	Current           buttons held this frame
//	Previous          buttons held in the previous frame
//	Pressed           Current &^ Previous, for all buttons
//	RecentDirectional the D-pad bits of Current &^ Previous, but only updated
//	                  on frames where the D-pad changed
//
// RecentDirectional is a latch. On a frame where none of the D-pad bits have
// changed it keeps the value from the most recent frame where one did. It is
// not cleared to zero on quiet frames. Game code uses this as "the last
// direction that was pushed".
//
// Where the buttons are read from is decided by the Controller given to
// NewSampler(). NewSingle() reads one controller directly with a Source.
// NewMulti() polls up to MaxPads controllers in one batch with a MultiSource
// (a Super Game Boy in multiplayer mode for example). The first controller is
// always the one that drives the State, the others are available with the
// Pad() function.
//
// When compiled with the "assertions" build tag Tick() will panic if it is
// called from a goroutine other than the one that called Reset(), or if it is
// called reentrantly.
package joypad
