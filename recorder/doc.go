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

// Package recorder handles recording and playback of joypad input.
//
// The Recorder type writes a transcript of the sampled input. A line is
// written for every frame in which a controller's sampled buttons change. Each
// line carries a hash of the sampler state (see the digest package) so that
// the transcript can be verified on playback.
//
// The Playback type reads a transcript and presents it to the sampler as a
// joypad.Source or joypad.MultiSource, depending on the controller mode the
// transcript was recorded with. The Verify() function should be called after
// every joypad.Sampler.Tick() to compare the sampler state with the recording.
//
// Transcript format:
//
//	dmgpad transcript
//	<session uuid>
//	<controller mode>
//	<number of controllers>
//	<frame>, <controller>, <buttons in hex>, <hash>
//	...
package recorder
