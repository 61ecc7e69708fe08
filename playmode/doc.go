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

// Package playmode runs the frame loop. Each frame the GUI is serviced, user
// input is applied to the emulated joypad port, the sampler is ticked exactly
// once and the result is rendered.
//
// A session can record the sampled input to a transcript or play a transcript
// back. During playback the input comes from the transcript and the sampler
// is verified against the recorded digest every frame.
//
// Frames are paced to the Game Boy frame rate unless the playmode.fpscap
// preference is false. The Tab key toggles the frame cap while playing.
package playmode
