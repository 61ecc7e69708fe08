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

package recorder

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmgpad/dmgpad/curated"
	"github.com/dmgpad/dmgpad/digest"
	"github.com/dmgpad/dmgpad/joypad"
	"github.com/google/uuid"
)

type playbackEntry struct {
	frame int
	pad   int
	mask  joypad.ButtonMask
	hash  string

	// the line in the transcript the entry appears
	line int
}

// Playback is used to reperform the input recorded in a transcript. It
// implements both the joypad.Source and joypad.MultiSource interfaces. Each
// call to Read() or Poll() advances the playback by one frame so only one of
// those functions should be used. The Controller() function returns the
// correct joypad.Controller for the transcript.
type Playback struct {
	Session uuid.UUID
	Mode    joypad.Mode
	NumPads int

	sequence []playbackEntry
	seqCt    int

	// the frame most recently presented to the sampler
	frame int

	// the buttons held on each controller at the current frame
	pads [joypad.MaxPads]joypad.ButtonMask

	// the last entry applied in the current frame. nil if no entries were
	// applied
	check *playbackEntry

	digest *digest.State

	// the last frame where an entry occurs
	endFrame int
}

func (plb *Playback) String() string {
	if plb.endFrame == 0 {
		return fmt.Sprintf("%d/0", plb.frame)
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.frame, plb.endFrame, 100*(float64(plb.frame)/float64(plb.endFrame)))
}

// NewPlayback is the preferred method of initialisation for the Playback type.
func NewPlayback(transcript io.Reader) (*Playback, error) {
	buffer, err := io.ReadAll(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	plb := &Playback{
		sequence: make([]playbackEntry, 0),
		digest:   digest.NewState(),
	}

	// convert file contents to an array of lines. a trailing newline does not
	// count as an extra line
	lines := strings.Split(strings.TrimSuffix(string(buffer), "\n"), "\n")

	err = plb.readHeader(lines)
	if err != nil {
		return nil, err
	}

	for i := numHeaderLines; i < len(lines); i++ {
		entry, err := plb.readEntry(lines[i], i+1)
		if err != nil {
			return nil, err
		}

		if entry.frame < plb.endFrame {
			return nil, curated.Errorf("playback: frame out of order at line %d", entry.line)
		}
		plb.endFrame = entry.frame

		plb.sequence = append(plb.sequence, entry)
	}

	return plb, nil
}

// Controller returns a joypad.Controller of the type the transcript was
// recorded with and with the Playback as the source.
func (plb *Playback) Controller() joypad.Controller {
	if plb.Mode == joypad.ModeMulti {
		return joypad.NewMulti(plb, plb.NumPads)
	}
	return joypad.NewSingle(plb)
}

// EndFrame returns true if the playback has gone past the last frame of the
// transcript.
func (plb *Playback) EndFrame() bool {
	return plb.frame > plb.endFrame
}

// advance to the next frame and apply every entry for that frame.
func (plb *Playback) advance() {
	plb.frame++
	plb.check = nil

	for plb.seqCt < len(plb.sequence) {
		entry := &plb.sequence[plb.seqCt]
		if entry.frame != plb.frame {
			break // for loop
		}
		plb.pads[entry.pad] = entry.mask
		plb.check = entry
		plb.seqCt++
	}
}

// Read implements the joypad.Source interface.
func (plb *Playback) Read() joypad.ButtonMask {
	plb.advance()
	return plb.pads[0]
}

// Init implements the joypad.MultiSource interface.
func (plb *Playback) Init(max int) int {
	plb.rewind()
	return min(plb.NumPads, max)
}

// Poll implements the joypad.MultiSource interface.
func (plb *Playback) Poll(pads []joypad.ButtonMask) int {
	plb.advance()
	n := copy(pads, plb.pads[:plb.NumPads])
	return n
}

// rewind to the start of the transcript.
func (plb *Playback) rewind() {
	plb.seqCt = 0
	plb.frame = 0
	plb.check = nil
	plb.pads = [joypad.MaxPads]joypad.ButtonMask{}
	plb.digest.ResetDigest()
}

// Sentinal errors returned by Verify().
const (
	PlaybackHashError  = "playback: unexpected input state at line %d (frame %d)"
	PlaybackFrameError = "playback: sampler is at frame %d but playback is at frame %d"
)

// Verify should be called after every joypad.Sampler.Tick(). It compares the
// state of the sampler with the state at the time of the recording.
func (plb *Playback) Verify(s *joypad.Sampler) error {
	if s.Frame() != plb.frame {
		return curated.Errorf(PlaybackFrameError, s.Frame(), plb.frame)
	}

	plb.digest.Update(s.Frame(), s.State(), samplerPads(s, plb.NumPads)...)

	if plb.check != nil && plb.check.hash != plb.digest.Hash() {
		return curated.Errorf(PlaybackHashError, plb.check.line, plb.frame)
	}

	return nil
}
