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
	"io"

	"github.com/dmgpad/dmgpad/curated"
	"github.com/dmgpad/dmgpad/digest"
	"github.com/dmgpad/dmgpad/joypad"
	"github.com/google/uuid"
)

// Recorder transcribes the input sampled by a joypad.Sampler.
type Recorder struct {
	output  io.WriteCloser
	session uuid.UUID
	mode    joypad.Mode
	numPads int

	digest *digest.State

	// the buttons last written for each controller
	last [joypad.MaxPads]joypad.ButtonMask
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
// The header of the transcript is written immediately.
//
// The mode and numPads arguments should match the Mode() and NumPads() of the
// sampler being recorded.
func NewRecorder(output io.WriteCloser, mode joypad.Mode, numPads int) (*Recorder, error) {
	if output == nil {
		return nil, curated.Errorf("recorder: no output")
	}
	if numPads < 1 || numPads > joypad.MaxPads {
		output.Close()
		return nil, curated.Errorf("recorder: unsupported number of controllers (%d)", numPads)
	}

	rec := &Recorder{
		output:  output,
		session: uuid.New(),
		mode:    mode,
		numPads: numPads,
		digest:  digest.NewState(),
	}

	if err := rec.writeHeader(); err != nil {
		return nil, err
	}

	return rec, nil
}

// Session returns the ID written to the header of the transcript.
func (rec *Recorder) Session() uuid.UUID {
	return rec.session
}

// RecordFrame should be called once after every joypad.Sampler.Tick().
func (rec *Recorder) RecordFrame(s *joypad.Sampler) error {
	pads := samplerPads(s, rec.numPads)
	rec.digest.Update(s.Frame(), s.State(), pads...)

	for i, m := range pads {
		if m == rec.last[i] {
			continue // for loop
		}
		rec.last[i] = m
		if err := rec.writeEntry(s.Frame(), i, m, rec.digest.Hash()); err != nil {
			return err
		}
	}

	return nil
}

// End flushes all remaining transcription to the output file and closes it.
func (rec *Recorder) End() error {
	if err := rec.output.Close(); err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}

// samplerPads returns the sampled buttons for the first n controllers.
func samplerPads(s *joypad.Sampler, n int) []joypad.ButtonMask {
	pads := make([]joypad.ButtonMask, n)
	for i := range pads {
		pads[i] = s.Pad(i)
	}
	return pads
}
