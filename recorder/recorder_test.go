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

package recorder_test

import (
	"strings"
	"testing"

	"github.com/dmgpad/dmgpad/curated"
	"github.com/dmgpad/dmgpad/joypad"
	"github.com/dmgpad/dmgpad/recorder"
	"github.com/dmgpad/dmgpad/test"
)

// script is a sequence of held buttons, one entry per frame
var script = []joypad.ButtonMask{
	joypad.NoButtons,
	joypad.Right,
	joypad.Right,
	joypad.Right | joypad.A,
	joypad.Up,
	joypad.Up,
	joypad.NoButtons,
	joypad.Start,
}

func scriptSource() joypad.Source {
	var i int
	return joypad.SourceFunc(func() joypad.ButtonMask {
		m := script[i%len(script)]
		i++
		return m
	})
}

func record(t *testing.T) string {
	t.Helper()

	tw := &test.Writer{}
	s := joypad.NewSampler(joypad.NewSingle(scriptSource()))

	rec, err := recorder.NewRecorder(tw, s.Mode(), s.NumPads())
	test.DemandSuccess(t, err)

	for range script {
		s.Tick()
		test.DemandSuccess(t, rec.RecordFrame(s))
	}
	test.DemandSuccess(t, rec.End())

	return tw.String()
}

func TestTranscript(t *testing.T) {
	transcript := record(t)
	lines := strings.Split(strings.TrimSuffix(transcript, "\n"), "\n")

	test.ExpectEquality(t, lines[0], "dmgpad transcript")
	test.ExpectEquality(t, lines[2], "single")
	test.ExpectEquality(t, lines[3], "1")

	// frame 1 has no buttons held and is the same as the initial state so
	// there is no entry for it. frames 3 and 6 are the same as the preceding
	// frame
	entries := lines[4:]
	test.DemandEquality(t, len(entries), 5)

	frames := []string{"2", "4", "5", "7", "8"}
	masks := []string{"01", "11", "04", "00", "80"}
	for i, e := range entries {
		f := strings.Split(e, ", ")
		test.DemandEquality(t, len(f), 4, i)
		test.ExpectEquality(t, f[0], frames[i], i)
		test.ExpectEquality(t, f[1], "0", i)
		test.ExpectEquality(t, f[2], masks[i], i)
		test.ExpectEquality(t, len(f[3]), 40, i)
	}
}

func TestPlayback(t *testing.T) {
	plb, err := recorder.NewPlayback(strings.NewReader(record(t)))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.Mode, joypad.ModeSingle)
	test.ExpectEquality(t, plb.NumPads, 1)

	s := joypad.NewSampler(plb.Controller())
	for i := range script {
		test.ExpectFailure(t, plb.EndFrame(), i)
		s.Tick()
		test.ExpectSuccess(t, plb.Verify(s), i)
		test.ExpectEquality(t, s.Current(), script[i], i)
	}
	s.Tick()
	test.ExpectSuccess(t, plb.Verify(s))
	test.ExpectSuccess(t, plb.EndFrame())
}

func TestPlaybackHashError(t *testing.T) {
	transcript := record(t)

	// change the buttons on the second entry (frame 4) from Right|A to A
	transcript = strings.Replace(transcript, "4, 0, 11,", "4, 0, 10,", 1)

	plb, err := recorder.NewPlayback(strings.NewReader(transcript))
	test.DemandSuccess(t, err)

	s := joypad.NewSampler(plb.Controller())
	for range 3 {
		s.Tick()
		test.ExpectSuccess(t, plb.Verify(s))
	}

	s.Tick()
	err = plb.Verify(s)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, recorder.PlaybackHashError))
	test.ExpectEquality(t, err.Error(), "playback: unexpected input state at line 6 (frame 4)")
}

func TestPlaybackFrameError(t *testing.T) {
	plb, err := recorder.NewPlayback(strings.NewReader(record(t)))
	test.DemandSuccess(t, err)

	// a sampler that isn't reading from the playback
	s := joypad.NewSampler(joypad.NewSingle(scriptSource()))
	s.Tick()
	err = plb.Verify(s)
	test.ExpectSuccess(t, curated.Is(err, recorder.PlaybackFrameError))
}

func TestMultiPlayback(t *testing.T) {
	var frame int
	src := &multiScript{frame: &frame}

	tw := &test.Writer{}
	s := joypad.NewSampler(joypad.NewMulti(src, 2))
	test.DemandEquality(t, s.NumPads(), 2)

	rec, err := recorder.NewRecorder(tw, s.Mode(), s.NumPads())
	test.DemandSuccess(t, err)
	for range 6 {
		s.Tick()
		test.DemandSuccess(t, rec.RecordFrame(s))
	}
	test.DemandSuccess(t, rec.End())

	plb, err := recorder.NewPlayback(strings.NewReader(tw.String()))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.Mode, joypad.ModeMulti)
	test.ExpectEquality(t, plb.NumPads, 2)

	p := joypad.NewSampler(plb.Controller())
	test.DemandEquality(t, p.NumPads(), 2)
	for i := range 6 {
		p.Tick()
		test.ExpectSuccess(t, plb.Verify(p), i)
		test.ExpectEquality(t, p.Pad(0), src.pad(0, i), i)
		test.ExpectEquality(t, p.Pad(1), src.pad(1, i), i)
	}
}

type multiScript struct {
	frame *int
}

func (m *multiScript) pad(n int, frame int) joypad.ButtonMask {
	if n == 0 {
		return joypad.ButtonMask(frame) & joypad.DirectionalMask
	}
	if frame%2 == 0 {
		return joypad.A
	}
	return joypad.B
}

func (m *multiScript) Init(max int) int {
	return 2
}

func (m *multiScript) Poll(pads []joypad.ButtonMask) int {
	for i := range pads {
		pads[i] = m.pad(i, *m.frame)
	}
	*m.frame++
	return len(pads)
}

func TestMalformedTranscripts(t *testing.T) {
	const session = "5b1a3b6e-6d8c-4d8e-9c3e-7b2f1d0e4a11"

	for _, s := range []string{
		"",
		"not a transcript\n" + session + "\nsingle\n1\n",
		"dmgpad transcript\nnot a uuid\nsingle\n1\n",
		"dmgpad transcript\n" + session + "\ndouble\n1\n",
		"dmgpad transcript\n" + session + "\nmulti\n5\n",
		"dmgpad transcript\n" + session + "\nsingle\n2\n",
		"dmgpad transcript\n" + session + "\nsingle\n1\n1, 0, 01\n",
		"dmgpad transcript\n" + session + "\nsingle\n1\n0, 0, 01, abc\n",
		"dmgpad transcript\n" + session + "\nsingle\n1\n1, 1, 01, abc\n",
		"dmgpad transcript\n" + session + "\nsingle\n1\n1, 0, zz, abc\n",
		"dmgpad transcript\n" + session + "\nsingle\n1\n2, 0, 01, abc\n1, 0, 00, abc\n",
	} {
		_, err := recorder.NewPlayback(strings.NewReader(s))
		test.ExpectFailure(t, err, s)
	}

	// header only is a valid transcript
	plb, err := recorder.NewPlayback(strings.NewReader("dmgpad transcript\n" + session + "\nmulti\n2\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.NumPads, 2)
	test.ExpectFailure(t, plb.EndFrame())
}
