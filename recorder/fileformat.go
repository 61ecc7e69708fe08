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
	"strconv"
	"strings"

	"github.com/dmgpad/dmgpad/curated"
	"github.com/dmgpad/dmgpad/joypad"
	"github.com/google/uuid"
)

const magicString = "dmgpad transcript"

// transcript header lines
const (
	lineMagic int = iota
	lineSession
	lineMode
	lineNumPads
	numHeaderLines
)

// fields in each transcript entry
const (
	fieldFrame int = iota
	fieldPad
	fieldMask
	fieldHash
	numFields
)

const fieldSep = ", "

func (rec *Recorder) writeHeader() error {
	lines := make([]string, numHeaderLines)
	lines[lineMagic] = magicString
	lines[lineSession] = rec.session.String()
	lines[lineMode] = string(rec.mode)
	lines[lineNumPads] = strconv.Itoa(rec.numPads)

	line := fmt.Sprintf("%s\n", strings.Join(lines, "\n"))

	n, err := io.WriteString(rec.output, line)
	if err != nil {
		rec.output.Close()
		return curated.Errorf("recorder: %v", err)
	}
	if n != len(line) {
		rec.output.Close()
		return curated.Errorf("recorder: output truncated")
	}

	return nil
}

func (rec *Recorder) writeEntry(frame int, pad int, mask joypad.ButtonMask, hash string) error {
	line := fmt.Sprintf("%d%s%d%s%02x%s%s\n", frame, fieldSep, pad, fieldSep, uint8(mask), fieldSep, hash)

	n, err := io.WriteString(rec.output, line)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	if n != len(line) {
		return curated.Errorf("recorder: output truncated")
	}

	return nil
}

func (plb *Playback) readHeader(lines []string) error {
	if len(lines) < numHeaderLines {
		return curated.Errorf("playback: transcript header is too short")
	}

	if lines[lineMagic] != magicString {
		return curated.Errorf("playback: not a transcript file")
	}

	var err error

	plb.Session, err = uuid.Parse(lines[lineSession])
	if err != nil {
		return curated.Errorf("playback: line %d: %v", lineSession+1, err)
	}

	plb.Mode, err = joypad.ParseMode(lines[lineMode])
	if err != nil {
		return curated.Errorf("playback: line %d: %v", lineMode+1, err)
	}

	plb.NumPads, err = strconv.Atoi(lines[lineNumPads])
	if err != nil {
		return curated.Errorf("playback: line %d: %v", lineNumPads+1, err)
	}
	if plb.NumPads < 1 || plb.NumPads > joypad.MaxPads {
		return curated.Errorf("playback: line %d: unsupported number of controllers (%d)", lineNumPads+1, plb.NumPads)
	}
	if plb.Mode == joypad.ModeSingle && plb.NumPads != 1 {
		return curated.Errorf("playback: line %d: single controller mode with %d controllers", lineNumPads+1, plb.NumPads)
	}

	return nil
}

func (plb *Playback) readEntry(line string, lineNum int) (playbackEntry, error) {
	entry := playbackEntry{line: lineNum}

	toks := strings.Split(line, fieldSep)
	if len(toks) != numFields {
		return entry, curated.Errorf("playback: expected %d fields at line %d", numFields, lineNum)
	}

	var err error

	entry.frame, err = strconv.Atoi(toks[fieldFrame])
	if err != nil || entry.frame < 1 {
		return entry, curated.Errorf("playback: invalid frame number at line %d", lineNum)
	}

	entry.pad, err = strconv.Atoi(toks[fieldPad])
	if err != nil || entry.pad < 0 || entry.pad >= plb.NumPads {
		return entry, curated.Errorf("playback: invalid controller number at line %d", lineNum)
	}

	m, err := strconv.ParseUint(toks[fieldMask], 16, 8)
	if err != nil {
		return entry, curated.Errorf("playback: invalid button mask at line %d", lineNum)
	}
	entry.mask = joypad.ButtonMask(m)

	entry.hash = toks[fieldHash]

	return entry, nil
}
