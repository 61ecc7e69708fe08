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

package termgui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmgpad/dmgpad/gui/termgui/easyterm"
	"github.com/dmgpad/dmgpad/joypad"
	"github.com/dmgpad/dmgpad/logger"
	"github.com/dmgpad/dmgpad/userinput"
)

// TermGUI is the terminal frontend. It implements the playmode.GUI interface.
type TermGUI struct {
	term easyterm.Terminal

	holder *holder

	// keys read by the input goroutine
	keys chan []string
	done chan struct{}

	quit bool
}

// NewTermGUI is the preferred method of initialisation for the TermGUI type.
// The terminal is put into raw mode until Destroy() is called.
func NewTermGUI(input *os.File, output *os.File, holdFrames int) (*TermGUI, error) {
	tg := &TermGUI{
		holder: newHolder(holdFrames),
		keys:   make(chan []string, 16),
		done:   make(chan struct{}),
	}

	if err := tg.term.Initialise(input, output); err != nil {
		return nil, err
	}
	tg.term.RawMode()

	go tg.readInput(input)

	logger.Logf(logger.Allow, "term", "terminal frontend with a hold period of %d frames", tg.holder.frames)

	return tg, nil
}

// readInput runs in its own goroutine. it blocks on reading the terminal and
// ends when the input is closed or Destroy() is called.
func (tg *TermGUI) readInput(input io.Reader) {
	b := make([]byte, 32)
	for {
		n, err := input.Read(b)
		if err != nil {
			return
		}
		keys := decodeKeys(b[:n])
		if len(keys) == 0 {
			continue // for loop
		}
		select {
		case tg.keys <- keys:
		case <-tg.done:
			return
		}
	}
}

// Service implements the playmode.GUI interface.
func (tg *TermGUI) Service() ([]userinput.Event, error) {
	var ev []userinput.Event

	// expire keys before adding new presses. a key pressed this frame is
	// held for the full period
	ev = append(ev, tg.holder.tick()...)

	for {
		select {
		case keys := <-tg.keys:
			for _, k := range keys {
				if k == keyQuit {
					ev = append(ev, userinput.EventQuit{})
					continue // for loop
				}
				ev = append(ev, tg.holder.press(k)...)
			}
		default:
			return ev, nil
		}
	}
}

// statusLine describes the sampler state in a single line no wider than cols.
// a cols value of zero or less means the width is unknown.
func statusLine(s *joypad.Sampler, cols int) string {
	st := s.State()

	line := strings.Builder{}
	line.WriteString(fmt.Sprintf("frame %-8d held %-28s pressed %-20s dir %-6s", s.Frame(), st.Current, st.Pressed, st.RecentDirectional))
	for i := 1; i < s.NumPads(); i++ {
		line.WriteString(fmt.Sprintf(" | %d: %-20s", i+1, s.Pad(i)))
	}

	if cols > 0 && line.Len() > cols {
		return line.String()[:cols]
	}
	return line.String()
}

// Render implements the playmode.GUI interface.
func (tg *TermGUI) Render(s *joypad.Sampler) error {
	// the status line overwrites the previous one and clears whatever remains
	// of it
	tg.term.Print("\r%s\x1b[K", statusLine(s, tg.term.Geometry().Cols))
	return nil
}

// Destroy implements the playmode.GUI interface. The terminal is returned to
// canonical mode.
func (tg *TermGUI) Destroy() {
	close(tg.done)
	tg.term.Print("\r\n")

	// unread key presses shouldn't be passed to the shell
	if err := tg.term.Flush(); err != nil {
		logger.Log(logger.Allow, "term", err)
	}

	tg.term.CleanUp()
}
