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

package userinput

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmgpad/dmgpad/curated"
	"github.com/dmgpad/dmgpad/joypad"
)

// Sentinal error returned by ParseBindings() for badly formed binding strings.
const InvalidBinding = "bindings: %v"

// Binding maps a single key to buttons on a controller.
type Binding struct {
	Pad    int
	Button joypad.ButtonMask
}

func (b Binding) String() string {
	return fmt.Sprintf("%d:%s", b.Pad, b.Button)
}

// Bindings maps key names to controller buttons.
type Bindings map[string]Binding

// DefaultBindings returns a new instance of the default key bindings.
func DefaultBindings() Bindings {
	return Bindings{
		"Left":      {Pad: 0, Button: joypad.Left},
		"Right":     {Pad: 0, Button: joypad.Right},
		"Up":        {Pad: 0, Button: joypad.Up},
		"Down":      {Pad: 0, Button: joypad.Down},
		"X":         {Pad: 0, Button: joypad.A},
		"Z":         {Pad: 0, Button: joypad.B},
		"Return":    {Pad: 0, Button: joypad.Start},
		"Backspace": {Pad: 0, Button: joypad.Select},

		"A": {Pad: 1, Button: joypad.Left},
		"D": {Pad: 1, Button: joypad.Right},
		"W": {Pad: 1, Button: joypad.Up},
		"S": {Pad: 1, Button: joypad.Down},
		"G": {Pad: 1, Button: joypad.A},
		"F": {Pad: 1, Button: joypad.B},
		"T": {Pad: 1, Button: joypad.Start},
		"R": {Pad: 1, Button: joypad.Select},
	}
}

// String returns the bindings in the format accepted by ParseBindings(). Keys
// are sorted so that the output is stable.
func (bnd Bindings) String() string {
	keys := make([]string, 0, len(bnd))
	for k := range bnd {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := strings.Builder{}
	for i, k := range keys {
		if i > 0 {
			s.WriteString("; ")
		}
		s.WriteString(fmt.Sprintf("%s=%s", k, bnd[k]))
	}
	return s.String()
}

// ParseBindings reads a string of the form "key=pad:button; key=pad:button"
// into a new Bindings instance. The button part is anything accepted by
// joypad.ParseButtonMask(). An empty string results in an empty Bindings.
func ParseBindings(s string) (Bindings, error) {
	bnd := make(Bindings)

	for _, f := range strings.Split(s, ";") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue // for loop
		}

		key, value, ok := strings.Cut(f, "=")
		if !ok {
			return nil, curated.Errorf(InvalidBinding, fmt.Sprintf("missing '=' in %q", f))
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, curated.Errorf(InvalidBinding, fmt.Sprintf("missing key in %q", f))
		}

		pad, button, ok := strings.Cut(value, ":")
		if !ok {
			return nil, curated.Errorf(InvalidBinding, fmt.Sprintf("missing ':' in %q", f))
		}

		n, err := strconv.Atoi(strings.TrimSpace(pad))
		if err != nil || n < 0 || n >= joypad.MaxPads {
			return nil, curated.Errorf(InvalidBinding, fmt.Sprintf("bad controller number in %q", f))
		}

		m, err := joypad.ParseButtonMask(strings.TrimSpace(button))
		if err != nil {
			return nil, curated.Errorf(InvalidBinding, err)
		}
		if m == joypad.NoButtons {
			return nil, curated.Errorf(InvalidBinding, fmt.Sprintf("no buttons in %q", f))
		}

		bnd[key] = Binding{Pad: n, Button: m}
	}

	return bnd, nil
}
