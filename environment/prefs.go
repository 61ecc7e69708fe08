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

package environment

import (
	"github.com/dmgpad/dmgpad/curated"
	"github.com/dmgpad/dmgpad/joypad"
	"github.com/dmgpad/dmgpad/paths"
	"github.com/dmgpad/dmgpad/prefs"
	"github.com/dmgpad/dmgpad/userinput"
)

// the name of the preferences file in the resource directory.
const prefsFile = "preferences"

// the interface required by prefs.Disk.Add()
type pref interface {
	String() string
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// Preferences for a sampler session.
type Preferences struct {
	dsk *prefs.Disk

	// controller strategy. one of the joypad.Mode values
	JoypadMode prefs.String

	// the maximum number of controllers in multi mode
	MaxPads prefs.Int

	// number of frames a key is held for in the terminal frontend. terminals
	// do not report key releases
	HoldFrames prefs.Int

	// limit the frame loop to the Game Boy frame rate
	FPSCap prefs.Bool

	// log button transitions with the "input" tag
	LogInput prefs.Bool

	// keyboard bindings. see userinput.ParseBindings() for the format
	Bindings *prefs.Generic
	bindings userinput.Bindings
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// Sentinal error returned when a preference is set to an invalid value.
const InvalidPref = "prefs: invalid value for %s (%v)"

// NewPreferences is the preferred method of initialisation for the Preferences
// type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.JoypadMode.SetHookPre(func(v prefs.Value) error {
		if _, err := joypad.ParseMode(v.(string)); err != nil {
			return curated.Errorf(InvalidPref, "joypad.mode", v)
		}
		return nil
	})

	p.MaxPads.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n < 1 || n > joypad.MaxPads {
			return curated.Errorf(InvalidPref, "joypad.pads", v)
		}
		return nil
	})

	p.HoldFrames.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf(InvalidPref, "terminal.holdframes", v)
		}
		return nil
	})

	p.Bindings = prefs.NewGeneric(
		func(s string) error {
			if s == "" {
				p.bindings = userinput.DefaultBindings()
				return nil
			}
			bnd, err := userinput.ParseBindings(s)
			if err != nil {
				return err
			}
			p.bindings = bnd
			return nil
		},
		func() string {
			return p.bindings.String()
		},
	)

	var err error

	p.dsk, err = prefs.NewDisk(paths.ResourcePath("", prefsFile))
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		p   pref
	}{
		{"joypad.mode", &p.JoypadMode},
		{"joypad.pads", &p.MaxPads},
		{"terminal.holdframes", &p.HoldFrames},
		{"playmode.fpscap", &p.FPSCap},
		{"log.input", &p.LogInput},
		{"keys.bindings", p.Bindings},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	// errors are impossible for the default values
	_ = p.JoypadMode.Set(string(joypad.ModeSingle))
	_ = p.MaxPads.Set(joypad.MaxPads)
	_ = p.HoldFrames.Set(6)
	_ = p.FPSCap.Set(true)
	_ = p.LogInput.Set(true)
	p.bindings = userinput.DefaultBindings()
}

// Load preferences from disk. A preferences file is created if one does not
// exist.
func (p *Preferences) Load() error {
	if _, err := paths.MkResourceDir(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	return p.dsk.Load(true)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if _, err := paths.MkResourceDir(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	return p.dsk.Save()
}

// Mode returns the JoypadMode preference as a joypad.Mode.
func (p *Preferences) Mode() joypad.Mode {
	m, err := joypad.ParseMode(p.JoypadMode.String())
	if err != nil {
		return joypad.ModeSingle
	}
	return m
}

// KeyBindings returns a copy of the current keyboard bindings.
func (p *Preferences) KeyBindings() userinput.Bindings {
	bnd := make(userinput.Bindings, len(p.bindings))
	for k, v := range p.bindings {
		bnd[k] = v
	}
	return bnd
}
