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

// Package environment provides the context for a sampler session. The
// environment bundles the preferences that the frame loop, the frontends and
// the command line modes share.
package environment

import "github.com/dmgpad/dmgpad/logger"

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main session.
const MainEmulation = Label("")

// Environment is used to provide context for a sampler session.
type Environment struct {
	Label Label

	// the session preferences
	Prefs *Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// The prefs argument can by nil and a new Preferences instance will be
// created. Providing a non-nil value allows the preferences of more than one
// environment to be synchronised.
func NewEnvironment(label Label, prefs *Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	if prefs == nil {
		var err error
		prefs, err = NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// transcript playback where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
	env.Prefs.FPSCap.Set(false)
}

// IsMainEmulation returns true if the environment is intended for the main
// session in the system.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// AllowLogging implements the logger.Permission interface. Only the main
// session logs, and then only if the log.input preference is set.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation() && env.Prefs.LogInput.Get().(bool)
}

// make sure Environment satisfies the logger.Permission interface
var _ logger.Permission = (*Environment)(nil)
