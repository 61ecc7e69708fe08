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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Modes are added with AddSubModes(). The first mode in the list is the
// default mode and is selected if the first non-flag argument is not one of
// the listed modes. For example, dmgpad has the following top level modes:
//
//	md.AddSubModes("RUN", "TERM", "PLAY", "SCENE", "VERSION")
//
// After a successful Parse() the selected mode is returned by Mode(). Flags
// for the selected mode are then added after a call to NewMode() and parsed
// with another call to Parse():
//
//	md.NewMode()
//	frames := md.AddInt("frames", 0, "number of frames to run for")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help message has already been printed
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// Non-flag arguments can be retrieved with the RemainingArgs() or GetArg()
// functions.
//
// The -help flag is handled automatically for every mode. The help message
// lists the flags and any sub-modes.
package modalflag
