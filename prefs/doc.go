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

// Package prefs facilitates the storage of preferential values in the dmgpad
// system. It is intended to be used to store values that the user may want to
// persist between executions of the program.
//
// Preference values are the Bool, Int, String and Generic types. Values are
// registered with a Disk instance and saved to a file in the form:
//
//	key :: value
//
// Values can also be specified on the command line with the -prefs flag. The
// command line string is parsed with PushCommandLineStack() and values found
// there override values loaded from disk, but only for the most recent call
// to Disk.Load().
package prefs
