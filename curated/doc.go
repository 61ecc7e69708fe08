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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a specific
// pattern. Patterns that are checked for in this way should be declared as a
// const string, suitably named and commented. For example, the recorder
// package declares:
//
//	const PlaybackHashError = "playback: unexpected input state at line %d (frame %d)"
//
// and callers can then ask:
//
//	if curated.Is(err, recorder.PlaybackHashError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("port: no such controller (%d)", 5)
//	f := curated.Errorf("input: %v", e)
//
//	curated.Has(f, "port: no such controller (%d)") // true
//	curated.Is(f, "port: no such controller (%d)")  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors depending on how we choose to handle the result.
//
// The Error() function normalises the error chain so that it does not contain
// duplicate adjacent parts. This alleviates the problem of when and how to
// wrap errors as they travel up the call stack:
//
//	return curated.Errorf("playback: %v", err)
//
// where err is itself "playback: line 3: too few fields" results in the
// message:
//
//	playback: line 3: too few fields
//
// For the purposes of this package chains are composed of parts separated by
// the sub-string ": " as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
//
// Curated errors also implement the multi-error Unwrap() method so that errors
// passed as values to Errorf() can be found with errors.Is() and errors.As()
// from the standard library.
package curated
