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

// Package test bundles helper functions that remove boilerplate from the
// tests in the rest of the project.
//
// The Expect*() functions report a failure with t.Errorf() and allow the
// test to continue. The Demand*() functions report with t.Fatalf() and should
// be used when later parts of the test depend on the value being correct. For
// example, testing that the length of a slice is correct before indexing it.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to its
// type. A nil value is considered a success. This follows from how errors
// usually work (nil to indicate no error) even though it may not be the
// natural interpretation in every situation.
//
// The Writer type implements io.Writer and is used to capture output so that
// it can be compared against an expected string.
package test
