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

//go:build assertions

package assert

import "fmt"

// Enabled is true when the "assertions" build tag is present.
const Enabled = true

// Check panics with the formatted message if cond is false.
func Check(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: %s", fmt.Sprintf(msg, args...)))
	}
}

// SameGoroutine panics if the calling goroutine is not the one identified by
// owner.
func SameGoroutine(owner uint64, what string) {
	if id := GoroutineID(); id != owner {
		panic(fmt.Sprintf("assertion failed: %s called from goroutine %d (owner is %d)", what, id, owner))
	}
}
