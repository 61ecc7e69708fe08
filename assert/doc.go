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

// Package assert contains checks for programming errors that should never
// happen in a correct program. The checks are only compiled when the
// "assertions" build tag is specified:
//
//	go test -tags=assertions ./...
//
// Without the tag the functions are stubs and the Enabled constant is false,
// so code guarded by "if assert.Enabled" is removed by the compiler.
package assert
