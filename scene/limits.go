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

package scene

import "fmt"

// Limits of the game engine.
const (
	MaxActors      = 20
	MaxTriggers    = 30
	MaxSpriteTiles = 96
)

// Issue describes a scene that exceeds one of the engine limits. If Exact is
// true then the Limit is a value the Count must match.
type Issue struct {
	What  string
	Count int
	Limit int
	Exact bool
}

func (is Issue) String() string {
	if is.Exact {
		return fmt.Sprintf("%d %s (expected: %d)", is.Count, is.What, is.Limit)
	}
	return fmt.Sprintf("%d %s (limit: %d)", is.Count, is.What, is.Limit)
}

// Check the scene against the engine limits. Returns nil if the scene is
// within all limits.
func Check(s *Scene) []Issue {
	var issues []Issue

	if n := len(s.Actors); n > MaxActors {
		issues = append(issues, Issue{What: "actors", Count: n, Limit: MaxActors})
	}
	if n := len(s.Triggers); n > MaxTriggers {
		issues = append(issues, Issue{What: "triggers", Count: n, Limit: MaxTriggers})
	}
	if s.SpriteTilesUsed > MaxSpriteTiles {
		issues = append(issues, Issue{What: "sprite tiles", Count: s.SpriteTilesUsed, Limit: MaxSpriteTiles})
	}

	return issues
}
