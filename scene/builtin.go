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

// Scene1 is the scene compiled into the demonstration build. It should be
// treated as read only.
var Scene1 = Scene{
	Name:          "Scene 1",
	Width:         20,
	Height:        18,
	Type:          "topdown",
	Background:    "bg_placeholder",
	Palette:       "palette_0",
	SpritePalette: "palette_1",
	PlayerSprite:  "sprite_actor_animated",
	Actors: []Actor{
		{
			Name:             "Actor 1",
			Pos:              Pos{X: 1152, Y: 1024},
			Bounds:           Bounds{Left: 0, Bottom: 7, Right: 15, Top: 0},
			Dir:              DirDown,
			Sprite:           "sprite_actor_animated",
			MoveSpeed:        16,
			AnimTick:         15,
			CollisionGroup:   "none",
			CollisionEnabled: true,
		},
	},
}
