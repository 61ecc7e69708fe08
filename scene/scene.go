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

import (
	"fmt"
	"strings"

	"github.com/dmgpad/dmgpad/curated"
	"gopkg.in/yaml.v3"
)

// Direction an actor is facing.
type Direction int

// List of valid Direction values.
const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

var directionNames = [...]string{"down", "up", "left", "right"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// Sentinal error returned when a direction string is not recognised.
const UnknownDirection = "scene: unknown direction (%s)"

// ParseDirection converts a string to a Direction. The string is case
// insensitive and may have a "DIR_" prefix.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "dir_")
	for i, n := range directionNames {
		if s == n {
			return Direction(i), nil
		}
	}
	return DirDown, curated.Errorf(UnknownDirection, s)
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}

// Pos is the position of an actor in the scene. Units are sub-pixels.
type Pos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Bounds is the collision box of an actor relative to its position.
type Bounds struct {
	Left   int `yaml:"left"`
	Bottom int `yaml:"bottom"`
	Right  int `yaml:"right"`
	Top    int `yaml:"top"`
}

// Actor is a single actor record.
type Actor struct {
	Name             string    `yaml:"name"`
	Pos              Pos       `yaml:"pos"`
	Bounds           Bounds    `yaml:"bounds"`
	Dir              Direction `yaml:"direction"`
	Sprite           string    `yaml:"sprite"`
	MoveSpeed        int       `yaml:"moveSpeed"`
	AnimTick         int       `yaml:"animTick"`
	Pinned           bool      `yaml:"pinned"`
	Persistent       bool      `yaml:"persistent"`
	CollisionGroup   string    `yaml:"collisionGroup"`
	CollisionEnabled bool      `yaml:"collisionEnabled"`
	ReserveTiles     int       `yaml:"reserveTiles"`
}

// Trigger is a rectangular area of the scene that runs a script when the
// player enters it.
type Trigger struct {
	Name   string `yaml:"name"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Scene is a single scene record. Width and Height are in tiles.
type Scene struct {
	Name            string    `yaml:"name"`
	Width           int       `yaml:"width"`
	Height          int       `yaml:"height"`
	Type            string    `yaml:"type"`
	Background      string    `yaml:"background"`
	Palette         string    `yaml:"palette"`
	SpritePalette   string    `yaml:"spritePalette"`
	PlayerSprite    string    `yaml:"playerSprite"`
	ReserveTiles    int       `yaml:"reserveTiles"`
	Actors          []Actor   `yaml:"actors"`
	Triggers        []Trigger `yaml:"triggers"`
	SpriteTilesUsed int       `yaml:"spriteTilesUsed"`
}

func (s *Scene) String() string {
	return fmt.Sprintf("%s (%dx%d %s, %d actors, %d triggers)", s.Name, s.Width, s.Height, s.Type, len(s.Actors), len(s.Triggers))
}
