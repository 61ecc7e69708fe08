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

package joypad

import (
	"strings"

	"github.com/dmgpad/dmgpad/curated"
)

// MaxPads is the maximum number of controllers supported in multi-controller
// mode.
const MaxPads = 4

// Source is the read primitive for a single controller. Read() returns the
// buttons currently held. It is assumed to always succeed and never block for
// longer than it takes to read the hardware.
type Source interface {
	Read() ButtonMask
}

// SourceFunc allows an ordinary function to be used as a Source.
type SourceFunc func() ButtonMask

// Read implements the Source interface.
func (f SourceFunc) Read() ButtonMask {
	return f()
}

// MultiSource is the batched poll primitive for more than one controller.
type MultiSource interface {
	// Init prepares the controller subsystem for up to max controllers and
	// returns the number of controllers that will be reported by Poll().
	Init(max int) int

	// Poll fills pads with the held buttons of each controller, up to
	// len(pads) entries, and returns the number of controllers that
	// responded.
	Poll(pads []ButtonMask) int
}

// Mode names the type of Controller.
type Mode string

// List of valid Mode values.
const (
	ModeSingle Mode = "single"
	ModeMulti  Mode = "multi"
)

// Sentinal error returned by ParseMode().
const UnknownMode = "joypad: unknown controller mode (%s)"

// ParseMode converts a string to a Mode. The comparison is case insensitive.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSingle:
		return ModeSingle, nil
	case ModeMulti:
		return ModeMulti, nil
	}
	return ModeSingle, curated.Errorf(UnknownMode, s)
}

// Controller is the strategy used by the Sampler to read the hardware. There
// are two implementations, created with NewSingle() and NewMulti().
type Controller interface {
	// Reset prepares the hardware and returns the number of logical
	// controllers. The return value is always at least one.
	Reset() int

	// Sample reads the hardware into pads and returns the number of entries
	// that were filled. The length of pads is the value returned by the most
	// recent call to Reset().
	Sample(pads []ButtonMask) int

	// Mode returns the type of controller.
	Mode() Mode
}

type single struct {
	src Source
}

// NewSingle creates a Controller that reads exactly one controller directly.
func NewSingle(src Source) Controller {
	return &single{src: src}
}

func (c *single) Reset() int {
	return 1
}

func (c *single) Sample(pads []ButtonMask) int {
	if len(pads) == 0 {
		return 0
	}
	pads[0] = c.src.Read()
	return 1
}

func (c *single) Mode() Mode {
	return ModeSingle
}

type multi struct {
	src MultiSource
	max int
}

// NewMulti creates a Controller that polls up to max controllers in one
// batch. The max value is clamped to the range 1 to MaxPads.
func NewMulti(src MultiSource, max int) Controller {
	return &multi{src: src, max: clamp(max, 1, MaxPads)}
}

func (c *multi) Reset() int {
	return clamp(c.src.Init(c.max), 1, c.max)
}

func (c *multi) Sample(pads []ButtonMask) int {
	return clamp(c.src.Poll(pads), 0, len(pads))
}

func (c *multi) Mode() Mode {
	return ModeMulti
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
