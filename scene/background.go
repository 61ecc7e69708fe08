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
	"image"
	"image/png"
	"io"

	"github.com/dmgpad/dmgpad/curated"
	"golang.org/x/image/draw"
)

// Background images are the size of the screen and are cut into tiles. The
// engine has room in video memory for a limited number of unique tiles.
const (
	BackgroundWidth    = 160
	BackgroundHeight   = 144
	TileSize           = 8
	MaxBackgroundTiles = 192
)

// CheckBackground decodes a PNG background image and checks it against the
// screen size and the background tile limit. Returns nil if the background
// is within all limits.
func CheckBackground(r io.Reader) ([]Issue, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, curated.Errorf("scene: background: %v", err)
	}

	var issues []Issue

	sz := img.Bounds().Size()
	if sz.X != BackgroundWidth {
		issues = append(issues, Issue{What: "pixels wide", Count: sz.X, Limit: BackgroundWidth, Exact: true})
	}
	if sz.Y != BackgroundHeight {
		issues = append(issues, Issue{What: "pixels high", Count: sz.Y, Limit: BackgroundHeight, Exact: true})
	}

	if n := UniqueTiles(img); n > MaxBackgroundTiles {
		issues = append(issues, Issue{What: "background tiles", Count: n, Limit: MaxBackgroundTiles})
	}

	return issues, nil
}

// UniqueTiles counts the distinct 8x8 tiles in the image. Tiles on the right
// and bottom edges of an image that is not a multiple of the tile size are
// padded with transparent pixels.
func UniqueTiles(img image.Image) int {
	b := img.Bounds()
	tile := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	seen := make(map[string]bool)

	for y := b.Min.Y; y < b.Max.Y; y += TileSize {
		for x := b.Min.X; x < b.Max.X; x += TileSize {
			clear(tile.Pix)
			draw.Copy(tile, image.Point{}, img, image.Rect(x, y, x+TileSize, y+TileSize), draw.Src, nil)
			seen[string(tile.Pix)] = true
		}
	}

	return len(seen)
}
