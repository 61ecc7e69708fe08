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

package playmode

import (
	"context"
	"time"
)

// the Game Boy refreshes the screen every 70224 clock cycles of a 4194304Hz
// clock. a little under 60 frames per second.
const (
	clockHz        = 4194304
	cyclesPerFrame = 70224
)

// FrameRate is the number of frames per second when the frame loop is capped.
const FrameRate = float64(clockHz) / float64(cyclesPerFrame)

// limiter regulates how often the frame loop runs.
type limiter struct {
	period time.Duration
	ticker *time.Ticker
}

func newLimiter(framesPerSecond float64) *limiter {
	period := time.Duration(float64(time.Second) / framesPerSecond)
	return &limiter{
		period: period,
		ticker: time.NewTicker(period),
	}
}

// wait blocks until the next frame is due. returns false if the context was
// cancelled while waiting.
func (lim *limiter) wait(ctx context.Context) bool {
	select {
	case <-lim.ticker.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// restart the limiter. should be called when pacing is resumed after a period
// without pacing so that a late tick isn't consumed straight away.
func (lim *limiter) restart() {
	lim.ticker.Reset(lim.period)
}

func (lim *limiter) stop() {
	lim.ticker.Stop()
}
