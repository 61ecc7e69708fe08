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

package statsview

import (
	"fmt"
	"io"

	"github.com/dmgpad/dmgpad/logger"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress is used by Launch() when the address argument is empty.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"

// Launch starts the statistics server in a new goroutine. The returned
// function stops the server.
func Launch(output io.Writer, addr string) (stop func()) {
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()

	go func() {
		mgr.Start()
		logger.Logf(logger.Allow, "statsview", "server at %s stopped", addr)
	}()

	logger.Logf(logger.Allow, "statsview", "server started at %s", addr)
	fmt.Fprintf(output, "stats server available at http://%s%s\n", addr, url)

	return mgr.Stop
}
