// This file is part of LearnOpenGL.
//
// LearnOpenGL is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// LearnOpenGL is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with LearnOpenGL.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/learnopengl/logger"
)

// Address is the address the statsview server listens on.
const Address = "localhost:12600"

const url = "/debug/statsview"

// URL returns the full URL of the statsview page.
func URL() string {
	return fmt.Sprintf("http://%s%s", Address, url)
}

var launch sync.Once

// Launch a new goroutine running the statsview. The URL of the statsview page
// is written to output. Calling Launch more than once has no effect.
func Launch(output io.Writer) {
	launch.Do(func() {
		go func() {
			viewer.SetConfiguration(viewer.WithAddr(Address))
			mgr := statsview.New()
			if err := mgr.Start(); err != nil {
				logger.Log(logger.Allow, "statsview", err)
			}
		}()

		logger.Logf(logger.Allow, "statsview", "launched on %s", Address)
		if output != nil {
			io.WriteString(output, fmt.Sprintf("stats server available at %s\n", URL()))
		}
	})
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
