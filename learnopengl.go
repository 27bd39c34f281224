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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/jetsetilly/learnopengl/curated"
	"github.com/jetsetilly/learnopengl/gui/overlay"
	"github.com/jetsetilly/learnopengl/gui/sdlwindow"
	"github.com/jetsetilly/learnopengl/logger"
	"github.com/jetsetilly/learnopengl/opengl"
	"github.com/jetsetilly/learnopengl/opengl/loader"
	"github.com/jetsetilly/learnopengl/paths"
	"github.com/jetsetilly/learnopengl/performance"
	"github.com/jetsetilly/learnopengl/performance/limiter"
	"github.com/jetsetilly/learnopengl/renderer"
	"github.com/jetsetilly/learnopengl/scene"
	"github.com/jetsetilly/learnopengl/statsview"
	"github.com/jetsetilly/learnopengl/version"
)

// SDL and GL require that all calls are made from the same thread that
// created the window.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	logger.SetEcho(os.Stdout)

	if err := run(os.Stdout); err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

// report writes the error as a single line. multi-line errors, such as those
// carrying a shader info log, are joined with semicolons.
func report(w io.Writer, err error) {
	var parts []string
	for _, l := range strings.Split(err.Error(), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	fmt.Fprintf(w, "* error: %s\n", strings.Join(parts, "; "))
}

func run(output io.Writer) (rerr error) {
	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return err
	}

	prf, err := newPreferences(pth)
	if err != nil {
		return err
	}

	// a bad value in the prefs file is not fatal. the default value is used
	if err := prf.load(); err != nil {
		logger.Log(logger.Allow, "prefs", err)
	}

	defer func() {
		if err := prf.save(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	prof, err := performance.ParseProfile(prf.profile.String())
	if err != nil {
		return err
	}

	header, err := paths.ResourcePath("", "learnopengl")
	if err != nil {
		return err
	}

	return performance.RunProfiler(prof, header, func() error {
		return display(output, prf)
	})
}

// display opens the window and runs the lesson until the window is closed.
func display(output io.Writer, prf *preferences) error {
	lesson := prf.lesson.String()

	win, err := sdlwindow.Create(sdlwindow.Config{
		Title:   fmt.Sprintf("%s :: %s", version.String(), lesson),
		Width:   int32(prf.width.Get().(int)),
		Height:  int32(prf.height.Get().(int)),
		HighDPI: prf.highDPI.Get().(bool),
		VSync:   prf.vsync.Get().(bool),
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	fn, err := loader.Load(win.GetProcAddress)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "gl", "max vertex attributes: %d", opengl.MaxVertexAttribs(fn))

	lsn, err := scene.Build(fn, lesson)
	if err != nil {
		return err
	}
	defer lsn.Destroy()

	cfg := lsn.Config
	cfg.HeldKeys = prf.heldKeys.Get().(bool)
	if cfg.Camera != nil {
		prf.apply(cfg.Camera)
	}

	if fps := prf.fpsCap.Get().(int); fps > 0 {
		lim, err := limiter.NewFPSLimiter(fps)
		if err != nil {
			return curated.Errorf("window.fpscap: %v", err)
		}
		defer lim.Close()
		cfg.Limiter = lim
	}

	rnd, err := renderer.NewRenderer(fn, cfg)
	if err != nil {
		return err
	}

	// the overlay is not essential
	ovl, err := overlay.New(fn, win)
	if err != nil {
		logger.Log(logger.Allow, "overlay", err)
	} else {
		defer ovl.Destroy()
		rnd.SetOverlay(ovl, prf.overlay.Get().(bool))
	}

	if prf.statsview.Get().(bool) && statsview.Available() {
		statsview.Launch(output)
	}

	rnd.Run(win)

	// remember overlay visibility for next time
	if ovl != nil {
		_ = prf.overlay.Set(rnd.OverlayVisible())
	}

	return nil
}
