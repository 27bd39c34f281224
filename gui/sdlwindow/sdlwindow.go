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

package sdlwindow

import (
	"runtime"
	"unsafe"

	"github.com/jetsetilly/learnopengl/curated"
	"github.com/jetsetilly/learnopengl/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowCreate is the pattern for all errors returned by Create().
const WindowCreate = "sdl: %v"

// Config describes the window to create.
type Config struct {
	Title  string
	Width  int32
	Height int32

	HighDPI    bool
	Borderless bool
	Resizable  bool

	// the window is not shown. useful for testing
	Hidden bool

	VSync bool
}

// Window is a window with a current GL context. It should be instantiated
// with Create().
type Window struct {
	window  *sdl.Window
	context sdl.GLContext
}

// Create initialises SDL and creates the window and GL context. The context is
// current when the function returns. If an error is returned nothing remains
// to be destroyed.
func Create(cfg Config) (*Window, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(WindowCreate, err)
	}

	err = setAttributes()
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(WindowCreate, err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	flags := uint32(sdl.WINDOW_OPENGL)
	if cfg.HighDPI {
		flags |= sdl.WINDOW_ALLOW_HIGHDPI
	}
	if cfg.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if cfg.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	} else {
		flags |= sdl.WINDOW_SHOWN
	}

	win := &Window{}

	win.window, err = sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		cfg.Width, cfg.Height, flags)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(WindowCreate, err)
	}

	win.context, err = win.window.GLCreateContext()
	if err != nil {
		win.Destroy()
		return nil, curated.Errorf(WindowCreate, err)
	}

	err = win.window.GLMakeCurrent(win.context)
	if err != nil {
		win.Destroy()
		return nil, curated.Errorf(WindowCreate, err)
	}

	win.SetVSync(cfg.VSync)

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	w, h := win.DrawableSize()
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d core", major, minor)
	logger.Logf(logger.Allow, "sdl", "drawable size %dx%d", w, h)

	return win, nil
}

// setAttributes must be called before the window is created.
func setAttributes() error {
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 3},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}

	// deprecated functions are unavailable in a forward compatible context.
	// macOS will only create a core context if the flag is set
	if runtime.GOOS == "darwin" {
		attrs = append(attrs, struct {
			attr  sdl.GLattr
			value int
		}{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG})
	}

	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return err
		}
	}

	return nil
}

// Destroy the GL context and the window and shut down SDL. It is safe to call
// more than once.
func (win *Window) Destroy() {
	if win.context != nil {
		sdl.GLDeleteContext(win.context)
		win.context = nil
	}
	if win.window != nil {
		if err := win.window.Destroy(); err != nil {
			logger.Log(logger.Allow, "sdl", err)
		}
		win.window = nil
		sdl.Quit()
	}
}

// GetProcAddress returns the address of the named GL function. Suitable for
// passing to loader.Load().
func (win *Window) GetProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

// Swap presents the back buffer. Blocks until the vertical retrace if vsync
// is enabled.
func (win *Window) Swap() {
	win.window.GLSwap()
}

// SetVSync sets the swap interval of the context. Failure is logged but is
// otherwise ignored.
func (win *Window) SetVSync(vsync bool) {
	var i int
	if vsync {
		i = 1
	}
	if err := sdl.GLSetSwapInterval(i); err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %v", i, err)
	}
}

// SetRelativeMouse hides the cursor and reports relative mouse motion if set
// is true.
func (win *Window) SetRelativeMouse(set bool) {
	sdl.SetRelativeMouseMode(set)
	win.window.SetGrab(set)
}

// DrawableSize returns the size of the drawable area in pixels. This can
// differ from the window size on high DPI displays.
func (win *Window) DrawableSize() (int32, int32) {
	return win.window.GLGetDrawableSize()
}

// AspectRatio returns the width of the drawable area divided by its height.
func (win *Window) AspectRatio() float32 {
	w, h := win.DrawableSize()
	if h == 0 {
		return 1
	}
	return float32(w) / float32(h)
}

// WindowSize returns the size of the window in screen coordinates.
func (win *Window) WindowSize() (int32, int32) {
	return win.window.GetSize()
}
