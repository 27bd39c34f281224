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

package renderer

import (
	"github.com/jetsetilly/learnopengl/assets"
	"github.com/jetsetilly/learnopengl/logger"
	"github.com/jetsetilly/learnopengl/opengl"
	"github.com/jetsetilly/learnopengl/paths"
)

// Screenshot saves the contents of the current viewport of the default
// framebuffer as a PNG file in the screenshots directory of the resource
// path. Returns the path of the saved file.
func (rnd *Renderer) Screenshot() (string, error) {
	var vp [4]int32
	rnd.fn.GetIntegerv(opengl.VIEWPORT, vp[:])

	pixels, err := opengl.ReadPixels(rnd.fn, int(vp[0]), int(vp[1]), int(vp[2]), int(vp[3]), opengl.RGB)
	if err != nil {
		return "", err
	}

	// rows from the framebuffer are bottom row first
	img := assets.FlipVertical(opengl.Image{
		Width:  int(vp[2]),
		Height: int(vp[3]),
		Format: opengl.RGB,
		Pixels: pixels,
	})

	pth, err := paths.ResourcePath("screenshots", paths.UniqueFilename("screenshot", rnd.cfg.Name)+".png")
	if err != nil {
		return "", err
	}

	err = assets.SavePNG(pth, img)
	if err != nil {
		return "", err
	}

	return pth, nil
}

func (rnd *Renderer) saveScreenshot() {
	pth, err := rnd.Screenshot()
	if err != nil {
		logger.Logf(logger.Allow, "renderer", "screenshot failed: %v", err)
		return
	}
	logger.Logf(logger.Allow, "renderer", "screenshot saved: %s", pth)
}
