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

package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources when it exists in the current directory.
const localResourcePath = ".learnopengl"

// the name of the directory in the user's config directory.
const configResourcePath = "learnopengl"

// ResourcePath returns the path to the file in the sub-path of the resource
// directory. The sub-path directories are created if necessary. Both subPth
// and file can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, subPth)
	if _, err := os.Stat(pth); err != nil {
		if err := os.MkdirAll(pth, 0o700); err != nil {
			return "", err
		}
	}

	return filepath.Join(pth, file), nil
}

// getBasePath returns localResourcePath if it exists in the current
// directory, otherwise configResourcePath in the user's config directory.
func getBasePath() (string, error) {
	if info, err := os.Stat(localResourcePath); err == nil && info.IsDir() {
		return localResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configResourcePath), nil
}
