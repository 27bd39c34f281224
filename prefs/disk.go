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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/learnopengl/curated"
)

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand. it is maintained by LearnOpenGL ***"

// the separator between key and value in the prefs file.
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf("prefs: %v", "no path for prefs file")
	}

	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the prefs file.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) || strings.ContainsAny(key, "\n\r") {
		return curated.Errorf("prefs: %v", fmt.Sprintf("illegal key: %q", key))
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: %v", fmt.Sprintf("duplicate key: %s", key))
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their reset value. Values on disk are not
// affected until the next Save().
func (dsk *Disk) Reset() error {
	for k, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return curated.Errorf("prefs: %v", fmt.Errorf("%s: %w", k, err))
		}
	}
	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// read the prefs file into a map of raw strings. a missing file is not an
// error and results in an empty map.
func (dsk *Disk) read() (map[string]string, error) {
	raw := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return raw, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the boilerplate warning
	if !scanner.Scan() {
		return raw, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf("prefs: %v", fmt.Sprintf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if !ok {
			continue
		}
		raw[k] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return raw, nil
}

// Save current preference values to disk. Entries already in the file that
// this Disk instance does not know about are kept.
func (dsk *Disk) Save() error {
	raw, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range dsk.entries {
		raw[k] = v.String()
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, raw[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. If saveOnFirstUse is true and the prefs
// file does not exist then the current values are saved to disk.
//
// Keys in the file that have not been added to the Disk instance are ignored.
// Values in the file that cannot be converted to the preference type result
// in an error but all other values are still loaded.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	if _, err := os.Stat(dsk.path); errors.Is(err, fs.ErrNotExist) {
		if saveOnFirstUse {
			return dsk.Save()
		}
		return nil
	}

	raw, err := dsk.read()
	if err != nil {
		return err
	}

	var loadErr error
	for _, k := range dsk.keys() {
		v, ok := raw[k]
		if !ok {
			continue
		}
		if err := dsk.entries[k].Set(v); err != nil && loadErr == nil {
			loadErr = curated.Errorf("prefs: %v", fmt.Errorf("%s: %w", k, err))
		}
	}

	return loadErr
}
