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
	"errors"
	"io"
	"os"

	"github.com/dmgpad/dmgpad/curated"
	"gopkg.in/yaml.v3"
)

// Load a scene from a JSON or YAML source.
func Load(r io.Reader) (*Scene, error) {
	var s Scene

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, curated.Errorf("scene: empty scene file")
		}
		return nil, curated.Errorf("scene: %v", err)
	}

	return &s, nil
}

// LoadFile loads a scene from the named file. The scene name is set to the
// filename if the file does not specify one.
func LoadFile(filename string) (*Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("scene: %v", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, err
	}

	if s.Name == "" {
		s.Name = filename
	}

	return s, nil
}
