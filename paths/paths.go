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

package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".dmgpad"

// EnvConfig is the environment variable that overrides the base resource path.
const EnvConfig = "DMGPAD_CONFIG"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

// getBasePath() returns the value of EnvConfig if it is set. otherwise it
// returns baseResourcePath with the user's config directory prepended if the
// unadorned baseResourcePath cannot be found in the current directory.
//
// note that we're not checking for the existence of the resource requested by
// the caller, or even the existence of the base path.
func getBasePath() string {
	if p, ok := os.LookupEnv(EnvConfig); ok && p != "" {
		return p
	}

	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cnf, baseResourcePath[1:])
}

// MkResourceDir creates the base resource directory if it does not already
// exist and returns the base path.
func MkResourceDir() (string, error) {
	pth := getBasePath()
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}
	return pth, nil
}
