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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dmgpad/dmgpad/curated"
	"github.com/dmgpad/dmgpad/logger"
	"github.com/panjf2000/ants/v2"
)

// file extensions recognised by CheckDir(). PNG files are background images.
var extensions = []string{".json", ".yaml", ".yml", ".png"}

func isBackgroundFile(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == ".png"
}

func isSceneFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

type checkResult struct {
	name   string
	issues []Issue
	err    error
}

func (r checkResult) write(out io.Writer) {
	switch {
	case r.err != nil:
		// yaml errors can span several lines
		fmt.Fprintf(out, "ERROR %s: %s\n", r.name, strings.Join(strings.Fields(r.err.Error()), " "))
	case len(r.issues) > 0:
		fmt.Fprintf(out, "WARNING %s:\n", r.name)
		for _, is := range r.issues {
			fmt.Fprintf(out, "    %s\n", is)
		}
	default:
		fmt.Fprintf(out, "OK %s: all limits OK\n", r.name)
	}
}

func checkFile(path string) ([]Issue, error) {
	if isBackgroundFile(path) {
		f, err := os.Open(path)
		if err != nil {
			return nil, curated.Errorf("scene: %v", err)
		}
		defer f.Close()
		return CheckBackground(f)
	}

	s, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Check(s), nil
}

// CheckDir loads and checks every scene file and background image in the
// directory. Files are checked concurrently with the number of workers
// specified. Results are written to out in filename order.
//
// Returns the number of files that failed to load or that exceed a limit.
func CheckDir(dir string, workers int, out io.Writer) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, curated.Errorf("scene: %v", err)
	}

	// os.ReadDir() returns entries sorted by filename
	var names []string
	for _, e := range entries {
		if !e.IsDir() && isSceneFile(e.Name()) {
			names = append(names, e.Name())
		}
	}

	if len(names) == 0 {
		return 0, nil
	}

	pool, err := ants.NewPool(max(workers, 1), ants.WithPanicHandler(func(p any) {
		logger.Logf(logger.Allow, "scene", "panic during check: %v", p)
	}))
	if err != nil {
		return 0, curated.Errorf("scene: %v", err)
	}
	defer pool.Release()

	results := make([]checkResult, len(names))
	var wg sync.WaitGroup

	for i, n := range names {
		results[i].name = n
		results[i].err = curated.Errorf("scene: check did not complete")

		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			results[i].issues, results[i].err = checkFile(filepath.Join(dir, n))
		})
		if err != nil {
			wg.Done()
			results[i].err = curated.Errorf("scene: %v", err)
		}
	}

	wg.Wait()

	var count int
	for _, r := range results {
		r.write(out)
		if r.err != nil || len(r.issues) > 0 {
			count++
		}
	}

	logger.Logf(logger.Allow, "scene", "checked %d files in %s, %d with problems", len(names), dir, count)

	return count, nil
}
