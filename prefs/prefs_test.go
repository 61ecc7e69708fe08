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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmgpad/dmgpad/curated"
	"github.com/dmgpad/dmgpad/prefs"
	"github.com/dmgpad/dmgpad/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "dmgpad_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	err = v.Set(10)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some
	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get(), prefs.Value(10))
}

func TestGeneric(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1
	h = 2

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "generic :: 1,2\n")

	// reset values and reload them from disk
	w = 0
	h = 0
	test.DemandSuccess(t, dsk.Load(false))

	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length (using value zero) will not result in
	// cropped string infomration reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(3))
	test.ExpectEquality(t, post, 3)

	// pre hook prevents the update
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get(), prefs.Value(3))
	test.ExpectEquality(t, post, 3)
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	// file contains a defunct entry and an entry for another disk instance
	content := fmt.Sprintf("%s\njoypad.sgb :: true\njoypad.mode :: multi\nother :: 1\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var mode prefs.String
	var pads prefs.Int
	test.ExpectSuccess(t, dsk.Add("joypad.mode", &mode))
	test.ExpectSuccess(t, dsk.Add("joypad.pads", &pads))
	test.ExpectSuccess(t, pads.Set(4))

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, mode.String(), "multi")

	// value not in file is unchanged
	test.ExpectEquality(t, pads.String(), "4")

	// defunct entries are dropped on save
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "joypad.mode :: multi\njoypad.pads :: 4\nother :: 1\n")

	// reset returns values to the zero value
	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, mode.String(), "")
	test.ExpectEquality(t, pads.String(), "0")
}

func TestLoadSaveOnFail(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("fpscap", &v))
	test.ExpectSuccess(t, v.Set(true))

	test.DemandSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "fpscap :: true\n")
}

func TestLoadCommandLine(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("joypad.pads", &v))
	test.ExpectSuccess(t, v.Set(2))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("joypad.pads::4; unused::true")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get(), prefs.Value(4))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::true")

	// command line value only applies to the one load
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get(), prefs.Value(2))
}

func TestBadKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, curated.Is(dsk.Add("", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a key", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a::key", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, dsk.Add("key", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Add("key", &v), prefs.DuplicateKey))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}
