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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/dmgpad/dmgpad/environment"
	"github.com/dmgpad/dmgpad/gui/sdlgui"
	"github.com/dmgpad/dmgpad/gui/termgui"
	"github.com/dmgpad/dmgpad/joypad"
	"github.com/dmgpad/dmgpad/logger"
	"github.com/dmgpad/dmgpad/modalflag"
	"github.com/dmgpad/dmgpad/paths"
	"github.com/dmgpad/dmgpad/playmode"
	"github.com/dmgpad/dmgpad/prefs"
	"github.com/dmgpad/dmgpad/scene"
	"github.com/dmgpad/dmgpad/statsview"
	"github.com/dmgpad/dmgpad/version"
	"github.com/joho/godotenv"
)

// exit values.
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// the .env file is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("* error: %v\n", err)
	}

	// the frame loop ends cleanly on ctrl-c so that transcripts are closed
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:])
	stop()

	os.Exit(exitVal)
}

func launch(ctx context.Context, args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "PLAY", "SCENE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, false)

	case "TERM":
		err = run(ctx, md, true)

	case "PLAY":
		err = play(ctx, md)

	case "SCENE":
		err = checkScenes(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// modeFlag is a flag.Value for the joypad.Mode type.
type modeFlag struct {
	mode joypad.Mode
}

func (f *modeFlag) String() string {
	return string(f.mode)
}

func (f *modeFlag) Set(s string) error {
	m, err := joypad.ParseMode(s)
	if err != nil {
		return err
	}
	f.mode = m
	return nil
}

var _ flag.Value = (*modeFlag)(nil)

// flags shared by the modes that run the frame loop.
type sessionFlags struct {
	mode      modeFlag
	pads      *int
	fpsCap    *bool
	frames    *int
	log       *bool
	prefs     *string
	statsview *bool
	memviz    *string
}

func addSessionFlags(md *modalflag.Modes) *sessionFlags {
	f := &sessionFlags{mode: modeFlag{mode: joypad.ModeSingle}}
	md.AddVar(&f.mode, "mode", "controller mode: single, multi")
	f.pads = md.AddInt("pads", joypad.MaxPads, "maximum number of controllers in multi mode")
	f.fpsCap = md.AddBool("fpscap", true, "cap frame rate to the Game Boy refresh rate")
	f.frames = md.AddInt("frames", 0, "stop after number of frames (0 for no limit)")
	f.log = md.AddBool("log", false, "echo log to stdout")
	f.prefs = md.AddString("prefs", "", "preferences for this session only (key::value; ...)")
	f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	f.memviz = md.AddString("memviz", "", "write a graphviz dump of the sampler to file on exit")
	return f
}

// environment creates the main environment and applies the flags that were
// given on the command line. flags that were not given do not override the
// preferences file. a normalised environment ignores the preferences file.
func (f *sessionFlags) environment(md *modalflag.Modes, normalise bool) (*environment.Environment, error) {
	if *f.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, err
	}

	if normalise {
		env.Normalise()
	} else {
		prefs.PushCommandLineStack(*f.prefs)
		err := env.Prefs.Load()
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "dmgpad", "unused command line prefs: %s", unused)
		}
		if err != nil {
			return nil, err
		}
	}

	var ferr error
	md.Visit(func(name string) {
		if ferr != nil {
			return
		}
		switch name {
		case "mode":
			ferr = env.Prefs.JoypadMode.Set(string(f.mode.mode))
		case "pads":
			ferr = env.Prefs.MaxPads.Set(*f.pads)
		case "fpscap":
			ferr = env.Prefs.FPSCap.Set(*f.fpsCap)
		}
	})
	if ferr != nil {
		return nil, ferr
	}

	return env, nil
}

// session runs the frame loop with the diagnostics requested by the flags.
func (f *sessionFlags) session(ctx context.Context, env *environment.Environment, gui playmode.GUI, opts playmode.Options) error {
	opts.Frames = *f.frames

	s, err := playmode.NewSession(env, gui, opts)
	if err != nil {
		return err
	}

	if *f.statsview {
		stop := statsview.Launch(os.Stdout, "")
		defer stop()
	}

	err = s.Run(ctx)

	if *f.memviz != "" {
		mv, ferr := os.Create(*f.memviz)
		if ferr != nil {
			return errors.Join(err, ferr)
		}
		memviz.Map(mv, s.Sampler())
		if ferr := mv.Close(); ferr != nil {
			return errors.Join(err, ferr)
		}
		fmt.Printf("! sampler written to %s\n", *f.memviz)
	}

	return err
}

func run(ctx context.Context, md *modalflag.Modes, term bool) error {
	md.NewMode()

	f := addSessionFlags(md)
	record := md.AddBool("record", false, "record user input to a transcript")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	env, err := f.environment(md, false)
	if err != nil {
		return err
	}

	var opts playmode.Options
	if *record {
		opts.Record = paths.UniqueFilename("transcript", string(env.Prefs.Mode()))
	}

	var gui playmode.GUI
	if term {
		gui, err = termgui.NewTermGUI(os.Stdin, os.Stdout, env.Prefs.HoldFrames.Get().(int))
	} else {
		gui, err = sdlgui.NewSdlGUI(version.ApplicationName)
	}
	if err != nil {
		return err
	}

	err = f.session(ctx, env, gui, opts)
	gui.Destroy()
	if err != nil {
		return err
	}

	if opts.Record != "" {
		fmt.Printf("! recording completed (%s)\n", opts.Record)
	}

	return nil
}

func play(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Plays back a transcript without a window and verifies the input\nstate of every frame against the recording.")

	f := addSessionFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("transcript required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// playback always starts from the default preferences and runs as
	// quickly as possible unless the -fpscap flag says otherwise
	env, err := f.environment(md, true)
	if err != nil {
		return err
	}

	err = f.session(ctx, env, &headless{}, playmode.Options{Playback: md.GetArg(0)})
	if err != nil {
		return err
	}

	fmt.Printf("! playback of %s verified\n", md.GetArg(0))

	return nil
}

func checkScenes(md *modalflag.Modes) error {
	md.NewMode()

	workers := md.AddInt("workers", 4, "number of files checked concurrently")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("scene directory required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	n, err := scene.CheckDir(md.GetArg(0), *workers, os.Stdout)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%d file(s) with problems", n)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		_, r, _ := version.Version()
		fmt.Println(strings.TrimSpace(r))
	} else {
		fmt.Println(version.Banner())
	}

	return nil
}
