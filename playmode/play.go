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

package playmode

import (
	"context"
	"os"

	"github.com/dmgpad/dmgpad/curated"
	"github.com/dmgpad/dmgpad/environment"
	"github.com/dmgpad/dmgpad/hardware"
	"github.com/dmgpad/dmgpad/joypad"
	"github.com/dmgpad/dmgpad/logger"
	"github.com/dmgpad/dmgpad/recorder"
	"github.com/dmgpad/dmgpad/userinput"
)

// Options for a play session.
type Options struct {
	// stop after this many frames. zero means no limit
	Frames int

	// path of a transcript to record. empty means no recording
	Record string

	// path of a transcript to play back. empty means no playback. Record and
	// Playback can not both be set
	Playback string
}

// Sentinal error returned by Session.Run() when the frame loop is ended by
// the verification of a playback transcript.
const PlayError = "playmode: %v"

// Session is a single run of the frame loop.
type Session struct {
	env  *environment.Environment
	gui  GUI
	opts Options

	port    *hardware.Port
	ctrls   *userinput.Controllers
	sampler *joypad.Sampler

	rec *recorder.Recorder
	plb *recorder.Playback

	lim    *limiter
	fpsCap bool

	// controller state at the previous frame. used to log transitions
	lastPads [joypad.MaxPads]joypad.ButtonMask
	lastDir  joypad.ButtonMask
}

// NewSession is the preferred method of initialisation for the Session type.
// The controller strategy is chosen by the environment's preferences unless a
// transcript is being played back, in which case the transcript decides.
func NewSession(env *environment.Environment, gui GUI, opts Options) (*Session, error) {
	if opts.Record != "" && opts.Playback != "" {
		return nil, curated.Errorf(PlayError, "cannot record and play back at the same time")
	}

	s := &Session{
		env:    env,
		gui:    gui,
		opts:   opts,
		ctrls:  userinput.NewControllers(env.Prefs.KeyBindings()),
		lim:    newLimiter(FrameRate),
		fpsCap: env.Prefs.FPSCap.Get().(bool),
	}

	mode := env.Prefs.Mode()

	var ctrl joypad.Controller

	if opts.Playback != "" {
		f, err := os.Open(opts.Playback)
		if err != nil {
			return nil, curated.Errorf(PlayError, err)
		}
		defer f.Close()

		s.plb, err = recorder.NewPlayback(f)
		if err != nil {
			return nil, curated.Errorf(PlayError, err)
		}
		mode = s.plb.Mode
		ctrl = s.plb.Controller()

		// the port isn't read during playback but it's still the target of
		// user input
		s.port = hardware.NewPort(mode == joypad.ModeMulti)

		logger.Logf(logger.Allow, "playmode", "playing back %s", s.plb.Session)
	} else {
		// multiplayer needs the SGB extension to the port
		s.port = hardware.NewPort(mode == joypad.ModeMulti)

		switch mode {
		case joypad.ModeMulti:
			ctrl = joypad.NewMulti(hardware.NewMultiReader(s.port), env.Prefs.MaxPads.Get().(int))
		default:
			ctrl = joypad.NewSingle(hardware.NewReader(s.port))
		}
	}

	s.sampler = joypad.NewSampler(ctrl)

	if mode == joypad.ModeMulti && s.plb == nil {
		logger.Logf(logger.Allow, "playmode", "SGB multiplayer with %d players", s.port.Players())
	}

	logger.Logf(logger.Allow, "playmode", "%s mode with %d controller(s)", mode, s.sampler.NumPads())

	if opts.Record != "" {
		f, err := os.Create(opts.Record)
		if err != nil {
			return nil, curated.Errorf(PlayError, err)
		}
		s.rec, err = recorder.NewRecorder(f, mode, s.sampler.NumPads())
		if err != nil {
			return nil, curated.Errorf(PlayError, err)
		}
		logger.Logf(logger.Allow, "playmode", "recording session %s to %s", s.rec.Session(), opts.Record)
	}

	return s, nil
}

// Sampler returns the session's joypad.Sampler.
func (s *Session) Sampler() *joypad.Sampler {
	return s.sampler
}

// Port returns the emulated joypad port.
func (s *Session) Port() *hardware.Port {
	return s.port
}

// service the GUI and apply user input to the port. returns true if the user
// has asked to quit.
func (s *Session) service() (bool, error) {
	events, err := s.gui.Service()
	if err != nil {
		return false, curated.Errorf(PlayError, err)
	}

	for _, ev := range events {
		// the gui can't report key releases while it doesn't have focus so
		// nothing can be considered held
		if _, ok := ev.(userinput.EventFocusLost); ok {
			s.port.ReleaseAll()
			logger.Log(logger.Allow, "playmode", "focus lost. all buttons released")
			continue // for loop
		}

		_, err := s.ctrls.HandleUserInput(ev, s.port)
		if err != nil {
			// bindings to a controller that the port doesn't have are not
			// fatal
			if curated.Is(err, hardware.UnknownController) {
				logger.Log(logger.Allow, "playmode", err)
				continue // for loop
			}
			return false, curated.Errorf(PlayError, err)
		}
		if s.ctrls.Quit {
			return true, nil
		}
		if !s.ctrls.LastKeyHandled {
			s.hotkey(ev)
		}
	}

	return false, nil
}

// Run the frame loop until the user quits, the context is cancelled, the
// frame limit is reached or the playback transcript ends.
func (s *Session) Run(ctx context.Context) (rerr error) {
	defer s.lim.stop()

	if s.rec != nil {
		defer func() {
			if err := s.rec.End(); err != nil && rerr == nil {
				rerr = curated.Errorf(PlayError, err)
			}
		}()
	}

	for {
		if s.opts.Frames > 0 && s.sampler.Frame() >= s.opts.Frames {
			logger.Logf(logger.Allow, "playmode", "frame limit reached (%d)", s.opts.Frames)
			return nil
		}

		select {
		case <-ctx.Done():
			logger.Log(logger.Allow, "playmode", "interrupted")
			return nil
		default:
		}

		quit, err := s.service()
		if err != nil {
			return err
		}
		if quit {
			logger.Log(logger.Allow, "playmode", "quit")
			return nil
		}

		s.sampler.Tick()

		if s.plb != nil {
			if s.plb.EndFrame() {
				logger.Logf(logger.Allow, "playmode", "playback finished after %d frames", s.sampler.Frame()-1)
				return nil
			}
			if err := s.plb.Verify(s.sampler); err != nil {
				return curated.Errorf(PlayError, err)
			}
		}

		if s.rec != nil {
			if err := s.rec.RecordFrame(s.sampler); err != nil {
				return curated.Errorf(PlayError, err)
			}
		}

		s.logTransitions()

		if err := s.gui.Render(s.sampler); err != nil {
			return curated.Errorf(PlayError, err)
		}

		if s.fpsCap && !s.lim.wait(ctx) {
			logger.Log(logger.Allow, "playmode", "interrupted")
			return nil
		}
	}
}

// Play creates a new Session and runs it. The GUI is not destroyed.
func Play(ctx context.Context, env *environment.Environment, gui GUI, opts Options) error {
	s, err := NewSession(env, gui, opts)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}
