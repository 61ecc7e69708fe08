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

package sdlgui

import (
	"fmt"
	"runtime"

	"github.com/dmgpad/dmgpad/joypad"
	"github.com/dmgpad/dmgpad/logger"
	"github.com/dmgpad/dmgpad/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	runtime.LockOSThread()
}

// size of each button box and the gap between them.
const (
	boxSize   = 24
	boxMargin = 6
)

// buttons in the order they are drawn.
var drawOrder = []joypad.ButtonMask{
	joypad.Left, joypad.Up, joypad.Down, joypad.Right,
	joypad.Select, joypad.Start, joypad.B, joypad.A,
}

type closer interface {
	Close()
}

// SdlGUI is the windowed frontend. It implements the playmode.GUI interface.
type SdlGUI struct {
	window  *sdl.Window
	surface *sdl.Surface

	// controller devices and the pad number assigned to each instance ID
	devices []closer
	pads    map[sdl.JoystickID]int

	colBackground uint32
	colReleased   uint32
	colHeld       uint32
	colPressed    uint32
	colLatched    uint32
}

// NewSdlGUI is the preferred method of initialisation for the SdlGUI type. The
// window is sized for the maximum number of controllers.
func NewSdlGUI(title string) (*SdlGUI, error) {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	w := int32(len(drawOrder)*(boxSize+boxMargin) + boxMargin)
	h := int32(joypad.MaxPads*(boxSize+boxMargin) + boxMargin)

	gui := &SdlGUI{
		pads: make(map[sdl.JoystickID]int),
	}

	gui.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w*2, h*2, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	gui.surface, err = gui.window.GetSurface()
	if err != nil {
		gui.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	gui.colBackground = sdl.MapRGB(gui.surface.Format, 0x20, 0x20, 0x20)
	gui.colReleased = sdl.MapRGB(gui.surface.Format, 0x50, 0x50, 0x50)
	gui.colHeld = sdl.MapRGB(gui.surface.Format, 0x30, 0xc0, 0x30)
	gui.colPressed = sdl.MapRGB(gui.surface.Format, 0xf0, 0xf0, 0x60)
	gui.colLatched = sdl.MapRGB(gui.surface.Format, 0x30, 0x60, 0x90)

	gui.openDevices()

	return gui, nil
}

// openDevices adds attached gamepads and joysticks. a device that SDL knows
// to be a gamepad is opened as such, otherwise it is opened as a plain
// joystick.
func (gui *SdlGUI) openDevices() {
	for i := range sdl.NumJoysticks() {
		if len(gui.devices) >= joypad.MaxPads {
			logger.Log(logger.Allow, "sdl", "too many controllers. ignoring the rest")
			break // for loop
		}

		if sdl.IsGameController(i) {
			pad := sdl.GameControllerOpen(i)
			if pad != nil && pad.Attached() {
				logger.Logf(logger.Allow, "sdl", "gamepad %d: %s", len(gui.devices), pad.Name())
				gui.pads[pad.Joystick().InstanceID()] = len(gui.devices)
				gui.devices = append(gui.devices, pad)
				continue // for loop
			}
		}

		joy := sdl.JoystickOpen(i)
		if joy != nil && joy.Attached() {
			logger.Logf(logger.Allow, "sdl", "joystick %d: %s", len(gui.devices), joy.Name())
			gui.pads[joy.InstanceID()] = len(gui.devices)
			gui.devices = append(gui.devices, joy)
		}
	}

	if len(gui.devices) == 0 {
		logger.Log(logger.Allow, "sdl", "no joysticks/gamepads found")
	}
}

// Destroy implements the playmode.GUI interface.
func (gui *SdlGUI) Destroy() {
	for _, d := range gui.devices {
		d.Close()
	}
	gui.devices = nil
	if gui.window != nil {
		_ = gui.window.Destroy()
		gui.window = nil
	}
	sdl.Quit()
}

func keyMod(mod uint16) userinput.KeyMod {
	m := int(mod)
	switch {
	case m&int(sdl.KMOD_SHIFT) != 0:
		return userinput.KeyModShift
	case m&int(sdl.KMOD_CTRL) != 0:
		return userinput.KeyModCtrl
	case m&int(sdl.KMOD_ALT) != 0:
		return userinput.KeyModAlt
	}
	return userinput.KeyModNone
}

func joyButton(b uint8) userinput.GamepadButton {
	switch b {
	case 0:
		return userinput.GamepadButtonA
	case 1:
		return userinput.GamepadButtonB
	case 2:
		return userinput.GamepadButtonX
	case 3:
		return userinput.GamepadButtonY
	case 6:
		return userinput.GamepadButtonBack
	case 7:
		return userinput.GamepadButtonStart
	case 8:
		return userinput.GamepadButtonGuide
	}
	return userinput.GamepadButtonNone
}

func hatDirection(v uint8) (userinput.DPadDirection, bool) {
	switch v {
	case sdl.HAT_CENTERED:
		return userinput.DPadCentre, true
	case sdl.HAT_UP:
		return userinput.DPadUp, true
	case sdl.HAT_DOWN:
		return userinput.DPadDown, true
	case sdl.HAT_LEFT:
		return userinput.DPadLeft, true
	case sdl.HAT_RIGHT:
		return userinput.DPadRight, true
	case sdl.HAT_LEFTUP:
		return userinput.DPadLeftUp, true
	case sdl.HAT_LEFTDOWN:
		return userinput.DPadLeftDown, true
	case sdl.HAT_RIGHTUP:
		return userinput.DPadRightUp, true
	case sdl.HAT_RIGHTDOWN:
		return userinput.DPadRightDown, true
	}
	return userinput.DPadCentre, false
}

// Service implements the playmode.GUI interface. All pending SDL events are
// consumed without blocking.
func (gui *SdlGUI) Service() ([]userinput.Event, error) {
	var events []userinput.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			events = append(events, userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat > 0,
				Mod:    keyMod(ev.Keysym.Mod),
			})

		case *sdl.JoyButtonEvent:
			pad, ok := gui.pads[ev.Which]
			if !ok {
				continue // for loop
			}
			button := joyButton(ev.Button)
			if button != userinput.GamepadButtonNone {
				events = append(events, userinput.EventGamepadButton{
					ID:     pad,
					Button: button,
					Down:   ev.State == sdl.PRESSED,
				})
			}

		case *sdl.JoyHatEvent:
			pad, ok := gui.pads[ev.Which]
			if !ok {
				continue // for loop
			}
			if dir, ok := hatDirection(ev.Value); ok {
				events = append(events, userinput.EventGamepadDPad{
					ID:        pad,
					Direction: dir,
				})
			}

		case *sdl.JoyDeviceRemovedEvent:
			if pad, ok := gui.pads[ev.Which]; ok {
				logger.Logf(logger.Allow, "sdl", "controller %d removed", pad)
				delete(gui.pads, ev.Which)
				events = append(events, userinput.EventGamepadRemoved{ID: pad})
			}

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_FOCUS_LOST {
				events = append(events, userinput.EventFocusLost{})
			}
		}
	}

	return events, nil
}

type boxState int

const (
	boxReleased boxState = iota
	boxHeld
	boxPressed
	boxLatched
)

// boxStateOf decides how the box for button b on the given pad is drawn.
// Pressed and latched states are only shown for the first pad because the
// sampler state describes that pad alone. A direction is latched when it is
// the most recent direction but is no longer held.
func boxStateOf(pad int, b joypad.ButtonMask, held joypad.ButtonMask, st joypad.State) boxState {
	if held&b != 0 {
		if pad == 0 && st.Pressed&b != 0 {
			return boxPressed
		}
		return boxHeld
	}
	if pad == 0 && b&joypad.DirectionalMask != 0 && st.RecentDirectional&b != 0 {
		return boxLatched
	}
	return boxReleased
}

// Render implements the playmode.GUI interface.
func (gui *SdlGUI) Render(s *joypad.Sampler) error {
	err := gui.surface.FillRect(nil, gui.colBackground)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	st := s.State()

	for p := range s.NumPads() {
		held := s.Pad(p)

		for i, b := range drawOrder {
			var col uint32
			switch boxStateOf(p, b, held, st) {
			case boxHeld:
				col = gui.colHeld
			case boxPressed:
				col = gui.colPressed
			case boxLatched:
				col = gui.colLatched
			default:
				col = gui.colReleased
			}

			rect := &sdl.Rect{
				X: int32(boxMargin + i*(boxSize+boxMargin)),
				Y: int32(boxMargin + p*(boxSize+boxMargin)),
				W: boxSize,
				H: boxSize,
			}

			// the window was created at twice the natural size
			rect.X *= 2
			rect.Y *= 2
			rect.W *= 2
			rect.H *= 2

			if err := gui.surface.FillRect(rect, col); err != nil {
				return fmt.Errorf("sdl: %w", err)
			}
		}
	}

	if err := gui.window.UpdateSurface(); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	return nil
}
