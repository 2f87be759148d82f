package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	engineinput "crazymaze/pkg/engine/input"
)

// keyCode pairs an Ebiten key with the raw code the bindings know it by
type keyCode struct {
	key  ebiten.Key
	code string
}

// moveKeys are sampled while held, in priority order Up, Down, Left, Right
var moveKeys = []keyCode{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyL, "l"},
}

// commandKeys fire once per press
var commandKeys = []keyCode{
	{ebiten.KeyN, "n"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyF9, "f9"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

type buttonCode struct {
	button ebiten.StandardGamepadButton
	code   string
}

var gamepadMoves = []buttonCode{
	{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up"},
	{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down"},
	{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left"},
	{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right"},
}

var gamepadCommands = []buttonCode{
	{ebiten.StandardGamepadButtonCenterRight, "gamepad_start"},
	{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
	{ebiten.StandardGamepadButtonRightRight, "gamepad_b"},
}

// Update handles input and advances the game by one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.WithFields(log.Fields{"width": w, "height": h, "tps": ebiten.TPS()}).Info("main window opened")
	}

	for _, raw := range e.collectInput() {
		e.runner.Apply(engineinput.Resolve(raw))
		if e.runner.Quitting() {
			return ebiten.Termination
		}
	}

	e.runner.Step()
	e.Render(e.runner.Snapshot())

	dt := float32(1) / float32(ebiten.TPS())
	e.snapshotMutex.Lock()
	e.playerSlide.update(dt)
	e.enemySlide.update(dt)
	e.snapshotMutex.Unlock()
	return nil
}

// collectInput returns this tick's raw events: every newly pressed command
// and at most one held direction.
func (e *EbitenRenderer) collectInput() []engineinput.RawInput {
	var events []engineinput.RawInput

	for _, k := range commandKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			events = append(events, engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: k.code})
		}
	}

	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids)
	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range gamepadCommands {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				events = append(events, engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: b.code})
			}
		}
	}

	if move, ok := e.heldMove(ids); ok {
		events = append(events, move)
	}
	return events
}

func (e *EbitenRenderer) heldMove(ids []ebiten.GamepadID) (engineinput.RawInput, bool) {
	for _, k := range moveKeys {
		if ebiten.IsKeyPressed(k.key) {
			return engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: k.code}, true
		}
	}
	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range gamepadMoves {
			if ebiten.IsStandardGamepadButtonPressed(id, b.button) {
				return engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: b.code}, true
			}
		}
	}
	return engineinput.RawInput{}, false
}
