package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/walden/internal/game"
)

// maxFrameDelta caps a frame so a stalled window does not teleport the
// player.
const maxFrameDelta = 0.25

const maxGamepads = 4

// padSource is the slice of raylib the input provider reads.
type padSource interface {
	GamepadAvailable(pad int32) bool
	GamepadButtonDown(pad, button int32) bool
	KeyDown(key int32) bool
	FrameTime() float32
}

type raylibSource struct{}

func (raylibSource) GamepadAvailable(pad int32) bool { return rl.IsGamepadAvailable(pad) }
func (raylibSource) GamepadButtonDown(pad, button int32) bool {
	return rl.IsGamepadButtonDown(pad, button)
}
func (raylibSource) KeyDown(key int32) bool { return rl.IsKeyDown(key) }
func (raylibSource) FrameTime() float32     { return rl.GetFrameTime() }

var (
	padDirections = [...]struct {
		button int32
		dir    game.Direction
	}{
		{rl.GamepadButtonLeftFaceUp, game.Up},
		{rl.GamepadButtonLeftFaceDown, game.Down},
		{rl.GamepadButtonLeftFaceLeft, game.Left},
		{rl.GamepadButtonLeftFaceRight, game.Right},
	}
	keyDirections = [...]struct {
		keys [2]int32
		dir  game.Direction
	}{
		{[2]int32{rl.KeyUp, rl.KeyW}, game.Up},
		{[2]int32{rl.KeyDown, rl.KeyS}, game.Down},
		{[2]int32{rl.KeyLeft, rl.KeyA}, game.Left},
		{[2]int32{rl.KeyRight, rl.KeyD}, game.Right},
	}
	keysA = [...]int32{rl.KeyZ, rl.KeySpace, rl.KeyEnter}
	keysB = [...]int32{rl.KeyX, rl.KeyBackspace}
)

// padInput samples every connected game pad plus the keyboard. The
// keyboard is folded into the first pad, or stands in for it when none is
// connected.
type padInput struct {
	src        padSource
	fixedDelta float32
}

func newPadInput(src padSource, fixedDelta float32) padInput {
	return padInput{src: src, fixedDelta: fixedDelta}
}

func (in padInput) Poll() game.InputSnapshot {
	delta := in.fixedDelta
	if delta <= 0 {
		delta = min(max(in.src.FrameTime(), 0), maxFrameDelta)
	}

	var pads []game.Controller
	for pad := int32(0); pad < maxGamepads; pad++ {
		if in.src.GamepadAvailable(pad) {
			pads = append(pads, in.readGamepad(pad))
		}
	}
	kb := in.readKeyboard()
	if len(pads) == 0 {
		pads = append(pads, kb)
	} else {
		pads[0] = merge(pads[0], kb)
	}
	return game.InputSnapshot{Delta: delta, Controllers: pads}
}

func (in padInput) readGamepad(pad int32) game.Controller {
	c := game.Controller{
		A: in.src.GamepadButtonDown(pad, rl.GamepadButtonRightFaceDown),
		B: in.src.GamepadButtonDown(pad, rl.GamepadButtonRightFaceRight),
	}
	for _, d := range padDirections {
		if in.src.GamepadButtonDown(pad, d.button) {
			c.DPad = d.dir
			break
		}
	}
	return c
}

func (in padInput) readKeyboard() game.Controller {
	var c game.Controller
	c.A = in.anyKey(keysA[:])
	c.B = in.anyKey(keysB[:])
	for _, d := range keyDirections {
		if in.anyKey(d.keys[:]) {
			c.DPad = d.dir
			break
		}
	}
	return c
}

func (in padInput) anyKey(keys []int32) bool {
	for _, k := range keys {
		if in.src.KeyDown(k) {
			return true
		}
	}
	return false
}

func merge(pad, kb game.Controller) game.Controller {
	pad.A = pad.A || kb.A
	pad.B = pad.B || kb.B
	if pad.DPad == game.NoDirection {
		pad.DPad = kb.DPad
	}
	return pad
}
