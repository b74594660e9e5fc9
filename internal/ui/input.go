package ui

import (
	"github.com/appengine-ltd/walden/internal/game"
)

// Terminals only report key presses and auto-repeats, never releases. A
// key counts as held until its latch runs out without a repeat. The A
// latch stays under the selector's deciding timeout so a single tap uses
// the active item instead of opening the wheel.
const (
	buttonLatch = 0.4
	dpadLatch   = 0.6
)

type latch struct {
	until float32
}

func (l *latch) press(now, window float32) {
	l.until = now + window
}

func (l latch) held(now float32) bool {
	return now < l.until
}

// keyInput turns key events into a synthetic game pad on a clock measured
// in seconds since the client started.
type keyInput struct {
	now  float32
	a, b latch
	dpad latch
	dir  game.Direction
}

// press reports whether key was one of the pad keys.
func (k *keyInput) press(key string) bool {
	switch key {
	case "z", " ", "space", "enter":
		k.a.press(k.now, buttonLatch)
	case "x", "backspace":
		k.b.press(k.now, buttonLatch)
	default:
		d, ok := keyDirection(key)
		if !ok {
			return false
		}
		k.dir = d
		k.dpad.press(k.now, dpadLatch)
	}
	return true
}

func (k *keyInput) advance(delta float32) {
	k.now += delta
}

func (k *keyInput) controller() game.Controller {
	c := game.Controller{A: k.a.held(k.now), B: k.b.held(k.now)}
	if k.dpad.held(k.now) {
		c.DPad = k.dir
	}
	return c
}

func keyDirection(key string) (game.Direction, bool) {
	switch key {
	case "up", "w", "k":
		return game.Up, true
	case "down", "s", "j":
		return game.Down, true
	case "left", "a", "h":
		return game.Left, true
	case "right", "d", "l":
		return game.Right, true
	}
	return game.NoDirection, false
}
