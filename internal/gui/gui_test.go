package gui

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/walden/internal/game"
	"github.com/appengine-ltd/walden/internal/scene"
)

type fakeSource struct {
	pads    map[int32]map[int32]bool
	keys    map[int32]bool
	frameDT float32
}

func (f fakeSource) GamepadAvailable(pad int32) bool { _, ok := f.pads[pad]; return ok }
func (f fakeSource) GamepadButtonDown(pad, button int32) bool {
	return f.pads[pad][button]
}
func (f fakeSource) KeyDown(key int32) bool { return f.keys[key] }
func (f fakeSource) FrameTime() float32     { return f.frameDT }

func TestPollKeyboardStandsInForMissingPad(t *testing.T) {
	in := newPadInput(fakeSource{
		keys:    map[int32]bool{rl.KeyZ: true, rl.KeyA: true},
		frameDT: 1.0 / 60,
	}, 0)
	snap := in.Poll()
	if len(snap.Controllers) != 1 {
		t.Fatalf("expected one controller, got %d", len(snap.Controllers))
	}
	if c := snap.Controllers[0]; !c.A || c.B || c.DPad != game.Left {
		t.Fatalf("unexpected keyboard controller %+v", c)
	}
	if !approx(snap.Delta, 1.0/60) {
		t.Fatalf("expected the frame time as delta, got %v", snap.Delta)
	}
}

func TestPollMergesKeyboardIntoFirstPad(t *testing.T) {
	in := newPadInput(fakeSource{
		pads: map[int32]map[int32]bool{
			0: {rl.GamepadButtonLeftFaceDown: true},
			1: {rl.GamepadButtonRightFaceDown: true, rl.GamepadButtonRightFaceRight: true},
		},
		keys:    map[int32]bool{rl.KeyX: true, rl.KeyUp: true},
		frameDT: 2,
	}, 0)
	snap := in.Poll()
	if len(snap.Controllers) != 2 {
		t.Fatalf("expected two controllers, got %d", len(snap.Controllers))
	}
	first := snap.Controllers[0]
	if first.DPad != game.Down || !first.B || first.A {
		t.Fatalf("expected the pad d-pad to win and B from the keyboard, got %+v", first)
	}
	if second := snap.Controllers[1]; !second.A || !second.B || second.DPad != game.NoDirection {
		t.Fatalf("unexpected second pad %+v", second)
	}
	if snap.Delta != maxFrameDelta {
		t.Fatalf("expected a long frame to be capped, got %v", snap.Delta)
	}
}

func TestPollFixedDelta(t *testing.T) {
	in := newPadInput(fakeSource{frameDT: 0.5}, 0.01)
	if got := in.Poll().Delta; got != 0.01 {
		t.Fatalf("expected fixed delta, got %v", got)
	}
}

func TestFrameScaleKeepsAspect(t *testing.T) {
	f := scene.Frame{Width: 320, Height: 240}
	if got := frameScale(f, 960, 720); got != 3 {
		t.Fatalf("expected scale 3, got %v", got)
	}
	if got := frameScale(f, 640, 900); got != 2 {
		t.Fatalf("expected the narrow side to win, got %v", got)
	}
	if got := frameScale(scene.Frame{}, 640, 480); got != 1 {
		t.Fatalf("expected an empty frame to fall back to 1, got %v", got)
	}
}

func TestTriangulateConcaveBottle(t *testing.T) {
	bottle := []game.Vec2{
		{X: 2, Y: -6}, {X: 2, Y: -4}, {X: 5, Y: -3}, {X: 5, Y: 6},
		{X: -5, Y: 6}, {X: -5, Y: -3}, {X: -2, Y: -4}, {X: -2, Y: -6},
	}
	tris := triangulate(bottle)
	if len(tris) != len(bottle)-2 {
		t.Fatalf("expected %d triangles, got %d", len(bottle)-2, len(tris))
	}
	var area float32
	for i, tri := range tris {
		c := cross(tri[0], tri[1], tri[2])
		if c > 0 {
			t.Fatalf("triangle %d is clockwise on screen: %v", i, tri)
		}
		area += -c / 2
	}
	want := float32(math.Abs(float64(signedArea(bottle))))
	if !approx(area, want) {
		t.Fatalf("expected triangles to cover %v, got %v", want, area)
	}
}

func TestTriangulateEitherWinding(t *testing.T) {
	square := []game.Vec2{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	reversed := []game.Vec2{square[3], square[2], square[1], square[0]}
	for _, pts := range [][]game.Vec2{square, reversed} {
		tris := triangulate(pts)
		if len(tris) != 2 {
			t.Fatalf("expected two triangles, got %d", len(tris))
		}
	}
	if triangulate(square[:2]) != nil {
		t.Fatalf("expected nothing for a degenerate outline")
	}
}

func TestTriangulateIndicatorFan(t *testing.T) {
	pts := scene.IndicatorFan(15, 7)
	if got := len(triangulate(pts)); got != len(pts)-2 {
		t.Fatalf("expected %d triangles, got %d", len(pts)-2, got)
	}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}
