package game

import "testing"

func TestSteerEasesTowardsDPad(t *testing.T) {
	p := NewPlayer()
	p.Steer(true, Right, 0.5)

	if p.T != 0.5 {
		t.Fatalf("expected clock to advance by delta, got %v", p.T)
	}
	// (0,-1) + ((2,0) - (0,-1)) / 5 = (0.4,-0.8), renormalised to unit length.
	want := Vec2{X: 0.4, Y: -0.8}.Normalize()
	if !approx(p.LogSpeed.X, want.X) || !approx(p.LogSpeed.Y, want.Y) {
		t.Fatalf("expected log speed %s, got %s", want, p.LogSpeed)
	}
	if !approx(p.LogSpeed.Len(), 1) {
		t.Fatalf("expected renormalised log speed, got length %v", p.LogSpeed.Len())
	}
}

func TestSteerReachesFullSpeed(t *testing.T) {
	p := NewPlayer()
	for i := 0; i < 200; i++ {
		p.Steer(true, Right, 1.0/60)
	}
	if !approx(p.LogSpeed.Y, 0) || p.LogSpeed.X < 1.99 {
		t.Fatalf("expected log speed to settle at (2,0), got %s", p.LogSpeed)
	}
}

func TestSteerWithoutInputKeepsHeading(t *testing.T) {
	p := NewPlayer()
	p.LogSpeed = Vec2{X: 2, Y: 0}
	p.Steer(true, NoDirection, 0)
	if !approx(p.LogSpeed.X, 1.8) || p.LogSpeed.Y != 0 {
		t.Fatalf("expected deceleration along heading to (1.8,0), got %s", p.LogSpeed)
	}
}

func TestSteerReversalKeepsOldHeading(t *testing.T) {
	p := NewPlayer()
	for i := 0; i < 600; i++ {
		p.Steer(true, Down, 1.0/60)
	}
	// Each ease lands on (0,-0.4), which renormalises back to (0,-1).
	if !approx(p.LogSpeed.X, 0) || !approx(p.LogSpeed.Y, -1) {
		t.Fatalf("expected the player to stay on the old heading, got %s", p.LogSpeed)
	}
}

func TestSteerIgnoresDPadWhileSelecting(t *testing.T) {
	p := NewPlayer()
	p.LogSpeed = Vec2{X: 0, Y: -2}
	p.Steer(false, Left, 0)
	if !approx(p.LogSpeed.Y, -1.8) || p.LogSpeed.X != 0 {
		t.Fatalf("expected d-pad to be ignored, got %s", p.LogSpeed)
	}
	for i := 0; i < 100; i++ {
		p.Steer(false, Left, 0)
	}
	if !approx(p.LogSpeed.Len(), 1) {
		t.Fatalf("expected player to slow down to unit log speed, got %s", p.LogSpeed)
	}
}

func TestCameraConvergesOnTarget(t *testing.T) {
	var c Camera
	player := Vec2{X: 200, Y: 100}
	heading := Vec2{X: 0, Y: -3}
	for i := 0; i < 300; i++ {
		c.Follow(player, heading, DefaultHalfViewport)
	}
	// -(player - half + heading*40) = -((40,-20) + (0,-40)) = (-40, 60)
	if d := c.Pos.Dist(Vec2{X: -40, Y: 60}); d > 1e-2 {
		t.Fatalf("expected camera at (-40, 60), got %s", c.Pos)
	}
}

func TestStatIndicatorLagsUntilPushed(t *testing.T) {
	p := NewPlayer()
	ind := NewStatIndicator(StatThirst, *p)
	p.Thirst = 0.5
	if ind.Value() != 1 {
		t.Fatalf("expected cached value 1 before push, got %v", ind.Value())
	}
	ind.SetPlayer(p)
	if ind.Value() != 0.5 || ind.Segments(IndicatorSegments) != 10 {
		t.Fatalf("expected 0.5 and 10 segments, got %v and %d", ind.Value(), ind.Segments(IndicatorSegments))
	}
}
