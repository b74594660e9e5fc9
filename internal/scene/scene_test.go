package scene

import (
	"image/color"
	"testing"

	"github.com/appengine-ltd/walden/internal/game"
	"github.com/appengine-ltd/walden/internal/palette"
)

func newSession(t *testing.T, layout game.Layout) *game.Session {
	t.Helper()
	w, err := game.NewWorld(layout, nil)
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	return game.NewSession(w, game.SessionConfig{})
}

func count(f Frame, shape Shape, c color.RGBA) int {
	n := 0
	for _, p := range f.Prims {
		if p.Shape == shape && p.Color == c {
			n++
		}
	}
	return n
}

func TestBuildDefaultWorld(t *testing.T) {
	f := Build(newSession(t, game.DefaultLayout()))
	if f.Width != 320 || f.Height != 240 {
		t.Fatalf("expected a 320x240 frame, got %vx%v", f.Width, f.Height)
	}
	if got := count(f, ShapeCircle, palette.Water); got != 3 {
		t.Fatalf("expected three ponds, got %d", got)
	}
	for _, p := range f.Prims {
		if p.Shape == ShapeCircle && p.Color == palette.Water && p.Pos == (game.Vec2{X: 200, Y: 130}) && p.R != 40 {
			t.Fatalf("expected the first pond to keep radius 40, got %v", p.R)
		}
	}
	if got := count(f, ShapeRectLine, palette.SelectorFront); got != 0 {
		t.Fatalf("expected no selector while idle, got %d outlines", got)
	}
	// The starting hand is empty: no item and no tooltip.
	if got := count(f, ShapePolygon, palette.Glass); got != 0 {
		t.Fatalf("expected no active item, got %d bottles", got)
	}
}

func TestBuildPlayerFacesCamera(t *testing.T) {
	s := newSession(t, game.Layout{Spawn: game.Vec2{X: 100, Y: 100}})
	if got := count(Build(s), ShapeRect, palette.PlayerEyes); got != 0 {
		t.Fatalf("expected no eyes while walking away, got %d", got)
	}
	s.World.Player().LogSpeed = game.Vec2{X: 0, Y: 1}
	f := Build(s)
	if got := count(f, ShapeRect, palette.PlayerEyes); got != 2 {
		t.Fatalf("expected two eyes, got %d", got)
	}
	for _, p := range f.Prims {
		if p.Color == palette.PlayerSkin && p.W == 8*playerScale {
			if p.Pos.X != 100-4*playerScale {
				t.Fatalf("expected the head centred on the player, got x=%v", p.Pos.X)
			}
			return
		}
	}
	t.Fatalf("expected a head")
}

func TestBuildSelectorAndActiveItem(t *testing.T) {
	s := newSession(t, game.Layout{})
	s.SwapItem(game.Left)
	s.Selector.State = game.ItemChosen{}
	f := Build(s)

	if got := count(f, ShapeRectLine, palette.SelectorFront); got != 4 {
		t.Fatalf("expected four selector slots, got %d", got)
	}
	// One bottle in the HUD, one in the left selector slot.
	if got := count(f, ShapePolygon, palette.Glass); got != 2 {
		t.Fatalf("expected two bottles, got %d", got)
	}
	if got := count(f, ShapeRect, palette.Water); got != 2 {
		t.Fatalf("expected both bottles drawn full, got %d", got)
	}
	var tooltip bool
	for _, p := range f.Prims {
		if p.Shape == ShapeText && p.Text == string(game.TooltipDrinkBottle) {
			tooltip = true
		}
	}
	if !tooltip {
		t.Fatalf("expected the drink tooltip")
	}
}

func TestIndicatorFan(t *testing.T) {
	pts := IndicatorFan(10, 5)
	if len(pts) != 6 || pts[0] != (game.Vec2{}) {
		t.Fatalf("expected centre plus five rim points, got %v", pts)
	}
	if pts[1] != (game.Vec2{X: 0, Y: 10}) {
		t.Fatalf("expected the fan to start straight down, got %s", pts[1])
	}
	if len(IndicatorFan(10, 0)) != 1 {
		t.Fatalf("expected an empty gauge to hold only the centre")
	}
}

func TestBuildDrawsEveryPlaceableKind(t *testing.T) {
	s := newSession(t, game.Layout{
		Spawn: game.Vec2{X: 160, Y: 120},
		Obstacles: []game.Placement{
			{Kind: game.Stone{}, Position: game.Vec2{X: 100, Y: 100}},
			{Kind: game.GroundAxe{}, Position: game.Vec2{X: 200, Y: 100}},
		},
	})
	f := Build(s)
	if got := count(f, ShapeCircle, palette.Unknown); got != 0 {
		t.Fatalf("expected no placeholder shapes, got %d", got)
	}
	if got := count(f, ShapeCircle, palette.Stone); got != 1 {
		t.Fatalf("expected one stone, got %d", got)
	}
	if got := count(f, ShapePolygon, palette.Steel); got != 1 {
		t.Fatalf("expected one axe head, got %d", got)
	}
}
