// Package scene turns a session into a flat list of drawing primitives in
// viewport units. Renderers only have to scale and rasterise them.
package scene

import (
	"image/color"
	"math"

	"github.com/appengine-ltd/walden/internal/game"
	"github.com/appengine-ltd/walden/internal/palette"
)

type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapePolygon
	ShapeRectLine
	ShapeCircleLine
	ShapeText
)

// Prim is one primitive. Pos is the top-left corner of a rect, the centre
// of a circle and the baseline origin of text.
type Prim struct {
	Shape  Shape
	Color  color.RGBA
	Pos    game.Vec2
	W, H   float32
	R      float32
	Points []game.Vec2
	Line   float32
	Text   string
	Size   float32
}

type Frame struct {
	Width  float32
	Height float32
	Clear  color.RGBA
	Prims  []Prim
}

// HUD anchors in viewport units.
var (
	ActiveItemAnchor = game.Vec2{X: 260, Y: 220}
	ButtonAAnchor    = game.Vec2{X: 280, Y: 220}
	ButtonBAnchor    = game.Vec2{X: 300, Y: 200}
	SelectorAnchor   = game.Vec2{X: 160, Y: 120}
	IndicatorOrigin  = game.Vec2{X: 25, Y: 25}
	IndicatorSpacing = float32(40)
)

const (
	playerScale     = 3
	walkCycle       = 6
	buttonRadius    = 10
	indicatorRadius = 15
	selectorSlot    = 30
	selectorCursor  = 20
	selectorLine    = 2
	bottleScale     = 2
	tooltipTextSize = 10
	buttonTextSize  = 10
	unknownRadius   = 5
)

// Build draws the world through the camera, then the HUD on top.
func Build(s *game.Session) Frame {
	half := s.HalfViewport()
	f := Frame{Width: half.X * 2, Height: half.Y * 2, Clear: palette.Ground}

	world := s.World
	cam := pen{frame: &f, off: s.Camera.Pos, scale: 1}
	for _, id := range world.DrawOrder() {
		e, err := world.Entity(id)
		if err != nil {
			continue
		}
		drawKind(cam.at(e.Position), e.Kind)
	}

	hud := pen{frame: &f, scale: 1}
	player := world.Player()
	if item, ok := player.CurrentItem(); ok {
		drawItem(hud.at(ActiveItemAnchor), item)
	}
	drawButton(hud.at(ButtonAAnchor), "A", palette.ButtonA(s.ButtonA))
	drawButton(hud.at(ButtonBAnchor), "B", palette.ButtonB(s.ButtonB))
	if tip, ok := s.Tooltip(); ok {
		hud.at(ActiveItemAnchor.Add(game.Vec2{X: -24, Y: -18})).text(string(tip), tooltipTextSize, palette.Text)
	}
	if s.Selector.Visible() {
		drawSelector(hud.at(SelectorAnchor), &s.Selector)
	}
	for i := range s.Indicators {
		pos := IndicatorOrigin.Add(game.Vec2{X: IndicatorSpacing * float32(i)})
		drawIndicator(hud.at(pos), &s.Indicators[i])
	}
	return f
}

func drawKind(p pen, k game.Kind) {
	switch k := k.(type) {
	case *game.Player:
		drawPlayer(p.scaled(playerScale), k)
	case game.Bag:
		p.poly(palette.Bag, game.Vec2{X: -10, Y: -10}, game.Vec2{X: -10, Y: 10}, game.Vec2{X: 10, Y: 10}, game.Vec2{X: 10, Y: -10})
	case game.Tent:
		p.poly(palette.Tent,
			game.Vec2{X: -10, Y: 0}, game.Vec2{X: -10, Y: 10}, game.Vec2{X: 0, Y: 20},
			game.Vec2{X: 10, Y: 10}, game.Vec2{X: 10, Y: 0}, game.Vec2{X: 0, Y: -5})
	case game.Pond:
		p.circle(palette.Water, game.Vec2{}, k.Radius)
	case game.Grass:
		p.circle(palette.Grass, game.Vec2{}, game.DefaultRadius)
	case game.Tree, game.Bush:
		p.circle(palette.TallGrass, game.Vec2{}, game.Size(k))
	case game.Stone:
		p.circle(palette.Stone, game.Vec2{}, game.Size(k))
		p.circle(palette.StoneLight, game.Vec2{X: -3, Y: -3}, game.Size(k)*0.4)
	case game.GroundAxe:
		drawAxe(p)
	default:
		p.circle(palette.Unknown, game.Vec2{}, unknownRadius)
	}
}

func drawAxe(p pen) {
	p.rect(palette.Wood, -1, -6, 2, 12)
	p.poly(palette.Steel,
		game.Vec2{X: 1, Y: -6}, game.Vec2{X: 6, Y: -7}, game.Vec2{X: 6, Y: -1}, game.Vec2{X: 1, Y: -2})
}

func drawPlayer(p pen, pl *game.Player) {
	amp := pl.Stride()
	lamp := amp*0.5 + 0.5
	t := pl.T * walkCycle
	xoff := pl.LogSpeed.X * 0.7
	bob := func(phase, k float32) float32 { return sin(2*t-phase) * k * lamp }

	p.rect(palette.Player, -3, -4+sin(t)*amp, 2, 4)
	p.rect(palette.Player, 1, -4-sin(t)*amp, 2, 4)
	p.rect(palette.Player, -3, -10+bob(0.1, 0.7), 6, 8)
	p.rect(palette.PlayerSkin, -4+xoff*0.5, -16+bob(0.2, 0.5), 8, 8)

	if pl.FacingAway() {
		return
	}
	p.rect(palette.PlayerEyes, -3+xoff*0.9, -14+bob(0.2, 0.6), 2, 1)
	p.rect(palette.PlayerEyes, 1+xoff*0.9, -14+bob(0.2, 0.6), 2, 1)
	p.rect(palette.PlayerHair, -3+xoff, -12+bob(0.25, 0.6), 6, 4)
	p.rect(palette.PlayerSkin, -1+xoff, -10+bob(0.25, 0.6), 2, 1)
}

func drawItem(p pen, item game.Item) {
	switch it := item.(type) {
	case game.Bottle:
		b := p.scaled(bottleScale)
		b.poly(palette.Glass,
			game.Vec2{X: 2, Y: -6}, game.Vec2{X: 2, Y: -4}, game.Vec2{X: 5, Y: -3}, game.Vec2{X: 5, Y: 6},
			game.Vec2{X: -5, Y: 6}, game.Vec2{X: -5, Y: -3}, game.Vec2{X: -2, Y: -4}, game.Vec2{X: -2, Y: -6})
		if it.Filled {
			b.rect(palette.Water, -4, -3, 8, 8)
		}
	case game.Axe:
		drawAxe(p.scaled(bottleScale))
	case game.Berry:
		p.circle(palette.Berry, game.Vec2{}, 3*bottleScale)
	default:
		p.circle(palette.Unknown, game.Vec2{}, unknownRadius)
	}
}

func drawButton(p pen, label string, c color.RGBA) {
	p.circle(c, game.Vec2{}, buttonRadius)
	p.at(game.Vec2{X: -3, Y: 4}).text(label, buttonTextSize, palette.Text)
}

func drawSelector(p pen, s *game.Selector) {
	offset := float32(selectorSlot) * 1.2
	cursor := s.Axis.Scale(offset)

	p.circle(palette.SelectorBack, cursor, selectorCursor)
	for _, d := range game.Directions {
		c := d.Vec().Scale(offset)
		p.rect(palette.SelectorBack, c.X-selectorSlot/2, c.Y-selectorSlot/2, selectorSlot, selectorSlot)
	}
	for _, d := range game.Directions {
		c := d.Vec().Scale(offset)
		p.rectLine(palette.SelectorFront, c.X-selectorSlot/2, c.Y-selectorSlot/2, selectorSlot, selectorSlot, selectorLine)
	}
	for _, d := range game.Directions {
		if item, ok := s.Player.Hands.Get(d); ok {
			drawItem(p.at(d.Vec().Scale(offset)), item)
		}
	}
	p.circleLine(palette.SelectorFront, cursor, selectorCursor, selectorLine)
}

// IndicatorColor is the fill colour of a stat gauge.
func IndicatorColor(s game.Stat) color.RGBA {
	switch s {
	case game.StatSleep:
		return palette.StatSleep
	case game.StatThirst:
		return palette.StatThirst
	default:
		return palette.StatHunger
	}
}

func drawIndicator(p pen, ind *game.StatIndicator) {
	p.circle(palette.StatBack, game.Vec2{}, indicatorRadius+2)
	if pts := IndicatorFan(indicatorRadius, ind.Segments(game.IndicatorSegments)); len(pts) >= 3 {
		p.poly(IndicatorColor(ind.Stat), pts...)
	}
}

// IndicatorFan is the filled part of a gauge: the centre followed by one
// rim point per segment, starting straight down and turning clockwise on
// screen.
func IndicatorFan(radius float32, segments int) []game.Vec2 {
	pts := make([]game.Vec2, 0, segments+1)
	pts = append(pts, game.Vec2{})
	step := 2 * math.Pi / float64(game.IndicatorSegments)
	for i := 0; i < segments; i++ {
		a := step * float64(i)
		pts = append(pts, game.Vec2{
			X: -radius * float32(math.Sin(a)),
			Y: radius * float32(math.Cos(a)),
		})
	}
	return pts
}

func sin(v float32) float32 {
	return float32(math.Sin(float64(v)))
}
