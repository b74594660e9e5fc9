package scene

import (
	"image/color"

	"github.com/appengine-ltd/walden/internal/game"
)

// pen appends primitives under a translate-then-scale transform.
type pen struct {
	frame *Frame
	off   game.Vec2
	scale float32
}

func (p pen) at(v game.Vec2) pen {
	p.off = p.apply(v)
	return p
}

func (p pen) scaled(k float32) pen {
	p.scale *= k
	return p
}

func (p pen) apply(v game.Vec2) game.Vec2 {
	return p.off.Add(v.Scale(p.scale))
}

func (p pen) rect(c color.RGBA, x, y, w, h float32) {
	p.frame.Prims = append(p.frame.Prims, Prim{
		Shape: ShapeRect, Color: c,
		Pos: p.apply(game.Vec2{X: x, Y: y}), W: w * p.scale, H: h * p.scale,
	})
}

func (p pen) rectLine(c color.RGBA, x, y, w, h, line float32) {
	p.frame.Prims = append(p.frame.Prims, Prim{
		Shape: ShapeRectLine, Color: c,
		Pos: p.apply(game.Vec2{X: x, Y: y}), W: w * p.scale, H: h * p.scale, Line: line,
	})
}

func (p pen) circle(c color.RGBA, centre game.Vec2, r float32) {
	p.frame.Prims = append(p.frame.Prims, Prim{
		Shape: ShapeCircle, Color: c, Pos: p.apply(centre), R: r * p.scale,
	})
}

func (p pen) circleLine(c color.RGBA, centre game.Vec2, r, line float32) {
	p.frame.Prims = append(p.frame.Prims, Prim{
		Shape: ShapeCircleLine, Color: c, Pos: p.apply(centre), R: r * p.scale, Line: line,
	})
}

func (p pen) poly(c color.RGBA, pts ...game.Vec2) {
	out := make([]game.Vec2, len(pts))
	for i, v := range pts {
		out[i] = p.apply(v)
	}
	p.frame.Prims = append(p.frame.Prims, Prim{Shape: ShapePolygon, Color: c, Points: out})
}

func (p pen) text(s string, size float32, c color.RGBA) {
	p.frame.Prims = append(p.frame.Prims, Prim{
		Shape: ShapeText, Color: c, Pos: p.off, Text: s, Size: size,
	})
}
