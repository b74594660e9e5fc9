package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/walden/internal/game"
	"github.com/appengine-ltd/walden/internal/scene"
)

const ringSegments = 48

func drawFrame(f scene.Frame, scale float32) {
	rl.ClearBackground(f.Clear)
	for _, p := range f.Prims {
		drawPrim(p, scale)
	}
}

func drawPrim(p scene.Prim, scale float32) {
	switch p.Shape {
	case scene.ShapeRect:
		rl.DrawRectangleV(vec(p.Pos, scale), rl.NewVector2(p.W*scale, p.H*scale), p.Color)
	case scene.ShapeRectLine:
		rect := rl.NewRectangle(p.Pos.X*scale, p.Pos.Y*scale, p.W*scale, p.H*scale)
		rl.DrawRectangleLinesEx(rect, max(p.Line*scale, 1), p.Color)
	case scene.ShapeCircle:
		rl.DrawCircleV(vec(p.Pos, scale), p.R*scale, p.Color)
	case scene.ShapeCircleLine:
		half := max(p.Line*scale, 1) / 2
		r := p.R * scale
		rl.DrawRing(vec(p.Pos, scale), max(r-half, 0), r+half, 0, 360, ringSegments, p.Color)
	case scene.ShapePolygon:
		for _, tri := range triangulate(p.Points) {
			rl.DrawTriangle(vec(tri[0], scale), vec(tri[1], scale), vec(tri[2], scale), p.Color)
		}
	case scene.ShapeText:
		size := p.Size * scale
		drawText(p.Text, p.Pos.X*scale, p.Pos.Y*scale-size, size, p.Color)
	}
}

func vec(v game.Vec2, scale float32) rl.Vector2 {
	return rl.NewVector2(v.X*scale, v.Y*scale)
}
