// Package snapshot rasterises scene frames with gg, for PNG snapshots and
// for the terminal client.
package snapshot

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/fogleman/gg"

	"github.com/appengine-ltd/walden/internal/scene"
)

// Render draws f into a new image scaled by scale. Scale must be positive.
func Render(f scene.Frame, scale float64) image.Image {
	return newContext(f, scale, scale).Image()
}

// RenderSize draws f stretched to exactly w by h pixels.
func RenderSize(f scene.Frame, w, h int) image.Image {
	if w <= 0 || h <= 0 || f.Width <= 0 || f.Height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	}
	sx := float64(w) / float64(f.Width)
	sy := float64(h) / float64(f.Height)
	return newContext(f, sx, sy).Image()
}

// WritePNG encodes f at scale as PNG.
func WritePNG(w io.Writer, f scene.Frame, scale float64) error {
	if err := newContext(f, scale, scale).EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: encode png: %w", err)
	}
	return nil
}

// SavePNG writes f at scale to path.
func SavePNG(path string, f scene.Frame, scale float64) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %q: %w", path, err)
	}
	if err := WritePNG(out, f, scale); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func newContext(f scene.Frame, sx, sy float64) *gg.Context {
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	w := max(int(float64(f.Width)*sx+0.5), 1)
	h := max(int(float64(f.Height)*sy+0.5), 1)
	dc := gg.NewContext(w, h)
	dc.SetColor(f.Clear)
	dc.Clear()
	dc.Scale(sx, sy)

	for _, p := range f.Prims {
		dc.SetColor(p.Color)
		switch p.Shape {
		case scene.ShapeRect:
			dc.DrawRectangle(float64(p.Pos.X), float64(p.Pos.Y), float64(p.W), float64(p.H))
			dc.Fill()
		case scene.ShapeRectLine:
			dc.SetLineWidth(float64(p.Line))
			dc.DrawRectangle(float64(p.Pos.X), float64(p.Pos.Y), float64(p.W), float64(p.H))
			dc.Stroke()
		case scene.ShapeCircle:
			dc.DrawCircle(float64(p.Pos.X), float64(p.Pos.Y), float64(p.R))
			dc.Fill()
		case scene.ShapeCircleLine:
			dc.SetLineWidth(float64(p.Line))
			dc.DrawCircle(float64(p.Pos.X), float64(p.Pos.Y), float64(p.R))
			dc.Stroke()
		case scene.ShapePolygon:
			if len(p.Points) < 3 {
				continue
			}
			dc.MoveTo(float64(p.Points[0].X), float64(p.Points[0].Y))
			for _, v := range p.Points[1:] {
				dc.LineTo(float64(v.X), float64(v.Y))
			}
			dc.ClosePath()
			dc.Fill()
		case scene.ShapeText:
			// The built-in face is 13px tall; scale it to the requested size.
			k := float64(p.Size) / 13
			dc.Push()
			dc.Translate(float64(p.Pos.X), float64(p.Pos.Y))
			dc.Scale(k, k)
			dc.DrawString(p.Text, 0, 0)
			dc.Pop()
		}
	}
	return dc
}
