package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/appengine-ltd/walden/internal/scene"
	"github.com/appengine-ltd/walden/internal/snapshot"
)

// renderFrameANSI rasterises f into at most cols by rows terminal cells,
// keeping the frame's aspect ratio. Each cell carries two pixels.
func renderFrameANSI(f scene.Frame, cols, rows int) string {
	if cols < 4 || rows < 2 || f.Width <= 0 || f.Height <= 0 {
		return ""
	}
	w, h := fitAspect(cols, rows*2, float64(f.Width)/float64(f.Height))
	return rgbaImageToANSIHalfBlocks(snapshot.RenderSize(f, w, h))
}

func fitAspect(maxW, maxH int, aspect float64) (int, int) {
	w := maxW
	h := int(float64(w) / aspect)
	if h > maxH {
		h = maxH
		w = int(float64(h) * aspect)
	}
	return max(w, 1), max(h&^1, 2)
}

func rgbaImageToANSIHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			tr, tg, tb, ta := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < height {
				br, bg, bb, ba = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			if ta < 8 && ba < 8 {
				out.WriteByte(' ')
				continue
			}

			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		out.WriteString("\x1b[0m")
		if y+2 < height {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}
