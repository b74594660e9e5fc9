// Package palette holds the colours shared by every renderer.
package palette

import (
	"fmt"
	"image/color"
)

// World palette.
var (
	Player     = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF} // #FFFFFF
	PlayerSkin = color.RGBA{0xFF, 0xCC, 0xB3, 0xFF} // #FFCCB3
	PlayerEyes = color.RGBA{0x1A, 0x33, 0xE6, 0xFF} // #1A33E6
	PlayerHair = color.RGBA{0xCC, 0x4D, 0x33, 0xFF} // #CC4D33
	Tent       = color.RGBA{0x1A, 0xFF, 0x1A, 0xFF} // #1AFF1A
	Bag        = color.RGBA{0x66, 0x42, 0x21, 0xFF} // #664221
	Unknown    = color.RGBA{0xFF, 0xFF, 0x00, 0xFF} // #FFFF00
	Void       = color.RGBA{0x00, 0x00, 0x00, 0xFF} // #000000
	Water      = color.RGBA{0x4D, 0x80, 0xE6, 0xFF} // #4D80E6
	Glass      = color.RGBA{0xE6, 0xE6, 0xE6, 0xCC} // #E6E6E6 at 80%
	Grass      = color.RGBA{0x33, 0xB3, 0x33, 0x4D} // #33B333 at 30%
	TallGrass  = color.RGBA{0x33, 0x80, 0x33, 0xFF} // #338033
	Stone      = color.RGBA{0x80, 0x80, 0x80, 0xFF} // #808080
	StoneLight = color.RGBA{0xA6, 0xA6, 0xA6, 0xFF} // #A6A6A6
	Wood       = color.RGBA{0x8C, 0x5A, 0x2E, 0xFF} // #8C5A2E
	Steel      = color.RGBA{0xBF, 0xC7, 0xCC, 0xFF} // #BFC7CC
	Berry      = color.RGBA{0xB3, 0x1A, 0x4D, 0xFF} // #B31A4D

	// Ground is Grass laid over Void; renderers clear to it.
	Ground = color.RGBA{0x0F, 0x36, 0x0F, 0xFF} // #0F360F
)

// UI palette.
var (
	SelectorFront = color.RGBA{0xCC, 0xCC, 0xCC, 0xFF}
	SelectorBack  = color.RGBA{0x4D, 0x4D, 0x4D, 0xFF}
	Text          = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	StatBack      = color.RGBA{0xB3, 0xB3, 0xB3, 0xFF}
	StatSleep     = color.RGBA{0xE6, 0xE6, 0x33, 0xFF}
	StatThirst    = color.RGBA{0x4D, 0x4D, 0xE6, 0xFF}
	StatHunger    = color.RGBA{0xE6, 0x4D, 0x4D, 0xFF}
)

// ButtonA is green, brighter while held.
func ButtonA(pressed bool) color.RGBA {
	if pressed {
		return color.RGBA{0x00, 0xFF, 0x00, 0xFF}
	}
	return color.RGBA{0x00, 0xCC, 0x00, 0xFF}
}

// ButtonB is red, brighter while held.
func ButtonB(pressed bool) color.RGBA {
	if pressed {
		return color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	}
	return color.RGBA{0xCC, 0x00, 0x00, 0xFF}
}

// Hex formats c as #RRGGBB, dropping alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
