package gui

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type typographyState struct {
	font  rl.Font
	owned bool
}

var uiType typographyState

func initTypography() {
	uiType.font = rl.GetFontDefault()
	fontCandidates := []string{
		filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
		filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
	}
	if f, ok := loadFontFromCandidates(fontCandidates, 32); ok {
		uiType.font = f
		uiType.owned = true
	}
	rl.SetTextureFilter(uiType.font.Texture, rl.FilterBilinear)
}

func shutdownTypography() {
	if uiType.owned && uiType.font.Texture.ID != 0 {
		rl.UnloadFont(uiType.font)
	}
	uiType = typographyState{}
}

func loadFontFromCandidates(candidates []string, fontSize int32) (rl.Font, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, nil, 0)
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

// drawText places the top-left corner of the text at (x, y).
func drawText(text string, x, y, size float32, clr rl.Color) {
	if uiType.font.Texture.ID == 0 {
		rl.DrawText(text, int32(x), int32(y), int32(size), clr)
		return
	}
	rl.DrawTextEx(uiType.font, text, rl.NewVector2(x, y), size, 1, clr)
}
