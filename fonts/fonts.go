package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
)

// Get returns the loaded face, or the built-in bitmap face when no TTF was
// loaded under that name.
func (f FontName) Get() font.Face {
	if face, ok := fonts[f]; ok {
		return face
	}
	return basicfont.Face7x13
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadFile loads a TTF file as both the HUD and the title face.
func LoadFile(path string) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	if err := LoadFontWithSize(HUD, ttf, 10); err != nil {
		return err
	}
	return LoadFontWithSize(Title, ttf, 20)
}
