package ui

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Fonts are the faces used for each text role on screen.
type Fonts struct {
	Title  font.Face
	Header font.Face
	Normal font.Face
	Small  font.Face
}

// Point sizes of the text roles.
const (
	titleSize  = 36
	headerSize = 28
	normalSize = 22
	smallSize  = 18
	fontDPI    = 72
)

// DefaultFonts uses the built-in bitmap face, which only covers ASCII.
func DefaultFonts() Fonts {
	f := basicfont.Face7x13
	return Fonts{Title: f, Header: f, Normal: f, Small: f}
}

// LoadFonts reads an OpenType or TrueType file and builds every role from it.
func LoadFonts(path string) (Fonts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fonts{}, err
	}
	fonts, err := ParseFonts(data)
	if err != nil {
		return Fonts{}, fmt.Errorf("%s: %w", path, err)
	}
	return fonts, nil
}

// ParseFonts builds every role from font data.
func ParseFonts(data []byte) (Fonts, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return Fonts{}, fmt.Errorf("parse font: %w", err)
	}
	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: fontDPI, Hinting: font.HintingFull})
	}
	var out Fonts
	for _, role := range []struct {
		dst  *font.Face
		size float64
	}{
		{&out.Title, titleSize},
		{&out.Header, headerSize},
		{&out.Normal, normalSize},
		{&out.Small, smallSize},
	} {
		fc, err := face(role.size)
		if err != nil {
			return Fonts{}, fmt.Errorf("font face %.0fpt: %w", role.size, err)
		}
		*role.dst = fc
	}
	return out, nil
}

// TextWidth measures s in face, in pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
