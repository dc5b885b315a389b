// internal/ui/font.go
package ui

import (
	"fmt"
	"image/color"

	"go-space-shooter/internal/i18n"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFace создаёт шрифт заданного размера из встроенного Go Regular.
func LoadFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// Printable возвращает строку, которую шрифт может нарисовать целиком.
// Если хотя бы одного глифа нет, диакритика убирается.
func Printable(face font.Face, s string) string {
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if _, ok := face.GlyphAdvance(r); !ok {
			return i18n.ASCII(s)
		}
	}
	return s
}

// TextWidth - ширина строки в пикселях.
func TextWidth(face font.Face, s string) int {
	return text.BoundString(face, Printable(face, s)).Dx()
}

// DrawText рисует строку от базовой линии (x, y).
func DrawText(dst *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(dst, Printable(face, s), face, x, y, clr)
}

// DrawTextCentered центрирует строку по x.
func DrawTextCentered(dst *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	DrawText(dst, s, face, cx-TextWidth(face, s)/2, y, clr)
}
