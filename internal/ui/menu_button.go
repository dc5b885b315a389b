// internal/ui/menu_button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// MenuButton - прямоугольная кнопка меню для ebiten-экранов.
type MenuButton struct {
	X, Y, Width, Height float32
	Text                string
	BgColor             color.RGBA
	HoverColor          color.RGBA
	Disabled            bool
}

// NewMenuButton создаёт кнопку с центром по x.
func NewMenuButton(cx, y, width, height float32, text string, bg color.RGBA) *MenuButton {
	return &MenuButton{
		X:          cx - width/2,
		Y:          y,
		Width:      width,
		Height:     height,
		Text:       text,
		BgColor:    bg,
		HoverColor: color.RGBA{bg.R / 2, bg.G / 2, bg.B / 2, bg.A},
	}
}

// Contains проверяет попадание точки в кнопку.
func (b *MenuButton) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.Width && fy >= b.Y && fy <= b.Y+b.Height
}

// IsClicked - клик по активной кнопке.
func (b *MenuButton) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

func (b *MenuButton) Draw(screen *ebiten.Image, face font.Face, cursorX, cursorY int) {
	bg := b.BgColor
	if b.Disabled {
		bg = color.RGBA{60, 60, 60, 200}
	} else if b.Contains(cursorX, cursorY) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, true)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, color.White, true)

	ascent := face.Metrics().Ascent.Ceil()
	DrawTextCentered(screen, b.Text, face, int(b.X+b.Width/2), int(b.Y+b.Height/2)+ascent/2-2, color.White)
}
