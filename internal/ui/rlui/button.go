// internal/ui/rlui/button.go
package rlui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ButtonRL представляет собой кликабельную кнопку raylib-интерфейса.
type ButtonRL struct {
	Rect       rl.Rectangle
	Text       string
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	Font       rl.Font
	FontSize   float32
	Disabled   bool
}

// NewButtonRL создает новую кнопку.
func NewButtonRL(rect rl.Rectangle, text string, font rl.Font, bg rl.Color) *ButtonRL {
	return &ButtonRL{
		Rect:       rect,
		Text:       text,
		TextColor:  rl.White,
		BgColor:    bg,
		HoverColor: rl.ColorBrightness(bg, -0.3),
		Font:       font,
		FontSize:   24,
	}
}

// IsClicked проверяет, был ли сделан клик по кнопке.
func (b *ButtonRL) IsClicked(mousePos rl.Vector2) bool {
	return !b.Disabled && rl.CheckCollisionPointRec(mousePos, b.Rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Draw отрисовывает кнопку.
func (b *ButtonRL) Draw(mousePos rl.Vector2) {
	bgColor := b.BgColor
	switch {
	case b.Disabled:
		bgColor = rl.DarkGray
	case rl.CheckCollisionPointRec(mousePos, b.Rect):
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.White)

	textSize := rl.MeasureTextEx(b.Font, b.Text, b.FontSize, 1)
	textX := b.Rect.X + (b.Rect.Width-textSize.X)/2
	textY := b.Rect.Y + (b.Rect.Height-textSize.Y)/2

	rl.DrawTextEx(b.Font, b.Text, rl.NewVector2(textX, textY), b.FontSize, 1, b.TextColor)
}
