// internal/ui/stat_bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const borderWidth = 1

var borderColor = color.White

// StatBar - полоса заполнения с обводкой и подписью внутри.
type StatBar struct {
	X, Y          float32
	Width, Height float32
	Back          color.Color
}

func NewStatBar(x, y, width, height float32, back color.Color) *StatBar {
	return &StatBar{X: x, Y: y, Width: width, Height: height, Back: back}
}

// Draw рисует полосу. fraction обрезается до [0, 1].
func (b *StatBar) Draw(screen *ebiten.Image, fraction float64, fill color.Color, label string, face font.Face) {
	// 1. Фон и обводка
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, b.Back, true)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, borderWidth, borderColor, true)

	// 2. Заполненная часть
	fillWidth := float32(float64(b.Width-borderWidth*2) * clamp01(fraction))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, b.X+borderWidth, b.Y+borderWidth, fillWidth, b.Height-borderWidth*2, fill, true)
	}

	// 3. Подпись по центру
	if label != "" && face != nil {
		ascent := face.Metrics().Ascent.Ceil()
		DrawTextCentered(screen, label, face, int(b.X+b.Width/2), int(b.Y+b.Height/2)+ascent/2-1, borderColor)
	}
}

// Contains - попадает ли точка в полосу (для кликов по индикатору).
func (b *StatBar) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.Width && fy >= b.Y && fy <= b.Y+b.Height
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
