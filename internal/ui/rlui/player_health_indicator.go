// internal/ui/rlui/player_health_indicator.go
package rlui

import (
	"go-space-shooter/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HealthCells       = 20
	HealthCellWidth   = 20.0
	HealthCellHeight  = 12.0
	HealthCellSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье и щит игрока полосой из ячеек.
type PlayerHealthIndicator struct {
	Position rl.Vector2
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{
		Position: rl.NewVector2(x, y),
	}
}

// FilledCells - сколько ячеек закрашено при данной доле здоровья.
// Живой игрок всегда видит хотя бы одну ячейку.
func FilledCells(hp, maxHP float64) int {
	if hp <= 0 || maxHP <= 0 {
		return 0
	}
	n := int(hp / maxHP * HealthCells)
	return max(1, min(n, HealthCells))
}

// Draw рисует ячейки: зелёные выше половины, красные ниже; щит - рамка.
func (i *PlayerHealthIndicator) Draw(hp, maxHP, shield float64) {
	filled := FilledCells(hp, maxHP)
	low := filled <= HealthCells/2

	for j := 0; j < HealthCells; j++ {
		x := i.Position.X + float32(j)*(HealthCellWidth+HealthCellSpacing)
		rect := rl.NewRectangle(x, i.Position.Y, HealthCellWidth, HealthCellHeight)

		var color rl.Color
		switch {
		case j >= filled:
			color = rl.Black
		case low:
			color = rl.Red
		default:
			color = rl.Green
		}
		rl.DrawRectangleRec(rect, color)
		rl.DrawRectangleLinesEx(rect, 1, rl.White)
	}

	if shield > 0 {
		outline := rl.NewRectangle(i.Position.X-3, i.Position.Y-3, i.Width()+6, HealthCellHeight+6)
		rl.DrawRectangleLinesEx(outline, 2, rl.SkyBlue)
	}

	// Текстовое отображение здоровья над полосой
	healthText := utils.FormatNumber(hp) + "/" + utils.FormatNumber(maxHP)
	textWidth := rl.MeasureText(healthText, 20)
	rl.DrawText(healthText, int32(i.Position.X+(i.Width()-float32(textWidth))/2), int32(i.Position.Y)-25, 20, rl.White)
}

// Width возвращает общую ширину индикатора.
func (i *PlayerHealthIndicator) Width() float32 {
	return HealthCells*(HealthCellWidth+HealthCellSpacing) - HealthCellSpacing
}
