// internal/ui/rlui/indicator.go
package rlui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoomIndicatorRL - круглый индикатор заряда ракетного залпа.
// Клик по нему запускает залп.
type BoomIndicatorRL struct {
	X, Y      float32
	Radius    float32
	FiredTime time.Time
}

func NewBoomIndicatorRL(x, y, radius float32) *BoomIndicatorRL {
	return &BoomIndicatorRL{X: x, Y: y, Radius: radius}
}

// Draw рисует заряд сектором; полный заряд - сплошной круг.
func (i *BoomIndicatorRL) Draw(fraction float64, charged bool, fill color.RGBA) {
	elapsed := time.Since(i.FiredTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)
	center := rl.NewVector2(i.X, i.Y)

	rl.DrawCircleV(center, currentRadius, rl.NewColor(15, 23, 42, 200))
	rlColor := rl.NewColor(fill.R, fill.G, fill.B, fill.A)
	if charged {
		rl.DrawCircleV(center, currentRadius, rlColor)
	} else {
		end := float32(-90 + 360*clampFraction(fraction))
		rl.DrawCircleSector(center, currentRadius, -90, end, 32, rl.ColorAlpha(rlColor, 0.6))
	}
	rl.DrawCircleLines(int32(i.X), int32(i.Y), currentRadius, rl.White)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *BoomIndicatorRL) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(i.X, i.Y), i.Radius)
}

// Fired запускает анимацию выстрела.
func (i *BoomIndicatorRL) Fired() {
	i.FiredTime = time.Now()
}

func clampFraction(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
