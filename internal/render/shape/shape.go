// Package shape строит геометрию кораблей и фона без привязки к графической библиотеке.
package shape

import (
	"math"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/utils"
)

type Point struct {
	X, Y float64
}

// Ship строит силуэт корабля: нос вверх, для врагов вниз.
// tilt поворачивает силуэт вокруг центра.
func Ship(x, y, width, height, tilt float64, down bool) []Point {
	hw, hh := width/2, height/2
	dir := -1.0
	if down {
		dir = 1
	}
	local := []Point{
		{0, dir * hh},
		{hw, -dir * hh},
		{0, -dir * hh * 0.4},
		{-hw, -dir * hh},
	}
	return transform(local, x, y, tilt)
}

// Boss - шестиугольник, вытянутый по ширине.
func Boss(x, y, width, height float64) []Point {
	hw, hh := width/2, height/2
	return []Point{
		{x - hw*0.5, y - hh},
		{x + hw*0.5, y - hh},
		{x + hw, y},
		{x + hw*0.5, y + hh},
		{x - hw*0.5, y + hh},
		{x - hw, y},
	}
}

func transform(local []Point, x, y, angle float64) []Point {
	sin, cos := math.Sincos(angle)
	out := make([]Point, len(local))
	for i, p := range local {
		out[i] = Point{
			X: x + p.X*cos - p.Y*sin,
			Y: y + p.X*sin + p.Y*cos,
		}
	}
	return out
}

// Star - точка звёздного неба.
type Star struct {
	X, Y  float64
	Size  float64
	Alpha float64
}

// Stars раскладывает звёзды по экрану. Один и тот же seed даёт то же небо.
func Stars(n int, seed int64) []Star {
	rng := utils.NewPRNGService(seed)
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:     rng.Float64() * config.ScreenWidth,
			Y:     rng.Float64() * config.ScreenHeight,
			Size:  0.5 + rng.Float64()*1.5,
			Alpha: 0.2 + rng.Float64()*0.6,
		}
	}
	return stars
}

// ShakeOffset возвращает смещение кадра в пределах [-shake/2, shake/2].
func ShakeOffset(shake float64, rng utils.Rand) (float64, float64) {
	if shake < 0.5 {
		return 0, 0
	}
	dx := rng.Float64()*shake - shake/2
	dy := rng.Float64()*shake - shake/2
	return dx, dy
}
