// internal/render/color.go
package render

import "image/color"

// Quality выбирает уровень детализации отрисовки.
type Quality int

const (
	QualityHigh Quality = iota
	QualityLow
)

// ParseQuality переводит значение настройки в Quality; неизвестное значение - High.
func ParseQuality(s string) Quality {
	if s == "low" {
		return QualityLow
	}
	return QualityHigh
}

// DarkenColor уменьшает яркость цвета вдвое.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha масштабирует прозрачность цвета. Каналы premultiplied, поэтому масштабируются все.
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// Lerp смешивает два цвета.
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
