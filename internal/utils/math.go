// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// TurnToward поворачивает угол from к to по кратчайшей дуге на долю t (0..1).
func TurnToward(from, to, t float64) float64 {
	diff := NormalizeAngle(to - from)
	return from + diff*math.Min(1, t)
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FrameLerp переводит коэффициент сглаживания "за эталонный кадр"
// в коэффициент для произвольного dt: 1 - (1-l)^(dt/frame).
func FrameLerp(l, dt, frameUnit float64) float64 {
	return 1 - math.Pow(1-l, dt/frameUnit)
}

// FormatNumber сокращает большие числа: 1.5k, 2m, 3.1b.
func FormatNumber(v float64) string {
	switch {
	case v >= 1e9:
		return trimZero(v/1e9) + "b"
	case v >= 1e6:
		return trimZero(v/1e6) + "m"
	case v >= 1e3:
		return trimZero(v/1e3) + "k"
	}
	return formatInt(math.Floor(v))
}
