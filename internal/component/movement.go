// component/movement.go
package component

import "math"

// Position - компонент позиции
type Position struct {
	X, Y float64
}

// Velocity - скорость в пикселях за миллисекунду
type Velocity struct {
	VX, VY float64
}

// DistSq возвращает квадрат расстояния между двумя позициями.
func (p Position) DistSq(o Position) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// VelocityFromAngle строит скорость из угла и скорости "за кадр".
func VelocityFromAngle(angle, speedPerFrame, frameUnitMs float64) Velocity {
	perMs := speedPerFrame / frameUnitMs
	return Velocity{VX: math.Cos(angle) * perMs, VY: math.Sin(angle) * perMs}
}
