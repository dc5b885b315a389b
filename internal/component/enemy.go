package component

import "go-space-shooter/internal/defs"

// Enemy представляет вражескую сущность.
// HP фиксируется при появлении и дальше не пересчитывается.
type Enemy struct {
	Position
	Type          defs.EnemyType
	Width, Height float64
	HP, MaxHP     float64
	Speed         float64
	VX            float64 // пикселей за мс, только для medium

	FireTimer   float64
	BulletCount int

	EntryTimer     float64
	DashDurationMs float64
	StartY         float64
	DashTargetY    float64

	Tank   bool
	Minion bool

	// ContactDisplay - урон столкновения для подписи в интерфейсе
	ContactDisplay int
	// Rewarded выставляется после начисления очков и дропа
	Rewarded bool
}

// EntryShielded сообщает, действует ли защита рывка при входе.
func (e *Enemy) EntryShielded() bool {
	return e.EntryTimer < e.DashDurationMs && e.Y < e.DashTargetY
}

func (e *Enemy) Alive() bool {
	return e.HP > 0
}

func (e *Enemy) HPFraction() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return e.HP / e.MaxHP
}
