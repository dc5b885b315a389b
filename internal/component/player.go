// internal/component/player.go
package component

import "math"

// Player хранит состояние корабля игрока.
// Инвариант: 0 <= HP <= MaxHP, Shield >= 0, WeaponTier в [0, 2].
type Player struct {
	Position
	Width, Height float64

	// Цель указателя, к которой плавно движется корабль
	TargetX, TargetY float64
	Touch            bool
	Tilt             float64

	HP, MaxHP float64
	Shield    float64

	// Level - непрерывный уровень оружия, задаёт число лучей
	Level      float64
	WeaponTier int

	DamageMultiplier    float64
	PermDamageReduction float64
	AllyDamageRatio     float64
	BossKillDamageBonus float64

	FireTimer float64

	// Таймеры эффектов в миллисекундах
	ImmunityTimer        float64
	HasteTimer           float64
	DamageReductionTimer float64
	SlowTimer            float64
	JammedTimer          float64
}

// Rays возвращает число лучей без ограничения тира.
func (p *Player) Rays() int {
	return int(math.Floor(p.Level*2 + 1))
}

func (p *Player) HPFraction() float64 {
	if p.MaxHP <= 0 {
		return 0
	}
	return p.HP / p.MaxHP
}

// Heal восстанавливает здоровье, не превышая максимум.
func (p *Player) Heal(amount float64) {
	p.HP = math.Min(p.MaxHP, p.HP+amount)
}
