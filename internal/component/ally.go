package component

import "math"

// Ally - союзный корабль, прикрывающий игрока.
type Ally struct {
	Position
	Width, Height float64
	HP, MaxHP     float64
	FireTimer     float64
}

// NewAlly создаёт союзника на позиции игрока с долей его здоровья.
func NewAlly(p *Player, hpRatio float64) *Ally {
	maxHP := p.MaxHP * hpRatio
	return &Ally{
		Position: p.Position,
		Width:    20,
		Height:   20,
		HP:       maxHP,
		MaxHP:    maxHP,
	}
}

// SyncMaxHP пересчитывает максимум и пропорционально масштабирует HP.
func (a *Ally) SyncMaxHP(target float64) {
	if a.MaxHP == target || a.MaxHP <= 0 {
		a.MaxHP = target
		return
	}
	ratio := target / a.MaxHP
	a.MaxHP = target
	a.HP *= ratio
}

func (a *Ally) Heal(amount float64) {
	a.HP = math.Min(a.MaxHP, a.HP+amount)
}
