// internal/entity/world.go
package entity

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/types"
)

// World владеет всеми сущностями одной игровой сессии.
type World struct {
	Player  *component.Player
	Session *component.Session
	Boss    *component.Boss

	// Allies упорядочены по времени появления, урон принимает последний
	Allies []*component.Ally

	Enemies       *Store[component.Enemy]
	Bullets       *Store[component.Bullet]
	Missiles      *Store[component.Missile]
	PowerUps      *Store[component.PowerUp]
	Explosions    *Store[component.Explosion]
	DamageNumbers *Store[component.DamageNumber]

	// Kills - враги, убитые уроном в этом кадре; награда выдаётся в фазе наград
	Kills []types.EntityID
}

// NewWorld создаёт мир в начальном состоянии сессии.
func NewWorld(b *defs.Balance) *World {
	w := &World{
		Enemies:       NewStore[component.Enemy](),
		Bullets:       NewStore[component.Bullet](),
		Missiles:      NewStore[component.Missile](),
		PowerUps:      NewStore[component.PowerUp](),
		Explosions:    NewStore[component.Explosion](),
		DamageNumbers: NewStore[component.DamageNumber](),
	}
	w.Reset(b)
	return w
}

// Reset возвращает игрока и сессию к стартовым значениям и очищает поле.
func (w *World) Reset(b *defs.Balance) {
	pb := b.Player
	w.Player = &component.Player{
		Position:         component.Position{X: config.ScreenWidth / 2, Y: config.ScreenHeight - pb.BottomOffset},
		Width:            pb.Size,
		Height:           pb.Size,
		TargetX:          config.ScreenWidth / 2,
		TargetY:          config.ScreenHeight - pb.BottomOffset,
		HP:               pb.StartHP,
		MaxHP:            pb.StartHP,
		Level:            pb.StartWeaponLevel,
		DamageMultiplier: 1,
		AllyDamageRatio:  pb.StartAllyRatio,
	}
	w.Session = &component.Session{
		Difficulty:           1,
		Level:                1,
		LastLevel:            1,
		NextBossScore:        b.Boss.FirstBossScore,
		UDropModifier:        1,
		BoomCharged:          true,
		BoomChargeMs:         b.Missile.ChargeMs,
		MaxMissileBounces:    b.Missile.StartBounces,
		BoomDamageMultiplier: b.Missile.StartDamageMultiplier,
	}
	w.Boss = nil
	w.Allies = nil
	w.Kills = nil
	w.Enemies.Clear()
	w.Bullets.Clear()
	w.Missiles.Clear()
	w.PowerUps.Clear()
	w.Explosions.Clear()
	w.DamageNumbers.Clear()
}

// AddAlly добавляет союзника, если не превышен лимит.
func (w *World) AddAlly(hpRatio float64) bool {
	if len(w.Allies) >= config.MaxAllies {
		return false
	}
	w.Allies = append(w.Allies, component.NewAlly(w.Player, hpRatio))
	return true
}

// FillAllies добирает союзников до count.
func (w *World) FillAllies(count int, hpRatio float64) {
	for len(w.Allies) < count {
		if !w.AddAlly(hpRatio) {
			return
		}
	}
}

// PopAlly убирает последнего союзника.
func (w *World) PopAlly() *component.Ally {
	n := len(w.Allies)
	if n == 0 {
		return nil
	}
	a := w.Allies[n-1]
	w.Allies[n-1] = nil
	w.Allies = w.Allies[:n-1]
	return a
}

// Sweep освобождает все помеченные на удаление слоты.
func (w *World) Sweep() {
	w.Enemies.Sweep()
	w.Bullets.Sweep()
	w.Missiles.Sweep()
	w.PowerUps.Sweep()
	w.Explosions.Sweep()
	w.DamageNumbers.Sweep()
	w.Kills = w.Kills[:0]
}
