package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/types"
	"math"
)

// VisualEffectSystem управляет взрывами, числами урона и тряской экрана.
type VisualEffectSystem struct {
	world           *entity.World
	balance         *defs.Balance
	eventDispatcher *event.Dispatcher
}

func NewVisualEffectSystem(world *entity.World, balance *defs.Balance, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	return &VisualEffectSystem{world: world, balance: balance, eventDispatcher: eventDispatcher}
}

// Update обновляет таймеры эффектов. Удаление истёкших делает CleanupSystem.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	s.world.Explosions.Each(func(_ types.EntityID, e *component.Explosion) {
		e.Life -= deltaTime
	})
	s.world.DamageNumbers.Each(func(_ types.EntityID, d *component.DamageNumber) {
		d.Life -= deltaTime
		d.Y += d.VY * deltaTime
	})

	sess := s.world.Session
	if sess.Shake > 0 {
		sess.Shake *= math.Pow(s.balance.Combat.ShakeDecay, frames(deltaTime))
	}
}

// Explode создаёт взрыв и звук; shake встряхивает экран.
func (s *VisualEffectSystem) Explode(x, y float64, shake bool) {
	life := s.balance.Combat.ExplosionLifeMs
	s.world.Explosions.Add(&component.Explosion{
		Position: component.Position{X: x, Y: y},
		Life:     life,
		MaxLife:  life,
	})
	if shake {
		s.Shake(s.balance.Combat.ExplosionShake)
	}
	playSound(s.eventDispatcher, defs.SoundExplosion)
}

// Shake выставляет силу тряски.
func (s *VisualEffectSystem) Shake(amount float64) {
	s.world.Session.Shake = amount
}

// DamageNumber показывает всплывающее число урона.
func (s *VisualEffectSystem) DamageNumber(x, y, amount float64, crit bool) {
	c := s.balance.Combat
	s.world.DamageNumbers.Add(&component.DamageNumber{
		Position: component.Position{X: x, Y: y - c.DamageNumberOffsetY},
		Amount:   math.Ceil(amount),
		Crit:     crit,
		Life:     c.DamageNumberLifeMs,
		MaxLife:  c.DamageNumberLifeMs,
		VY:       -perMs(c.DamageNumberRise),
	})
}
