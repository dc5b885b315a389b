package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
)

// CleanupSystem помечает отжившие сущности и в конце тика освобождает слоты.
type CleanupSystem struct {
	world *entity.World
}

func NewCleanupSystem(world *entity.World) *CleanupSystem {
	return &CleanupSystem{world: world}
}

func (s *CleanupSystem) Update() {
	w := s.world
	margin := config.OffscreenMargin

	w.Bullets.RemoveIf(func(b *component.Bullet) bool {
		return offscreen(b.Position, margin)
	})
	w.Enemies.RemoveIf(func(e *component.Enemy) bool {
		return e.Y >= config.ScreenHeight || !e.Alive()
	})
	maxBounces := w.Session.MaxMissileBounces
	w.Missiles.RemoveIf(func(m *component.Missile) bool {
		return m.Bounces >= maxBounces || offscreen(m.Position, margin)
	})
	w.Explosions.RemoveIf(func(e *component.Explosion) bool {
		return e.Life <= 0
	})
	w.DamageNumbers.RemoveIf(func(d *component.DamageNumber) bool {
		return d.Life <= 0
	})
	w.PowerUps.RemoveIf(func(p *component.PowerUp) bool {
		return p.Y >= config.ScreenHeight
	})

	w.Sweep()
}
