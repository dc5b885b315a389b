// internal/system/movement.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/types"
)

// MovementSystem двигает пули и падающие бонусы по прямой.
type MovementSystem struct {
	world   *entity.World
	balance *defs.Balance
}

func NewMovementSystem(world *entity.World, balance *defs.Balance) *MovementSystem {
	return &MovementSystem{world: world, balance: balance}
}

func (s *MovementSystem) Update(deltaTime float64) {
	s.world.Bullets.Each(func(_ types.EntityID, b *component.Bullet) {
		b.X += b.VX * deltaTime
		b.Y += b.VY * deltaTime
	})

	fall := perMs(s.balance.Loot.FallSpeed) * deltaTime
	s.world.PowerUps.Each(func(_ types.EntityID, p *component.PowerUp) {
		p.Y += fall
	})
}
