package system

import "go-space-shooter/internal/entity"

// StatusEffectSystem отсчитывает таймеры баффов и дебаффов игрока.
type StatusEffectSystem struct {
	world *entity.World
}

func NewStatusEffectSystem(world *entity.World) *StatusEffectSystem {
	return &StatusEffectSystem{world: world}
}

func (s *StatusEffectSystem) Update(deltaTime float64) {
	p := s.world.Player
	tick(&p.SlowTimer, deltaTime)
	tick(&p.JammedTimer, deltaTime)
	tick(&p.ImmunityTimer, deltaTime)
	tick(&p.HasteTimer, deltaTime)
	tick(&p.DamageReductionTimer, deltaTime)
}

func tick(timer *float64, deltaTime float64) {
	if *timer > 0 {
		*timer -= deltaTime
	}
}
