package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/utils"
	"math"
)

// AllySystem держит союзников в строю вокруг игрока и стреляет за них.
type AllySystem struct {
	world   *entity.World
	balance *defs.Balance
}

func NewAllySystem(world *entity.World, balance *defs.Balance) *AllySystem {
	return &AllySystem{world: world, balance: balance}
}

// triangle - построение для ровно трёх союзников
var triangle = [3]component.Position{{X: -50, Y: -10}, {X: 50, Y: -10}, {X: 0, Y: 35}}

// FormationOffset возвращает смещение союзника относительно игрока.
func FormationOffset(index, count int) component.Position {
	if count == 3 && index < 3 {
		return triangle[index]
	}
	col := float64(index / 2)
	dx := 45 + col*15
	if index%2 == 0 {
		dx = -dx
	}
	return component.Position{X: dx, Y: -5 + col*25}
}

func (s *AllySystem) Update(deltaTime float64) {
	p := s.world.Player
	ab := s.balance.Ally
	count := len(s.world.Allies)
	factor := utils.FrameLerp(ab.Lerp, deltaTime, config.FrameUnitMs)

	for i, a := range s.world.Allies {
		off := FormationOffset(i, count)
		a.X += (p.X + off.X - a.X) * factor
		a.Y += (p.Y + off.Y - a.Y) * factor

		a.SyncMaxHP(p.MaxHP * ab.HPRatio)

		a.FireTimer += deltaTime
		if a.FireTimer > s.fireInterval() {
			s.fire(a, i, count)
			a.FireTimer = 0
		}
	}
}

func (s *AllySystem) fireInterval() float64 {
	ab := s.balance.Ally
	levelBonus := float64(s.world.Session.Level-1) * s.balance.Player.LevelFireBonus
	return ab.BaseFireIntervalMs / (1 + levelBonus) * ab.FireIntervalFactor
}

// Damage - урон одной пули союзника.
func (s *AllySystem) Damage() float64 {
	p := s.world.Player
	base := ComputeDamage(s.balance.AllyCurve, DamageInputs{
		Level:     p.Level,
		BossCount: s.world.Session.BossCount,
	})
	return base * p.AllyDamageRatio
}

func (s *AllySystem) fire(a *component.Ally, index, count int) {
	ab := s.balance.Ally
	p := s.world.Player
	rays := p.WeaponTier + 1

	var base float64
	switch {
	case s.world.Boss != nil:
		base = math.Atan2(s.world.Boss.Y-a.Y, s.world.Boss.X-a.X)
	case count == 3 && index == 2:
		base = -math.Pi / 2
	default:
		side := ab.SideAngle
		if index%2 == 0 {
			side = -side
		}
		base = -math.Pi/2 + side*float64(index/2+1)
	}

	damage := s.Damage()
	for i := 0; i < rays; i++ {
		offset := 0.0
		if rays > 1 {
			offset = (float64(i) - float64(rays-1)/2) * ab.Spread
		}
		s.world.Bullets.Add(&component.Bullet{
			Position: a.Position,
			Velocity: component.VelocityFromAngle(base+offset, s.balance.Player.BulletSpeed, config.FrameUnitMs),
			Kind:     component.BulletPlayer,
			Damage:   damage,
			Radius:   ab.BulletRadius,
			Ally:     true,
			Tier:     p.WeaponTier,
		})
	}
}
