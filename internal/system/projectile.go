// internal/system/projectile.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"
	"math"
)

// MissileSystem управляет самонаводящимися ракетами "boom":
// залпы, наведение, попадания и отскоки.
type MissileSystem struct {
	world           *entity.World
	balance         *defs.Balance
	eventDispatcher *event.Dispatcher
	rng             utils.Rand
	effects         *VisualEffectSystem
}

func NewMissileSystem(world *entity.World, balance *defs.Balance, eventDispatcher *event.Dispatcher, rng utils.Rand, effects *VisualEffectSystem) *MissileSystem {
	return &MissileSystem{
		world:           world,
		balance:         balance,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		effects:         effects,
	}
}

// UpdateBooms отсчитывает запланированные залпы и стреляет автоматически,
// как только заряд готов.
func (s *MissileSystem) UpdateBooms(deltaTime float64) {
	sess := s.world.Session
	if len(sess.PendingBooms) > 0 {
		rest := sess.PendingBooms[:0]
		due := 0
		for _, d := range sess.PendingBooms {
			d -= deltaTime
			if d <= 0 {
				due++
				continue
			}
			rest = append(rest, d)
		}
		sess.PendingBooms = rest
		for i := 0; i < due; i++ {
			sess.BoomCharged = true
			s.FireVolley()
		}
	}
	if sess.BoomCharged {
		s.FireVolley()
	}
}

// ScheduleVolleys планирует count залпов с интервалом gapMs.
// Первый залп уходит на следующем тике.
func (s *MissileSystem) ScheduleVolleys(count int, gapMs float64) {
	for i := 0; i < count; i++ {
		s.world.Session.PendingBooms = append(s.world.Session.PendingBooms, float64(i)*gapMs)
	}
}

// FireVolley выпускает залп, если заряд готов. Каждая ракета игрока
// получает свою случайную цель, пока цели не закончатся.
func (s *MissileSystem) FireVolley() bool {
	sess := s.world.Session
	if !sess.BoomCharged || sess.GameOver {
		return false
	}
	p := s.world.Player
	mb := s.balance.Missile
	speed := perMs(mb.Speed)

	type candidate struct {
		id   types.EntityID
		boss bool
	}
	var pool []candidate
	s.world.Enemies.Each(func(id types.EntityID, e *component.Enemy) {
		if e.Alive() {
			pool = append(pool, candidate{id: id})
		}
	})
	if s.world.Boss != nil {
		pool = append(pool, candidate{boss: true})
	}

	total := 1 + p.Rays()/2
	for i := 0; i < total; i++ {
		m := component.NewMissile(p.X, p.Y, speed, false)
		if len(pool) > 0 {
			k := s.rng.Intn(len(pool))
			c := pool[k]
			pool = append(pool[:k], pool[k+1:]...)
			if c.boss {
				m.Target = component.TargetBoss
			} else {
				m.Target = component.TargetEnemy
				m.TargetID = c.id
			}
		} else {
			s.findTarget(m)
		}
		s.world.Missiles.Add(m)
	}

	sess.BoomCharged = false
	sess.BoomTimer = 0
	playSound(s.eventDispatcher, defs.SoundExplosion)

	chance := mb.AllyChance
	if s.world.Boss != nil {
		chance = mb.AllyChanceBoss
	}
	for _, a := range s.world.Allies {
		if s.rng.Float64() < chance {
			m := component.NewMissile(a.X, a.Y, speed, true)
			s.findTarget(m)
			s.world.Missiles.Add(m)
		}
	}
	return true
}

// findTarget выбирает босса, а без него - ближайшего живого врага,
// в которого ракета ещё не попадала.
func (s *MissileSystem) findTarget(m *component.Missile) {
	if s.world.Boss != nil {
		m.Target = component.TargetBoss
		return
	}
	m.Target = component.TargetNone
	m.TargetID = types.NoEntity
	best := math.Inf(1)
	s.world.Enemies.Each(func(id types.EntityID, e *component.Enemy) {
		if !e.Alive() || m.HitEnemies[id] {
			return
		}
		if d := m.DistSq(e.Position); d < best {
			best = d
			m.Target = component.TargetEnemy
			m.TargetID = id
		}
	})
}

// targetPosition возвращает позицию цели, если она ещё существует.
func (s *MissileSystem) targetPosition(m *component.Missile) (component.Position, bool) {
	switch m.Target {
	case component.TargetBoss:
		if s.world.Boss != nil {
			return s.world.Boss.Position, true
		}
	case component.TargetEnemy:
		if e, ok := s.world.Enemies.Get(m.TargetID); ok && e.Alive() {
			return e.Position, true
		}
	}
	return component.Position{}, false
}

func (s *MissileSystem) Update(deltaTime float64) {
	mb := s.balance.Missile
	s.world.Missiles.Each(func(_ types.EntityID, m *component.Missile) {
		if m.Bounces >= s.world.Session.MaxMissileBounces {
			return
		}
		if pos, ok := s.targetPosition(m); ok {
			want := math.Atan2(pos.Y-m.Y, pos.X-m.X)
			m.Angle = utils.TurnToward(m.Angle, want, mb.TurnRate*deltaTime)
		} else {
			s.findTarget(m)
		}

		m.X += math.Cos(m.Angle) * m.Speed * deltaTime
		m.Y += math.Sin(m.Angle) * m.Speed * deltaTime

		if pos, ok := s.targetPosition(m); ok && m.DistSq(pos) < mb.HitRadiusSq {
			s.hit(m)
		}
	})
}

// Damage - базовый урон ракеты до множителей цели.
func (s *MissileSystem) Damage() float64 {
	p := s.world.Player
	base := ComputeDamage(s.balance.MissileCurve, DamageInputs{
		Level:            p.Level,
		BossCount:        s.world.Session.BossCount,
		DamageMultiplier: p.DamageMultiplier,
	})
	return base * s.world.Session.BoomDamageMultiplier
}

func (s *MissileSystem) hit(m *component.Missile) {
	mb := s.balance.Missile
	p := s.world.Player
	sess := s.world.Session
	damage := s.Damage()

	p.Heal(mb.Heal)

	if m.Target == component.TargetBoss {
		b := s.world.Boss
		damage *= mb.BossMultiplier
		if m.Ally {
			damage *= s.balance.Boss.AllyResist
		} else {
			damage *= s.balance.Boss.PlayerResist
		}
		b.HP -= damage
		m.HitBoss = true
		m.Bounces = sess.MaxMissileBounces
		if b.HP <= 0 {
			p.Heal(mb.BossKillHeal)
		}
	} else {
		e, _ := s.world.Enemies.Get(m.TargetID)
		e.HP -= damage
		if !e.Alive() {
			s.world.Kills = append(s.world.Kills, m.TargetID)
		} else {
			s.effects.Explode(m.X, m.Y, false)
		}
		m.HitEnemies[m.TargetID] = true
		m.Bounces++
	}

	s.effects.DamageNumber(m.X, m.Y, damage, true)

	if m.Bounces < sess.MaxMissileBounces {
		s.findTarget(m)
		if m.Target == component.TargetNone {
			m.Bounces = sess.MaxMissileBounces
		}
	}
}
