package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"
)

// FrameHit - суммарный урон по одной цели за кадр.
type FrameHit struct {
	Target types.EntityID // NoEntity для босса
	Boss   bool
	X, Y   float64
	Count  int
	Damage float64 // сумма до крита
	Total  float64 // с учётом крита
	Crit   bool
}

// CombatSystem разрешает столкновения снарядов и врагов с игроком.
type CombatSystem struct {
	world   *entity.World
	balance *defs.Balance
	rng     utils.Rand
	effects *VisualEffectSystem
	enemies *EnemySystem
	bosses  *BossSystem
	defense *DefenseSystem
	player  *PlayerSystem
}

func NewCombatSystem(world *entity.World, balance *defs.Balance, rng utils.Rand, effects *VisualEffectSystem,
	enemies *EnemySystem, bosses *BossSystem, defense *DefenseSystem, player *PlayerSystem) *CombatSystem {
	return &CombatSystem{
		world:   world,
		balance: balance,
		rng:     rng,
		effects: effects,
		enemies: enemies,
		bosses:  bosses,
		defense: defense,
		player:  player,
	}
}

func (s *CombatSystem) Update() {
	s.ResolvePlayerBullets()
	s.ResolveEnemyBullets()
	s.ResolveContacts()
}

// ResolvePlayerBullets сначала копит урон всех пуль по каждой цели,
// затем применяет его одним ударом с одним броском крита на цель.
func (s *CombatSystem) ResolvePlayerBullets() []FrameHit {
	var hits []*FrameHit
	index := make(map[types.EntityID]*FrameHit)
	var bossHit *FrameHit

	s.world.Bullets.Each(func(bid types.EntityID, b *component.Bullet) {
		if b.Kind != component.BulletPlayer {
			return
		}

		if id, e := s.firstEnemyAt(b.Position); e != nil {
			h := index[id]
			if h == nil {
				h = &FrameHit{Target: id, X: e.X, Y: e.Y}
				index[id] = h
				hits = append(hits, h)
			}
			h.Damage += b.Damage
			h.Count++
			s.world.Bullets.Remove(bid)
			return
		}

		boss := s.world.Boss
		if boss == nil || boss.HP <= 0 {
			return
		}
		r := boss.Width / s.balance.Boss.HitRadiusDivisor
		if b.DistSq(boss.Position) >= r*r {
			return
		}
		if bossHit == nil {
			bossHit = &FrameHit{Boss: true, X: boss.X, Y: boss.Y}
			hits = append(hits, bossHit)
		}
		bossHit.Damage += b.Damage * s.bosses.Resist(b.Ally)
		bossHit.Count++
		s.world.Bullets.Remove(bid)
	})

	cb := s.balance.Combat
	out := make([]FrameHit, 0, len(hits))
	for _, h := range hits {
		h.Total = h.Damage
		if s.rng.Float64() < cb.CritChance {
			h.Crit = true
			h.Total *= cb.CritMultiplier
		}

		if h.Boss {
			s.bosses.TakeDamage(h.Total)
		} else if e, ok := s.world.Enemies.Get(h.Target); ok {
			s.enemies.TakeDamage(e, h.Total)
			if !e.Alive() {
				s.world.Kills = append(s.world.Kills, h.Target)
			}
		}
		s.effects.DamageNumber(h.X, h.Y, h.Total, h.Crit)
		out = append(out, *h)
	}
	return out
}

// firstEnemyAt ищет первого живого врага, в круг попадания которого попала точка.
func (s *CombatSystem) firstEnemyAt(pos component.Position) (types.EntityID, *component.Enemy) {
	var hitID types.EntityID
	var hit *component.Enemy
	div := s.balance.Enemy.HitRadiusDivisor
	s.world.Enemies.Each(func(id types.EntityID, e *component.Enemy) {
		if hit != nil || !e.Alive() {
			return
		}
		r := e.Width / div
		if pos.DistSq(e.Position) < r*r {
			hitID, hit = id, e
		}
	})
	return hitID, hit
}

// ResolveEnemyBullets проверяет вражеские снаряды против игрока.
// Щит перехватывает обычные пули в широком радиусе.
func (s *CombatSystem) ResolveEnemyBullets() {
	p := s.world.Player
	eb := s.balance.Enemy

	s.world.Bullets.Each(func(id types.EntityID, b *component.Bullet) {
		if !b.Kind.Hostile() || s.world.Session.GameOver {
			return
		}
		d := b.DistSq(p.Position)

		if p.Shield > 0 && d < eb.ShieldRadiusSq {
			s.defense.TakeDamage(eb.BulletDamage)
			s.world.Bullets.Remove(id)
			return
		}
		if d >= eb.BulletHitRadiusSq {
			return
		}
		s.world.Bullets.Remove(id)

		switch b.Kind {
		case component.BulletDebuff:
			if p.ImmunityTimer <= 0 {
				p.SlowTimer = s.balance.Combat.DebuffSlowMs
				if b.Damage > 0 {
					s.defense.TakeDamage(b.Damage)
				}
			}
		case component.BulletDowngrade:
			s.player.Downgrade()
			s.effects.Explode(p.X, p.Y, true)
		default:
			s.defense.TakeDamage(b.Damage)
		}
	})
}

// ResolveContacts обрабатывает тараны и врагов, прорвавшихся вниз.
// Такие враги умирают без очков и дропа.
func (s *CombatSystem) ResolveContacts() {
	p := s.world.Player
	eb := s.balance.Enemy

	s.world.Enemies.Each(func(id types.EntityID, e *component.Enemy) {
		if !e.Alive() {
			return
		}
		if e.DistSq(p.Position) < eb.ContactRadiusSq {
			s.defense.TakeDamage(s.ContactDamage(e.Type))
			e.HP = 0
			s.effects.Explode(e.X, e.Y, true)
			s.world.Enemies.Remove(id)
			return
		}
		if e.Y >= config.ScreenHeight {
			s.defense.TakeDamage(s.ContactDamage(e.Type))
			sess := s.world.Session
			sess.Score = max(0, sess.Score-eb.EscapePenalty)
			e.HP = 0
			s.world.Enemies.Remove(id)
		}
	})
}

// ContactDamage - номинальный урон тарана для типа врага.
func (s *CombatSystem) ContactDamage(t defs.EnemyType) float64 {
	if t == defs.EnemyMedium {
		return s.balance.Enemy.MediumContactDamage
	}
	return s.balance.Enemy.SmallContactDamage
}
