package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"
	"math"
)

// EnemySystem создаёт обычных врагов, двигает их и ведёт их огонь.
type EnemySystem struct {
	world   *entity.World
	balance *defs.Balance
	rng     utils.Rand
}

func NewEnemySystem(world *entity.World, balance *defs.Balance, rng utils.Rand) *EnemySystem {
	return &EnemySystem{world: world, balance: balance, rng: rng}
}

// SnapshotHP считает HP врага по текущей силе оружия игрока.
// Значение фиксируется при появлении и дальше не меняется.
func (s *EnemySystem) SnapshotHP(t defs.EnemyType, tank bool) float64 {
	eb := s.balance.Enemy
	p := s.world.Player
	sess := s.world.Session

	curve := s.balance.EnemyCurve
	ratio := ComputeDamage(curve, DamageInputs{Level: p.Level, Tier: p.WeaponTier}) / curve.Base
	mult := 1 + (ratio-1)*eb.HPRatioMultiplier
	if p.Level > 1 {
		mult += eb.HPGrowthBonus
	}
	if tank {
		mult *= eb.TankHP
	}

	base := eb.SmallHP
	if t == defs.EnemyMedium {
		base = eb.MediumHP
	}
	return base * sess.Difficulty * mult * EnemyPowerScale(eb.LevelScale, sess.Level)
}

// Spawn создаёт врага. Миньоны никогда не бывают танками.
func (s *EnemySystem) Spawn(x, y float64, t defs.EnemyType, minion bool) types.EntityID {
	eb := s.balance.Enemy
	sess := s.world.Session

	tank := !minion && s.rng.Float64() < eb.TankChance

	size := eb.SmallSize
	speed := eb.SmallSpeed
	if t == defs.EnemyMedium {
		size = eb.MediumSize
		speed = eb.MediumSpeed
	}
	if tank {
		size *= eb.TankSize
	}
	speed += float64(sess.Level-1) * eb.LevelSpeedBonus
	if tank {
		speed *= eb.TankSpeed
	}

	vx := 0.0
	if t == defs.EnemyMedium {
		vx = perMs(eb.MediumVX)
		if s.rng.Float64() <= 0.5 {
			vx = -vx
		}
	}

	hp := s.SnapshotHP(t, tank)
	e := &component.Enemy{
		Position:       component.Position{X: x, Y: y},
		Type:           t,
		Width:          size,
		Height:         size,
		HP:             hp,
		MaxHP:          hp,
		Speed:          perMs(speed),
		VX:             vx,
		FireTimer:      s.rng.Float64() * eb.InitialFireJitterMs,
		BulletCount:    1,
		DashDurationMs: eb.DashDurationMs,
		StartY:         y,
		DashTargetY:    config.ScreenHeight / eb.DashTargetDivisor,
		Tank:           tank,
		Minion:         minion,
		ContactDisplay: int(math.Floor(eb.ContactDisplayBase * EnemyPowerScale(s.balance.Player.EnemyPowerBase, sess.Level))),
	}
	if s.world.Player.Rays() > eb.FanRayThreshold && s.rng.Float64() < eb.FanChance {
		e.BulletCount = s.rng.Intn(eb.FanMaxBullets) + 1
	}
	return s.world.Enemies.Add(e)
}

func (s *EnemySystem) Update(deltaTime float64) {
	s.world.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		if !e.Alive() {
			return
		}
		s.move(e, deltaTime)
		e.FireTimer += deltaTime
		if e.FireTimer > s.FireInterval(e) {
			s.fire(e)
			e.FireTimer = 0
		}
	})
}

func (s *EnemySystem) move(e *component.Enemy, deltaTime float64) {
	e.EntryTimer += deltaTime
	if e.EntryTimer < e.DashDurationMs && e.Y < e.DashTargetY {
		progress := e.EntryTimer / e.DashDurationMs
		e.Y = e.StartY + (e.DashTargetY-e.StartY)*progress
	} else {
		e.Y += e.Speed * deltaTime
	}

	e.X += e.VX * deltaTime
	if e.Type == defs.EnemyMedium {
		margin := s.balance.Enemy.BounceMargin
		if e.X < margin || e.X > config.ScreenWidth-margin {
			e.VX = -e.VX
		}
	}
}

// FireInterval - интервал между выстрелами врага в мс.
func (s *EnemySystem) FireInterval(e *component.Enemy) float64 {
	eb := s.balance.Enemy
	sess := s.world.Session

	levelBonus := float64(min(eb.LevelFireCap, sess.Level)-1) * eb.LevelFireBonus
	base := eb.BaseFireIntervalMs / (1 + (sess.Difficulty-1)*eb.DifficultyFireScale)
	interval := math.Max(eb.MinFireIntervalMs, base/(1+levelBonus))
	if e.BulletCount > 1 {
		interval *= eb.FanFireSlowdown
	}
	return interval
}

func (s *EnemySystem) fire(e *component.Enemy) {
	eb := s.balance.Enemy
	x, y := e.X, e.Y+e.Height/2

	switch {
	case e.BulletCount > 1:
		start := math.Pi/2 - eb.FanSpread/2
		for i := 0; i < e.BulletCount; i++ {
			step := float64(i) / float64(e.BulletCount-1)
			s.addBullet(x, y, start+step*eb.FanSpread)
		}
	case e.Type == defs.EnemyMedium:
		s.addBullet(x, y, math.Pi/2)
	default:
		p := s.world.Player
		s.addBullet(x, y, math.Atan2(p.Y-e.Y, p.X-e.X))
	}
}

func (s *EnemySystem) addBullet(x, y, angle float64) {
	eb := s.balance.Enemy
	s.world.Bullets.Add(&component.Bullet{
		Position: component.Position{X: x, Y: y},
		Velocity: component.VelocityFromAngle(angle, eb.BulletSpeed, config.FrameUnitMs),
		Kind:     component.BulletEnemy,
		Damage:   eb.BulletDamage,
		Radius:   eb.BulletRadius,
	})
}

// Reduction - доля урона, которую враг сейчас поглощает.
func (s *EnemySystem) Reduction(e *component.Enemy) float64 {
	r := 0.0
	if e.EntryShielded() {
		r = s.balance.Enemy.EntryReduction
	}
	if s.world.Boss != nil && e.Type == defs.EnemyMedium {
		r = math.Max(r, s.balance.Enemy.BossPresenceReduction)
	}
	return r
}

// TakeDamage наносит урон с учётом защиты и возвращает фактический урон.
func (s *EnemySystem) TakeDamage(e *component.Enemy, amount float64) float64 {
	applied := amount * (1 - s.Reduction(e))
	e.HP -= applied
	return applied
}
