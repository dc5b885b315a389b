package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/utils"
	"math"
)

// BossMaxHP считает HP босса с индексом bossCount (0 - первый).
// Та же функция даёт прогноз HP следующего босса в интерфейсе.
func BossMaxHP(bb defs.BossBalance, bossCount int, accumulated float64) (hp float64, super bool) {
	super = (bossCount+1)%bb.SuperEvery == 0
	step := bb.EarlyStep
	if bossCount >= 1 {
		step = bb.LateStep
	}
	hp = bb.BaseHP + float64(bossCount)*step + accumulated
	if super {
		hp *= bb.SuperHP
	}
	if bossCount >= 1 {
		hp *= bb.LateInflation
	}
	return hp, super
}

// BossSystem ведёт босса: спуск, колебания, огонь, дебафф-залпы
// и волны понижения у супер-босса.
type BossSystem struct {
	world   *entity.World
	balance *defs.Balance
	rng     utils.Rand
}

func NewBossSystem(world *entity.World, balance *defs.Balance, rng utils.Rand) *BossSystem {
	return &BossSystem{world: world, balance: balance, rng: rng}
}

// Spawn создаёт босса над экраном и делает его текущим.
func (s *BossSystem) Spawn() *component.Boss {
	bb := s.balance.Boss
	sess := s.world.Session
	hp, super := BossMaxHP(bb, sess.BossCount, sess.AccumulatedBossHP)

	w, h := bb.Width, bb.Height
	if super {
		w *= bb.SuperSize
		h *= bb.SuperSize
	}
	b := &component.Boss{
		Position:        component.Position{X: config.ScreenWidth / 2, Y: bb.SpawnY},
		Width:           w,
		Height:          h,
		HP:              hp,
		MaxHP:           hp,
		Super:           super,
		TargetY:         config.ScreenHeight / bb.TargetYDivisor,
		ProtectionTimer: bb.ProtectionMs,
		Thresholds:      append([]float64(nil), bb.Thresholds...),
		Triggered:       make([]bool, len(bb.Thresholds)),
	}
	s.world.Boss = b
	return b
}

func (s *BossSystem) Update(deltaTime float64) {
	b := s.world.Boss
	if b == nil || b.HP <= 0 {
		return
	}
	bb := s.balance.Boss

	if b.ProtectionTimer > 0 {
		b.ProtectionTimer -= deltaTime
	}

	if b.Descending() {
		speed := bb.SlowArrival
		if b.ProtectionTimer > bb.ProtectionMs-bb.FastArrivalMs {
			speed = bb.FastArrival
		}
		b.Y += speed * frames(deltaTime)
	} else {
		b.MoveTimer += deltaTime
		b.X = config.ScreenWidth/2 + math.Sin(b.MoveTimer/bb.OscillationMs)*(config.ScreenWidth/bb.OscillationDiv)
	}

	if b.Super {
		s.checkThresholds(b)
	}

	b.FireTimer += deltaTime
	if b.FireTimer > s.FireInterval(b) {
		s.fire(b)
		b.FireTimer = 0
	}

	b.DebuffTimer += deltaTime
	if b.DebuffTimer > bb.DebuffIntervalMs {
		s.debuffBurst(b)
		b.DebuffTimer = 0
	}
}

// checkThresholds выпускает волну понижения за каждый пересечённый порог.
// Каждый порог срабатывает не больше одного раза.
func (s *BossSystem) checkThresholds(b *component.Boss) {
	frac := b.HPFraction()
	for i, t := range b.Thresholds {
		if frac <= t && !b.Triggered[i] {
			b.Triggered[i] = true
			s.downgradeWave(b)
		}
	}
}

func (s *BossSystem) downgradeWave(b *component.Boss) {
	bb := s.balance.Boss
	for i := 0; i < bb.DowngradeRays; i++ {
		angle := float64(i) / float64(bb.DowngradeRays) * 2 * math.Pi
		s.world.Bullets.Add(&component.Bullet{
			Position: b.Position,
			Velocity: component.VelocityFromAngle(angle, s.balance.Enemy.BulletSpeed*bb.DowngradeSpeed, config.FrameUnitMs),
			Kind:     component.BulletDowngrade,
			Radius:   bb.SpecialRadius,
		})
	}
}

// FireInterval - интервал основного залпа босса в мс.
func (s *BossSystem) FireInterval(b *component.Boss) float64 {
	bb := s.balance.Boss
	interval := bb.BaseFireIntervalMs / (1 + float64(min(bb.FireBossCap, s.world.Session.BossCount))*bb.FireBossScale)
	if b.Super {
		interval *= bb.SuperFireFactor
	}
	return math.Max(bb.MinFireIntervalMs, interval)
}

func (s *BossSystem) fire(b *component.Boss) {
	bb := s.balance.Boss
	eb := s.balance.Enemy
	spread := bb.Spread
	if b.Super {
		spread = bb.SuperSpread
	}
	for i := -spread; i <= spread; i++ {
		fi := float64(i)
		s.world.Bullets.Add(&component.Bullet{
			Position: component.Position{X: b.X + fi*bb.BulletSpacing, Y: b.Y + bb.BulletOffsetY},
			Velocity: component.VelocityFromAngle(math.Pi/2+fi*bb.BulletAngleStep, eb.BulletSpeed, config.FrameUnitMs),
			Kind:     component.BulletEnemy,
			Damage:   eb.BulletDamage,
			Radius:   eb.BulletRadius,
		})
	}
}

func (s *BossSystem) debuffBurst(b *component.Boss) {
	bb := s.balance.Boss
	for i := 0; i < bb.DebuffRays; i++ {
		angle := float64(i)/float64(bb.DebuffRays)*2*math.Pi + b.MoveTimer/bb.DebuffSpinMs
		s.world.Bullets.Add(&component.Bullet{
			Position: b.Position,
			Velocity: component.VelocityFromAngle(angle, s.balance.Enemy.BulletSpeed, config.FrameUnitMs),
			Kind:     component.BulletDebuff,
			Radius:   bb.SpecialRadius,
			Cyan:     s.rng.Float64() < bb.CyanChance,
		})
	}
}

// TakeDamage наносит боссу урон, уже учитывающий сопротивление.
// Во время защиты появления проходит только ProtectionFactor.
func (s *BossSystem) TakeDamage(amount float64) float64 {
	b := s.world.Boss
	if b == nil {
		return 0
	}
	if b.Protected() {
		amount *= s.balance.Boss.ProtectionFactor
	}
	b.HP -= amount
	return amount
}

// Resist возвращает долю урона, которую пропускает босс.
func (s *BossSystem) Resist(ally bool) float64 {
	if ally {
		return s.balance.Boss.AllyResist
	}
	return s.balance.Boss.PlayerResist
}
