// internal/system/player_system.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
	"log"
	"math"
)

// PlayerSystem двигает корабль к указателю и ведёт автоматическую стрельбу.
type PlayerSystem struct {
	world           *entity.World
	balance         *defs.Balance
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(world *entity.World, balance *defs.Balance, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{world: world, balance: balance, eventDispatcher: eventDispatcher}
}

// SetTarget задаёт точку, к которой плавно движется корабль.
func (s *PlayerSystem) SetTarget(x, y float64, touch bool) {
	p := s.world.Player
	p.TargetX = x
	p.TargetY = y
	p.Touch = touch
}

func (s *PlayerSystem) Update(deltaTime float64) {
	s.move(deltaTime)

	p := s.world.Player
	if p.JammedTimer > 0 {
		return
	}
	p.FireTimer += deltaTime
	fire := FireProfile(s.balance.Player, s.world.Session.Level, p.HasteTimer > 0)
	if p.FireTimer >= fire.IntervalMs {
		s.Shoot(fire.ExcessBonus)
		p.FireTimer = 0
	}
}

func (s *PlayerSystem) move(deltaTime float64) {
	p := s.world.Player
	pb := s.balance.Player

	lerp := pb.Lerp
	if p.SlowTimer > 0 {
		lerp *= pb.SlowLerpFactor
	}
	factor := utils.FrameLerp(lerp, deltaTime, config.FrameUnitMs)
	if p.Touch {
		factor *= pb.TouchLerpFactor
	}

	oldX := p.X
	p.X += (p.TargetX - p.X) * factor
	p.Y += (p.TargetY - p.Y) * factor

	// Наклон считается от смещения за эталонный кадр
	if f := frames(deltaTime); f > 0 {
		p.Tilt = utils.Clamp((p.X-oldX)/f*pb.TiltFactor, -pb.MaxTilt, pb.MaxTilt)
	}

	p.X = utils.Clamp(p.X, p.Width/2, config.ScreenWidth-p.Width/2)
	p.Y = utils.Clamp(p.Y, p.Height/2, config.ScreenHeight-p.Height/2)
}

// Shoot выпускает залп. Если лучей больше лимита тира, оружие
// переходит на следующий тир до расчёта урона.
func (s *PlayerSystem) Shoot(excessBonus float64) {
	p := s.world.Player
	pb := s.balance.Player

	count := p.Rays()
	if count > pb.MaxRaysPerTier && p.WeaponTier < config.WeaponTiers-1 {
		s.PromoteTier(1)
		count = p.Rays()
	}
	if count > pb.MaxRaysPerTier {
		count = pb.MaxRaysPerTier
	}

	damage := ComputeDamage(s.balance.BulletCurve, PlayerInputs(s.world, excessBonus))
	start := -pb.VolleySpread / 2
	for i := 0; i < count; i++ {
		step := 0.5
		if count > 1 {
			step = float64(i) / float64(count-1)
		}
		angle := -math.Pi/2 + start + step*pb.VolleySpread
		s.world.Bullets.Add(&component.Bullet{
			Position: component.Position{X: p.X, Y: p.Y - p.Height/2},
			Velocity: component.VelocityFromAngle(angle, pb.BulletSpeed, config.FrameUnitMs),
			Kind:     component.BulletPlayer,
			Damage:   damage,
			Radius:   pb.BulletRadius,
			Tier:     p.WeaponTier,
		})
	}
	playSound(s.eventDispatcher, defs.SoundShoot)
}

// PromoteTier поднимает тир оружия, выставляет уровень и добирает
// союзников до минимума. На последнем тире ничего не делает.
func (s *PlayerSystem) PromoteTier(level float64) bool {
	p := s.world.Player
	if p.WeaponTier >= config.WeaponTiers-1 {
		return false
	}
	p.WeaponTier++
	p.Level = level
	s.world.FillAllies(s.balance.Ally.PromotionAllies, s.balance.Ally.HPRatio)

	log.Printf("Weapon tier promoted to %d", p.WeaponTier)
	s.eventDispatcher.Emit(event.TierChanged, p.WeaponTier)
	return true
}

// Downgrade снимает уровень оружия, а при малом числе лучей - тир.
func (s *PlayerSystem) Downgrade() {
	p := s.world.Player
	cb := s.balance.Combat

	if p.Level*2+1 > cb.DowngradeRayThreshold {
		p.Level -= cb.DowngradeLevelLoss
		p.DamageMultiplier = math.Max(1, p.DamageMultiplier*cb.DowngradeDamageFactor)
		if p.Level < 0 {
			p.Level = 0
		}
		return
	}
	if p.WeaponTier > 0 {
		p.WeaponTier--
		p.DamageMultiplier = math.Max(1, p.DamageMultiplier*cb.DowngradeDamageFactor)
		p.Level = cb.DowngradeResetLevel
		s.eventDispatcher.Emit(event.TierChanged, p.WeaponTier)
	}
}
