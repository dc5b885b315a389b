package system

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"log"
	"math"
)

// Absorber сообщает, какой слой защиты принял удар.
type Absorber int

const (
	AbsorbedNone Absorber = iota
	AbsorbedShield
	AbsorbedAlly
	AbsorbedHull
)

// DefenseSystem применяет входящий урон к игроку.
// Порядок слоёв: щит, затем последний союзник, затем корпус.
type DefenseSystem struct {
	world           *entity.World
	balance         *defs.Balance
	eventDispatcher *event.Dispatcher
	effects         *VisualEffectSystem
}

func NewDefenseSystem(world *entity.World, balance *defs.Balance, eventDispatcher *event.Dispatcher, effects *VisualEffectSystem) *DefenseSystem {
	return &DefenseSystem{world: world, balance: balance, eventDispatcher: eventDispatcher, effects: effects}
}

// ReductionMultiplier - произведение всех активных снижений урона.
func (s *DefenseSystem) ReductionMultiplier() float64 {
	pb := s.balance.Player
	p := s.world.Player
	mult := 1.0
	if p.DamageReductionTimer > 0 {
		mult *= pb.TimedReduction
	}
	allies := len(s.world.Allies)
	if allies >= config.MaxAllies {
		mult *= pb.AllyReductionFull
	} else if allies >= pb.AllyReductionSomeFrom {
		mult *= pb.AllyReductionSome
	}
	mult *= 1 - math.Min(pb.PermReductionCap, p.PermDamageReduction)
	return mult
}

// ScaledDamage переводит номинальный урон врага в фактический.
func (s *DefenseSystem) ScaledDamage(amount float64) float64 {
	scale := EnemyPowerScale(s.balance.Player.EnemyPowerBase, s.world.Session.Level)
	return amount * scale * s.ReductionMultiplier()
}

// TakeDamage наносит игроку удар. Каждый слой поглощает удар целиком:
// щит отдаёт в корпус только перелив, союзник принимает весь удар.
func (s *DefenseSystem) TakeDamage(amount float64) Absorber {
	if s.world.Session.GameOver || amount <= 0 {
		return AbsorbedNone
	}
	p := s.world.Player
	total := s.ScaledDamage(amount)

	if p.Shield > 0 {
		p.Shield -= total
		if p.Shield < 0 {
			p.HP += p.Shield
			p.Shield = 0
		}
		s.effects.Shake(s.balance.Player.ShieldHitShake)
		s.checkDeath()
		return AbsorbedShield
	}

	if n := len(s.world.Allies); n > 0 {
		ally := s.world.Allies[n-1]
		ally.HP -= total
		if ally.HP <= 0 {
			s.effects.Explode(ally.X, ally.Y, false)
			s.world.PopAlly()
			s.eventDispatcher.Emit(event.AllyLost, len(s.world.Allies))
		}
		return AbsorbedAlly
	}

	p.HP -= total
	s.effects.Shake(s.balance.Player.HitShake)
	playSound(s.eventDispatcher, defs.SoundDebuff)
	s.checkDeath()
	return AbsorbedHull
}

func (s *DefenseSystem) checkDeath() {
	p := s.world.Player
	if p.HP > 0 {
		return
	}
	p.HP = 0
	sess := s.world.Session
	if sess.GameOver {
		return
	}
	sess.GameOver = true
	log.Printf("Game over: score %d, level %d", sess.Score, sess.Level)
	s.eventDispatcher.Emit(event.GameOver, event.GameOverData{Score: sess.Score, Level: sess.Level})
}
