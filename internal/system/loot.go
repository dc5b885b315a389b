package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"
	"math"
)

// LootSystem отвечает за дроп бонусов, их подбор и "усталость удачи".
type LootSystem struct {
	world           *entity.World
	balance         *defs.Balance
	eventDispatcher *event.Dispatcher
	rng             utils.Rand
	player          *PlayerSystem
}

func NewLootSystem(world *entity.World, balance *defs.Balance, eventDispatcher *event.Dispatcher, rng utils.Rand, player *PlayerSystem) *LootSystem {
	return &LootSystem{
		world:           world,
		balance:         balance,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		player:          player,
	}
}

// Update ведёт таймер штрафа: тяжёлый штраф переходит в лёгкий,
// лёгкий снимается вместе со счётчиком серии.
func (s *LootSystem) Update(deltaTime float64) {
	sess := s.world.Session
	if sess.StreakTimer <= 0 {
		return
	}
	sess.StreakTimer -= deltaTime
	if sess.StreakTimer > 0 {
		return
	}
	if sess.StreakPenalty == component.PenaltyHeavy {
		sess.StreakPenalty = component.PenaltyLight
		sess.StreakTimer = s.balance.Loot.StreakPenaltyMs
		return
	}
	sess.StreakPenalty = component.PenaltyNone
	sess.BuffStreak = 0
}

// PenaltyFactor - множитель шанса дропа от текущего штрафа.
func (s *LootSystem) PenaltyFactor() float64 {
	switch s.world.Session.StreakPenalty {
	case component.PenaltyHeavy:
		return s.balance.Loot.HeavyPenalty
	case component.PenaltyLight:
		return s.balance.Loot.LightPenalty
	}
	return 1
}

// DropChance - итоговый шанс дропа с врага данного типа.
func (s *LootSystem) DropChance(t defs.EnemyType) float64 {
	lb := s.balance.Loot
	base := lb.SmallDropChance
	if t == defs.EnemyMedium {
		base = lb.MediumDropChance
	}
	return base * s.PenaltyFactor()
}

// RollEnemyDrop бросает дроп за убитого врага и создаёт бонус на его месте.
func (s *LootSystem) RollEnemyDrop(e *component.Enemy) (defs.PowerUpType, bool) {
	if s.rng.Float64() >= s.DropChance(e.Type) {
		return "", false
	}
	lb := s.balance.Loot
	typ := utils.ChooseWeighted(s.rng, defs.TableForTier(s.balance.LootTables, s.world.Player.WeaponTier))

	u := lb.USmall
	if e.Type == defs.EnemyMedium {
		u = lb.UMedium
	}
	if s.rng.Float64() < u*s.world.Session.UDropModifier {
		typ = defs.PowerUpUpgrade
	}
	s.Spawn(e.X, e.Y, typ)
	return typ, true
}

// RollBossDrops рассыпает бонусы веером под боссом.
func (s *LootSystem) RollBossDrops(b *component.Boss) []defs.PowerUpType {
	lb := s.balance.Loot
	n := lb.SuperDrops
	if !b.Super {
		n = s.rng.Intn(lb.DropsSpread) + lb.DropsMin
	}
	switch s.world.Session.StreakPenalty {
	case component.PenaltyHeavy:
		n = max(1, int(math.Floor(float64(n)*lb.HeavyPenalty)))
	case component.PenaltyLight:
		n = max(1, int(math.Floor(float64(n)*lb.LightPenalty)))
	}

	u := lb.BossU
	if b.Super {
		u = lb.BossUSuper
	}
	u *= s.world.Session.UDropModifier
	tier := s.world.Player.WeaponTier

	drops := make([]defs.PowerUpType, 0, n)
	for i := 0; i < n; i++ {
		var typ defs.PowerUpType
		switch {
		case s.rng.Float64() < u:
			typ = defs.PowerUpUpgrade
		case tier == config.TierYellow && s.rng.Float64() < lb.BossWTier0:
			typ = defs.PowerUpWeapon
		case tier == config.TierGreen && s.rng.Float64() < lb.BossWTier1:
			typ = defs.PowerUpWeapon
		default:
			typ = defs.BossDropPool[s.rng.Intn(len(defs.BossDropPool))]
		}
		x := b.X + (float64(i)-float64(n-1)/2)*s.balance.Boss.DropSpacing
		s.Spawn(x, b.Y, typ)
		drops = append(drops, typ)
	}
	return drops
}

func (s *LootSystem) Spawn(x, y float64, t defs.PowerUpType) types.EntityID {
	return s.world.PowerUps.Add(&component.PowerUp{
		Position: component.Position{X: x, Y: y},
		Type:     t,
		Radius:   s.balance.Loot.Radius,
	})
}

// Collect подбирает все бонусы в радиусе игрока.
func (s *LootSystem) Collect() {
	p := s.world.Player
	s.world.PowerUps.Each(func(id types.EntityID, pu *component.PowerUp) {
		if pu.DistSq(p.Position) >= s.balance.Loot.PickupRadiusSq {
			return
		}
		s.Apply(pu.Type)
		s.world.PowerUps.Remove(id)
	})
}

// Apply применяет эффект бонуса и продвигает серию подборов.
func (s *LootSystem) Apply(t defs.PowerUpType) {
	lb := s.balance.Loot
	sess := s.world.Session
	p := s.world.Player

	playSound(s.eventDispatcher, defs.SoundPowerUp)

	sess.BuffStreak++
	if sess.BuffStreak >= lb.StreakLength {
		sess.StreakTimer = lb.StreakPenaltyMs
		sess.StreakPenalty = component.PenaltyHeavy
	}

	switch t {
	case defs.PowerUpWeapon:
		p.Level += lb.WeaponLevelStep
		p.DamageMultiplier *= lb.WeaponDamageStep
		if p.Rays() > s.balance.Player.MaxRaysPerTier {
			s.player.PromoteTier(1)
		}

	case defs.PowerUpHealth:
		p.MaxHP *= lb.HealthMaxHP
		heal := lb.HealthFlat + p.MaxHP*lb.HealthFraction
		p.Heal(heal)
		for _, a := range s.world.Allies {
			a.Heal(heal * lb.AllyHealShare)
		}

	case defs.PowerUpAlly:
		if !s.world.AddAlly(s.balance.Ally.HPRatio) {
			for _, a := range s.world.Allies {
				a.MaxHP *= lb.AllyBuff
				a.HP *= lb.AllyBuff
				a.Heal(lb.AllyBuffHeal)
			}
		}

	case defs.PowerUpBoom:
		mb := s.balance.Missile
		sess.BoomChargeMs = math.Max(mb.MinChargeMs, sess.BoomChargeMs-mb.ChargeStepMs)
		if sess.MaxMissileBounces < mb.MaxBounces {
			sess.MaxMissileBounces++
		} else {
			sess.BoomDamageMultiplier += mb.DamageStep
		}

	case defs.PowerUpUpgrade:
		sess.UDropModifier = math.Max(lb.UMin, sess.UDropModifier*lb.UDecay)
		switch {
		case s.player.PromoteTier(math.Max(1, p.Level)):
		case p.Level < 2:
			p.Level = 2
		default:
			p.DamageMultiplier += lb.UpgradeMaxedDamage
		}

	case defs.PowerUpShield:
		p.Shield = lb.ShieldFlat + p.MaxHP*lb.ShieldFraction
		p.DamageReductionTimer = lb.ShieldReductionMs
		if p.PermDamageReduction < lb.PermReductionLimit {
			p.PermDamageReduction = math.Min(lb.PermReductionLimit, p.PermDamageReduction+lb.PermReductionStep)
		}
	}

	s.eventDispatcher.Emit(event.PowerUpCollected, t)
}
