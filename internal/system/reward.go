package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"
	"log"
	"math"
)

// RewardSystem раздаёт награды за убитых в этом кадре врагов и босса.
type RewardSystem struct {
	world           *entity.World
	balance         *defs.Balance
	eventDispatcher *event.Dispatcher
	rng             utils.Rand
	effects         *VisualEffectSystem
	loot            *LootSystem
	enemies         *EnemySystem
}

func NewRewardSystem(world *entity.World, balance *defs.Balance, eventDispatcher *event.Dispatcher, rng utils.Rand,
	effects *VisualEffectSystem, loot *LootSystem, enemies *EnemySystem) *RewardSystem {
	return &RewardSystem{
		world:           world,
		balance:         balance,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		effects:         effects,
		loot:            loot,
		enemies:         enemies,
	}
}

func (s *RewardSystem) Update() {
	// Миньоны, созданные в KillEnemy, попадают в конец хранилища
	// и в Kills этого кадра не входят.
	for _, id := range s.world.Kills {
		if e, ok := s.world.Enemies.Get(id); ok {
			s.KillEnemy(id, e)
		}
	}
	s.world.Kills = s.world.Kills[:0]

	if b := s.world.Boss; b != nil && b.HP <= 0 {
		s.DefeatBoss()
	}
}

// KillEnemy начисляет очки, лечение и дроп. Повторный вызов ничего не делает.
func (s *RewardSystem) KillEnemy(id types.EntityID, e *component.Enemy) {
	if e.Alive() || e.Rewarded {
		return
	}
	e.Rewarded = true
	eb := s.balance.Enemy
	pb := s.balance.Player
	p := s.world.Player
	sess := s.world.Session

	s.effects.Explode(e.X, e.Y, false)
	score := eb.SmallScore
	if e.Type == defs.EnemyMedium {
		score = eb.MediumScore
	}
	sess.Score += score
	p.Heal(pb.KillHealFlat + p.MaxHP*pb.KillHealFrac)

	s.loot.RollEnemyDrop(e)

	if e.Type == defs.EnemyMedium {
		chance := eb.MinionChance
		if s.world.Boss != nil {
			chance = eb.MinionChanceBoss
		}
		if s.rng.Float64() < chance {
			for i := 0; i < eb.MinionCount; i++ {
				x := e.X + (float64(i)-0.5)*eb.MinionSpacing
				s.enemies.Spawn(x, e.Y, defs.EnemySmall, true)
			}
		}
	}

	s.world.Enemies.Remove(id)
	s.eventDispatcher.Emit(event.EnemyKilled, event.EnemyKilledData{Type: e.Type, X: e.X, Y: e.Y, Score: score})
}

// DefeatBoss закрывает бой с боссом и выдаёт постоянные награды.
func (s *RewardSystem) DefeatBoss() {
	b := s.world.Boss
	if b == nil {
		return
	}
	bb := s.balance.Boss
	p := s.world.Player
	sess := s.world.Session

	s.effects.Explode(b.X, b.Y, true)
	sess.Score += bb.ScoreReward
	index := sess.BossCount
	sess.BossCount++
	sess.AccumulatedBossHP += b.MaxHP
	sess.NextBossScore = sess.Score + bb.NextBossBase + sess.BossCount*bb.NextBossPerBoss

	s.loot.RollBossDrops(b)

	minions := min(bb.MinionCap, bb.MinionBase+sess.BossCount/2)
	for i := 0; i < minions; i++ {
		x := b.X + (float64(i)-float64(minions-1)/2)*bb.MinionSpacing
		s.enemies.Spawn(x, b.Y+bb.MinionOffsetY, defs.EnemyMedium, true)
	}

	p.HasteTimer = bb.HasteOnKillMs
	playSound(s.eventDispatcher, defs.SoundLevelUp)
	sess.BossFight = false

	bonus := b.MaxHP * bb.HPRewardFraction
	p.MaxHP += bonus
	p.Heal(bonus)
	p.BossKillDamageBonus = math.Min(bb.DamageBonusCap, p.BossKillDamageBonus+bb.DamageBonusStep)
	p.AllyDamageRatio = math.Min(bb.AllyRatioCap, p.AllyDamageRatio+bb.AllyRatioStep)
	p.DamageMultiplier += bb.DamageMultiplierStep

	s.world.Boss = nil
	log.Printf("Boss %d defeated (super=%v), next boss at %d", index+1, b.Super, sess.NextBossScore)
	s.eventDispatcher.Emit(event.BossDefeated, event.BossData{Index: index, Super: b.Super, MaxHP: b.MaxHP})
}
