package system

import (
	"math"
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
)

// testSim собирает все системы вокруг одного мира.
type testSim struct {
	balance  *defs.Balance
	world    *entity.World
	events   *event.Recorder
	rng      utils.Rand
	effects  *VisualEffectSystem
	defense  *DefenseSystem
	player   *PlayerSystem
	allies   *AllySystem
	enemies  *EnemySystem
	bosses   *BossSystem
	missiles *MissileSystem
	combat   *CombatSystem
	loot     *LootSystem
	reward   *RewardSystem
	director *DirectorSystem
	progress *ProgressionSystem
	cleanup  *CleanupSystem
}

func newTestSim(t *testing.T, rng utils.Rand) *testSim {
	t.Helper()
	b := defs.DefaultBalance()
	w := entity.NewWorld(b)
	d := event.NewDispatcher()
	rec := &event.Recorder{}
	d.SubscribeAll(rec, event.SoundRequested, event.EnemyKilled, event.BossSpawned, event.BossDefeated,
		event.PowerUpCollected, event.LevelUp, event.TierChanged, event.AllyLost, event.GameOver)

	s := &testSim{balance: b, world: w, events: rec, rng: rng}
	s.effects = NewVisualEffectSystem(w, b, d)
	s.defense = NewDefenseSystem(w, b, d, s.effects)
	s.player = NewPlayerSystem(w, b, d)
	s.allies = NewAllySystem(w, b)
	s.enemies = NewEnemySystem(w, b, rng)
	s.bosses = NewBossSystem(w, b, rng)
	s.missiles = NewMissileSystem(w, b, d, rng, s.effects)
	s.combat = NewCombatSystem(w, b, rng, s.effects, s.enemies, s.bosses, s.defense, s.player)
	s.loot = NewLootSystem(w, b, d, rng, s.player)
	s.reward = NewRewardSystem(w, b, d, rng, s.effects, s.loot, s.enemies)
	s.director = NewDirectorSystem(w, b, d, rng, s.enemies, s.bosses, s.missiles)
	s.progress = NewProgressionSystem(w, b, d)
	s.cleanup = NewCleanupSystem(w)
	return s
}

// addEnemy кладёт врага, уже завершившего вход, в заданную точку.
func (s *testSim) addEnemy(x, y, hp float64, t defs.EnemyType) *component.Enemy {
	size := s.balance.Enemy.SmallSize
	if t == defs.EnemyMedium {
		size = s.balance.Enemy.MediumSize
	}
	e := &component.Enemy{
		Position:       component.Position{X: x, Y: y},
		Type:           t,
		Width:          size,
		Height:         size,
		HP:             hp,
		MaxHP:          hp,
		BulletCount:    1,
		EntryTimer:     10000,
		DashDurationMs: s.balance.Enemy.DashDurationMs,
		StartY:         y,
		DashTargetY:    120,
	}
	s.world.Enemies.Add(e)
	return e
}

func (s *testSim) addPlayerBullet(x, y, damage float64, ally bool) {
	s.world.Bullets.Add(&component.Bullet{
		Position: component.Position{X: x, Y: y},
		Kind:     component.BulletPlayer,
		Damage:   damage,
		Radius:   4,
		Ally:     ally,
	})
}

func (s *testSim) countBullets(kind component.BulletKind) int {
	n := 0
	for _, b := range s.world.Bullets.Values() {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6*math.Max(1, math.Abs(b))
}
